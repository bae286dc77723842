package handler

import (
	"errors"
	"net/http"
	"os"
	"time"

	"campuschars/backend/internal/models"

	"github.com/gin-gonic/gin"

	jwt "github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("campuschars-dev-secret")
}

// generateJWT генерує JWT для користувача після логіна
func generateJWT(u *models.User) (string, error) {
	// Встановлюємо claims: ідентичність, роль та термін дії
	claims := jwt.MapClaims{
		"username": u.Username,
		"role":     u.Role,
		"name":     u.Name,
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
		"iss":      "campuschars-service", // Видавець
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// validateToken перевіряє підпис токена і повертає username та role.
func validateToken(tokenString string) (username, role, name string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}

	username, _ = claims["username"].(string)
	role, _ = claims["role"].(string)
	name, _ = claims["name"].(string)
	if username == "" || role == "" {
		return "", "", "", errors.New("missing identity claims")
	}
	return username, role, name, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login обробляє POST /api/login. Демо-перевірка пароля (plaintext, як в
// оригінальній системі); успішна відповідь додає JWT для /ws.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBindJSON(&req)

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username & password required"})
		return
	}

	u, err := h.Storage.GetUserByCredentials(req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := generateJWT(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": u.Username,
		"role":     u.Role,
		"name":     u.Name,
		"contact":  u.Contact,
		"token":    token,
	})
}
