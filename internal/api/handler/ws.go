package handler

import (
	"net/http"
	"strings"

	"campuschars/backend/internal/models"
	"campuschars/backend/internal/notifyhub"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дозволяє з'єднання з будь-якого домену. У продакшені налаштувати!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket оновлює HTTP-з'єднання до WebSocket і підключає клієнта до
// хаба сповіщень. Токен приймаємо з заголовка Authorization або з query
// параметра token (браузерний WebSocket не вміє ставити заголовки).
func (h *Handler) ServeWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	username, role, name, err := validateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	// Student notifications are targeted by the display name the frontend
	// submits complaints under, so match on it when present.
	identity := name
	if identity == "" {
		identity = username
	}

	client := &notifyhub.WebSocketClient{
		ConnID:   uuid.New().String(),
		Role:     role,
		Username: identity,
		Hub:      h.Hub,
		Conn:     conn,
		Send:     make(chan models.Notification, 256),
	}

	// Реєстрація клієнта в хабі та запуск його goroutines
	h.Hub.RegisterCh <- client
	client.Run()
}
