package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications обробляє GET /api/notifications?role=&name=
func (h *Handler) ListNotifications(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "role is required (admin|technician|student)"})
		return
	}

	list, err := h.Storage.ListNotifications(role, c.Query("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListTechnicians обробляє GET /api/technicians
func (h *Handler) ListTechnicians(c *gin.Context) {
	list, err := h.Storage.ListTechnicians()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
