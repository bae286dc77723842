package handler

import (
	"errors"
	"net/http"

	"campuschars/backend/internal/complaint"
	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/notifyhub"
	"campuschars/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler тримає посилання на сервіс скарг, сховище та хаб сповіщень.
type Handler struct {
	Complaints *complaint.Service
	Storage    storage.Storage
	Hub        *notifyhub.ManagerService
	Log        *logger.Logger
}

func NewHandler(svc *complaint.Service, st storage.Storage, hub *notifyhub.ManagerService, log *logger.Logger) *Handler {
	return &Handler{
		Complaints: svc,
		Storage:    st,
		Hub:        hub,
		Log:        log.With("component", "handler"),
	}
}

// fail maps each service error kind to its stable HTTP status. Storage
// failures surface as 500 with the original error text, never as success.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, complaint.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, complaint.ErrInvalidInput),
		errors.Is(err, complaint.ErrInvalidTechnician),
		errors.Is(err, complaint.ErrNothingToUndo):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		h.Log.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
