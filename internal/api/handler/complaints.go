package handler

import (
	"net/http"

	"campuschars/backend/internal/complaint"
	"campuschars/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	User        string `json:"user"`
	StudentType string `json:"studentType"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Visibility  string `json:"visibility"`
	Description string `json:"description"`
}

// CreateComplaint обробляє POST /api/complaints
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Complaints.Create(complaint.CreateInput{
		User:        req.User,
		StudentType: req.StudentType,
		Category:    req.Category,
		Severity:    req.Severity,
		Visibility:  req.Visibility,
		Description: req.Description,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListComplaints обробляє GET /api/complaints?user=&admin=true&assignedTo=
func (h *Handler) ListComplaints(c *gin.Context) {
	filter := models.ComplaintFilter{
		Viewer:     c.Query("user"),
		Admin:      c.Query("admin") == "true",
		AssignedTo: c.Query("assignedTo"),
	}

	list, err := h.Complaints.List(filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetComplaint обробляє GET /api/complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	out, err := h.Complaints.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// VoteComplaint обробляє POST /api/complaints/:id/vote
func (h *Handler) VoteComplaint(c *gin.Context) {
	out, err := h.Complaints.Vote(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ResolveTop обробляє POST /api/complaints/resolve — автоматично закриває
// найпріоритетнішу скаргу зі статусом Submitted.
func (h *Handler) ResolveTop(c *gin.Context) {
	out, err := h.Complaints.ResolveTop()
	if err != nil {
		h.fail(c, err)
		return
	}
	if out == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No pending complaints"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// WithdrawComplaint обробляє POST /api/complaints/:id/withdraw
func (h *Handler) WithdrawComplaint(c *gin.Context) {
	out, err := h.Complaints.Withdraw(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UndoWithdraw обробляє POST /api/complaints/undo
func (h *Handler) UndoWithdraw(c *gin.Context) {
	out, err := h.Complaints.Undo()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type assignRequest struct {
	Technician string `json:"technician"`
}

// AssignComplaint обробляє POST /api/complaints/:id/assign (дія адміна)
func (h *Handler) AssignComplaint(c *gin.Context) {
	var req assignRequest
	// Порожнє тіло трактуємо як порожнього technician; сервіс поверне
	// ErrInvalidInput.
	_ = c.ShouldBindJSON(&req)

	out, err := h.Complaints.Assign(c.Param("id"), req.Technician)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// MarkResolved обробляє POST /api/complaints/:id/markResolved (дія техніка)
func (h *Handler) MarkResolved(c *gin.Context) {
	out, err := h.Complaints.MarkResolved(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
