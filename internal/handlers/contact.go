package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexndrfrd/programatorultau/internal/domain"
)

type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*domain.ContactMessage, error)
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var in submitContactRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"code":    codeValidationFailed,
			"errors":  fieldErrors(err),
		})
		return
	}

	m, err := h.svc.Submit(c.Request.Context(), in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		log.Printf("[api] submit contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "code": codeInternalError, "message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "message received, we will get back to you shortly",
		"id":      m.ID,
	})
}
