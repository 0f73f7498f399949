package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexndrfrd/programatorultau/internal/domain"
)

type BookingService interface {
	Create(ctx context.Context, date, timeSlot, name, email, phone string) (*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]domain.Booking, []string, error)
	BookedSlots(ctx context.Context, date string) ([]string, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type createBookingRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Time  string `json:"time" binding:"required,datetime=15:04"`
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=5,max=20"`
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var in createBookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"code":    codeValidationFailed,
			"errors":  fieldErrors(err),
		})
		return
	}

	b, err := h.svc.Create(c.Request.Context(), in.Date, in.Time, in.Name, in.Email, in.Phone)
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"code":    codeSlotTaken,
			"message": "this slot is already booked",
		})
	case errors.Is(err, domain.ErrUnknownSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"code":    codeUnknownSlot,
			"message": "time is not a bookable slot",
		})
	case err != nil:
		log.Printf("[api] create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    codeInternalError,
			"message": "internal error",
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "booking created",
			"data":    b,
		})
	}
}

// GET /api/bookings?date=2024-12-20
func (h *BookingHandler) GetByDate(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	bookings, slots, err := h.svc.GetByDate(c.Request.Context(), date)
	if err != nil {
		log.Printf("[api] list bookings by date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "code": codeInternalError, "message": "internal error"})
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"date":        date,
		"bookedSlots": slots,
		"bookings":    bookings,
	})
}

// GET /api/bookings/slots?date=2024-12-20
func (h *BookingHandler) Slots(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	slots, err := h.svc.BookedSlots(c.Request.Context(), date)
	if err != nil {
		log.Printf("[api] booked slots: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "code": codeInternalError, "message": "internal error"})
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "date": date, "bookedSlots": slots})
}

// GET /api/bookings/all?limit=100&offset=0 (ADMIN)
func (h *BookingHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	data, err := h.svc.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("[api] list all bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "code": codeInternalError, "message": "internal error"})
		return
	}
	if data == nil {
		data = []domain.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

func (h *BookingHandler) dateParam(c *gin.Context) (string, bool) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeMissingDate, "message": "date query parameter is required"})
		return "", false
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeInvalidDate, "message": "date must be a valid YYYY-MM-DD date"})
		return "", false
	}
	return date, true
}
