package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pitchbook/models"
	"pitchbook/services/booking"
	"pitchbook/utils"
)

// BookingHandler maps HTTP requests onto the booking service.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	// The authenticated customer books for themselves unless an explicit
	// customerId is supplied (admin flows).
	if input.CustomerID == "" {
		if userID, ok := c.Get("userID"); ok {
			input.CustomerID = userID.(string)
		}
	}

	detail, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": detail})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		CustomerID: c.Query("customerId"),
		GroundID:   c.Query("groundId"),
		FromDate:   c.Query("fromDate"),
		ToDate:     c.Query("toDate"),
	}
	filter.Page, filter.Limit = parsePagination(c)

	h.list(c, filter)
}

// ListUserBookings handles GET /api/bookings/user/:userId.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	filter := models.BookingFilter{
		CustomerID: c.Param("userId"),
		Status:     c.Query("status"),
	}
	filter.Page, filter.Limit = parsePagination(c)

	h.list(c, filter)
}

func (h *BookingHandler) list(c *gin.Context, filter models.BookingFilter) {
	details, meta, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": details,
		"page":     meta.Page,
		"limit":    meta.Limit,
		"total":    meta.Total,
		"pages":    meta.Pages,
	})
}

// CheckAvailability handles GET /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	slot := 0
	if raw := c.Query("groundSlot"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid groundSlot", "groundSlot must be an integer")
			return
		}
		slot = parsed
	}

	result, err := h.Svc.CheckAvailability(
		c.Request.Context(),
		c.Query("groundId"),
		slot,
		c.Query("bookingDate"),
		c.Query("startTime"),
		c.Query("endTime"),
	)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	detail, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var patch models.UpdateBookingInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	detail, err := h.Svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// ConfirmBooking handles PUT /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		PaymentID string `json:"paymentId"`
	}
	// An empty body confirms without a payment reference.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	detail, err := h.Svc.Confirm(c.Request.Context(), c.Param("id"), input.PaymentID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	detail, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// CompleteBooking handles PUT /api/bookings/:id/complete (admin).
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	detail, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// DeleteBooking handles DELETE /api/bookings/:id (admin).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// respondBookingError maps domain error kinds onto HTTP statuses. Conflict
// responses carry the overlapping bookings and suggested alternatives.
func respondBookingError(c *gin.Context, err error) {
	if be, ok := booking.AsBookingError(err); ok {
		status := http.StatusInternalServerError
		switch be.Kind {
		case booking.KindValidation:
			status = http.StatusBadRequest
		case booking.KindNotFound:
			status = http.StatusNotFound
		case booking.KindConflict, booking.KindInvalidState:
			status = http.StatusConflict
		}

		body := gin.H{"error": be.Message, "kind": be.Kind}
		if len(be.Conflicts) > 0 {
			body["conflicts"] = be.Conflicts
		}
		if len(be.Suggestions) > 0 {
			body["suggestions"] = be.Suggestions
		}
		c.JSON(status, body)
		return
	}

	utils.GetLogger().Error("booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
