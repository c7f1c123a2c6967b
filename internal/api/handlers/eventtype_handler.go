package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Harshitduggal1/scheduling-software/internal/api/dto"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
	"github.com/Harshitduggal1/scheduling-software/internal/dashboard"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/pkg/forms"
)

type EventTypeHandler struct {
	service eventtype.Service
	baseURL string
}

func NewEventTypeHandler(service eventtype.Service, baseURL string) *EventTypeHandler {
	return &EventTypeHandler{service: service, baseURL: baseURL}
}

// CreateEventType handles the creation form submit. Validation failures
// come back as 422 with per-field messages in the persistence envelope.
func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	var req dto.EventTypeFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	record, result, err := h.service.Create(c.Request.Context(), userID, req.Values())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Ok() {
		middleware.CountFormRejection("event_type")
		c.JSON(http.StatusUnprocessableEntity, dto.SubmissionResponse{
			Status:      string(forms.StatusError),
			FieldErrors: result.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Status: string(forms.StatusSuccess),
		Record: dto.EventTypeToResponse(record),
	})
}

// GetEventType returns one record for the edit form's initial values.
func (h *EventTypeHandler) GetEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type ID"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	record, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.EventTypeToResponse(record)})
}

// UpdateEventType handles the edit form submit.
func (h *EventTypeHandler) UpdateEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type ID"})
		return
	}

	var req dto.EventTypeFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	record, result, err := h.service.Update(c.Request.Context(), userID, id, req.Values())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if !result.Ok() {
		middleware.CountFormRejection("event_type")
		c.JSON(http.StatusUnprocessableEntity, dto.SubmissionResponse{
			Status:      string(forms.StatusError),
			FieldErrors: result.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{
		Status: string(forms.StatusSuccess),
		Record: dto.EventTypeToResponse(record),
	})
}

// SetActive flips a record's bookability. The body is explicit about the
// target value so retries are idempotent.
func (h *EventTypeHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type ID"})
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.SetActive(c.Request.Context(), userID, id, *req.Active); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id, "active": *req.Active}})
}

// DeleteEventType destroys a record after the confirmation flow.
func (h *EventTypeHandler) DeleteEventType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type ID"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// CopyLink resolves a record's full booking URL for the copy action. The
// confirmation toast belongs to the copy path itself: it fires only after
// the clipboard write actually succeeds, never here.
func (h *EventTypeHandler) CopyLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event type ID"})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	username, _ := middleware.GetUsername(c)

	record, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.CopyLinkResponse{
		BookingURL: dashboard.BookingURL(h.baseURL, username, record.URL),
	}})
}

func statusFor(err error) int {
	switch err {
	case eventtype.ErrNotFound:
		return http.StatusNotFound
	case eventtype.ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
