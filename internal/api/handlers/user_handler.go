package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/api/dto"
	"github.com/Harshitduggal1/scheduling-software/internal/api/middleware"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
	"github.com/Harshitduggal1/scheduling-software/pkg/forms"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// GetSettings returns the settings form's initial state.
func (h *UserHandler) GetSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	account, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(userStatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.SettingsResponse{
		User:      *dto.UserToResponse(account),
		HasImage:  account.HasProfileImage(),
		EmailLock: true,
	}})
}

// UpdateSettings applies the settings form submit. The hidden image field
// arrives as-is: an empty value clears the stored image.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	account, result, err := h.service.UpdateSettings(c.Request.Context(), userID, req.Values())
	if err != nil {
		c.JSON(userStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	if !result.Ok() {
		middleware.CountFormRejection("settings")
		c.JSON(http.StatusUnprocessableEntity, dto.SettingsSubmissionResponse{
			Status:      string(forms.StatusError),
			FieldErrors: result.FieldErrors,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SettingsSubmissionResponse{
		Status: string(forms.StatusSuccess),
		User:   dto.UserToResponse(account),
	})
}

func userStatusFor(err error) int {
	switch err {
	case user.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
