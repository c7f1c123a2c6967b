package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/eventtype"
	"github.com/Harshitduggal1/scheduling-software/internal/domain/user"
	"github.com/Harshitduggal1/scheduling-software/pkg/forms"
)

// stubEventTypeService serves a single canned record.
type stubEventTypeService struct {
	record *eventtype.EventType
}

func (s *stubEventTypeService) Create(ctx context.Context, userID uuid.UUID, values map[string]string) (*eventtype.EventType, forms.Result, error) {
	return nil, forms.Result{}, nil
}

func (s *stubEventTypeService) Update(ctx context.Context, userID, id uuid.UUID, values map[string]string) (*eventtype.EventType, forms.Result, error) {
	return nil, forms.Result{}, nil
}

func (s *stubEventTypeService) Get(ctx context.Context, userID, id uuid.UUID) (*eventtype.EventType, error) {
	if s.record != nil && s.record.UserID == userID && s.record.ID == id {
		return s.record, nil
	}
	return nil, eventtype.ErrNotFound
}

func (s *stubEventTypeService) FindBySlug(ctx context.Context, userID uuid.UUID, slug string) (*eventtype.EventType, error) {
	if s.record != nil && s.record.UserID == userID && s.record.URL == slug && s.record.Active {
		return s.record, nil
	}
	return nil, eventtype.ErrNotFound
}

func (s *stubEventTypeService) List(ctx context.Context, userID uuid.UUID) ([]eventtype.EventType, error) {
	return nil, nil
}

func (s *stubEventTypeService) SetActive(ctx context.Context, userID, id uuid.UUID, active bool) error {
	return nil
}

func (s *stubEventTypeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

// stubUserService serves a single canned account.
type stubUserService struct {
	account *user.User
}

func (s *stubUserService) Register(ctx context.Context, email, username, fullName string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserService) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if s.account != nil && s.account.ID == id {
		return s.account, nil
	}
	return nil, user.ErrNotFound
}

func (s *stubUserService) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if s.account != nil && s.account.Username == username {
		return s.account, nil
	}
	return nil, user.ErrNotFound
}

func (s *stubUserService) UpdateSettings(ctx context.Context, id uuid.UUID, values map[string]string) (*user.User, forms.Result, error) {
	return nil, forms.Result{}, nil
}

func seededStubs() (*stubEventTypeService, *stubUserService) {
	account := &user.User{
		ID:       uuid.New(),
		Email:    "jan@example.com",
		Username: "jan",
		FullName: "Jan Marshal",
	}
	record := &eventtype.EventType{
		ID:        uuid.New(),
		UserID:    account.ID,
		Title:     "Intro Call",
		URL:       "intro-call",
		Duration:  eventtype.Duration30,
		VideoCall: eventtype.PlatformMeet,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	return &stubEventTypeService{record: record}, &stubUserService{account: account}
}

func bookingTestRouter(eventTypes *stubEventTypeService, users *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewBookingHandler(eventTypes, users)
	router.GET("/api/booking/:username/:slug", handler.GetBookingPage)
	return router
}

func TestGetBookingPage(t *testing.T) {
	eventTypes, users := seededStubs()
	router := bookingTestRouter(eventTypes, users)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/jan/intro-call", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Intro Call")
	assert.Contains(t, rec.Body.String(), "Jan Marshal")
}

func TestGetBookingPageUnknownUser(t *testing.T) {
	eventTypes, users := seededStubs()
	router := bookingTestRouter(eventTypes, users)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/nobody/intro-call", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookingPageInactiveEventType(t *testing.T) {
	eventTypes, users := seededStubs()
	eventTypes.record.Active = false
	router := bookingTestRouter(eventTypes, users)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/jan/intro-call", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
