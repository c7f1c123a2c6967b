package user

import (
	"context"
	"time"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/events"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/cache"
	"github.com/Harshitduggal1/scheduling-software/pkg/forms"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field names of the profile settings form.
const (
	FieldFullName     = "fullName"
	FieldProfileImage = "profileImage"
)

// The image travels as a hidden text field carrying the stored URL; an
// empty string means "no image" and clears the stored value on submit.
var settingsSchema = forms.NewSchema(
	forms.Field{Name: FieldFullName, Rules: "required,max=100"},
	forms.Field{Name: FieldProfileImage, Rules: "omitempty,url"},
)

// SettingsSchema returns the profile settings form schema, shared by the
// client-side form controller and the server-side update path.
func SettingsSchema() *forms.Schema {
	return settingsSchema
}

// Service defines account and profile settings operations.
type Service interface {
	Register(ctx context.Context, email, username, fullName string) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UpdateSettings applies the profile settings form. Email and username
	// are identity fields and are never writable through this path.
	UpdateSettings(ctx context.Context, id uuid.UUID, values map[string]string) (*User, forms.Result, error)
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

// NewService creates a new user service
func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{repo: repo, redis: redis, logger: logger}
}

func (s *service) Register(ctx context.Context, email, username, fullName string) (*User, error) {
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailExists
	} else if err != nil && err != ErrNotFound {
		return nil, err
	}
	if existing, err := s.repo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrUsernameExists
	} else if err != nil && err != ErrNotFound {
		return nil, err
	}

	u := &User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *service) UpdateSettings(ctx context.Context, id uuid.UUID, values map[string]string) (*User, forms.Result, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, forms.Result{}, err
	}

	result := settingsSchema.Parse(values)
	if !result.Ok() {
		return nil, result, nil
	}

	u.FullName = result.Value[FieldFullName]
	u.ProfileImageURL = result.Value[FieldProfileImage]
	u.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, forms.Result{}, err
	}

	s.publishProfileUpdate(ctx, u.ID)
	return u, result, nil
}

func (s *service) publishProfileUpdate(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}
	event := &events.DashboardEvent{
		EventType: events.EventTypeProfileUpdate,
		UserID:    userID,
		EntityID:  userID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish profile update event", zap.Error(err))
	}
	if err := s.redis.InvalidateDashboardCache(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
