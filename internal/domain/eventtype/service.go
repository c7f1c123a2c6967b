package eventtype

import (
	"context"
	"strconv"
	"time"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/events"
	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/cache"
	"github.com/Harshitduggal1/scheduling-software/pkg/forms"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field names shared between the forms and the submission payload.
const (
	FieldTitle       = "title"
	FieldURL         = "url"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldVideoCall   = "videoCallSoftware"
)

var schema = forms.NewSchema(
	forms.Field{Name: FieldTitle, Rules: "required,max=150"},
	forms.Field{Name: FieldURL, Rules: "required,max=150,slug"},
	forms.Field{Name: FieldDescription, Rules: "omitempty,max=300"},
	forms.Field{Name: FieldDuration, Rules: "required,oneof=15 30 45 60"},
	forms.Field{Name: FieldVideoCall, Rules: "required,oneof='Zoom Meeting' 'Google Meet' 'Microsoft Teams'"},
)

// Schema returns the event type form schema. The same schema runs
// client-side (advisory, in the form controller) and server-side
// (authoritative, in Create/Update), so the two can never disagree.
func Schema() *forms.Schema {
	return schema
}

// Service defines the event type operations the dashboard performs.
type Service interface {
	// Create validates the submitted values and persists a new event type.
	// Field-shaped failures come back in the Result; err is reserved for
	// infrastructure failures.
	Create(ctx context.Context, userID uuid.UUID, values map[string]string) (*EventType, forms.Result, error)
	// Update validates the submitted values and rewrites an existing
	// event type's details (the edit flow).
	Update(ctx context.Context, userID, id uuid.UUID, values map[string]string) (*EventType, forms.Result, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*EventType, error)
	// FindBySlug resolves a record for the public booking page. Inactive
	// records are hidden from public view.
	FindBySlug(ctx context.Context, userID uuid.UUID, slug string) (*EventType, error)
	List(ctx context.Context, userID uuid.UUID) ([]EventType, error)
	// SetActive flips public bookability for one record. Success requires
	// no UI change; failure triggers the caller's optimistic rollback.
	SetActive(ctx context.Context, userID, id uuid.UUID, active bool) error
	// Delete destroys the record. Callers reach this only through the
	// dedicated confirmation flow, never from a single click.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo   Repository
	redis  *cache.RedisClient
	logger *zap.Logger
}

// NewService creates a new event type service
func NewService(repo Repository, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{repo: repo, redis: redis, logger: logger}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, values map[string]string) (*EventType, forms.Result, error) {
	result := schema.Parse(values)
	if !result.Ok() {
		return nil, result, nil
	}

	record := recordFromValues(result.Value)
	record.ID = uuid.New()
	record.UserID = userID
	record.Active = true
	record.CreatedAt = time.Now().UTC()
	record.UpdatedAt = record.CreatedAt

	if err := s.repo.Create(ctx, record); err != nil {
		if err == ErrSlugTaken {
			return nil, slugTakenResult(), nil
		}
		return nil, forms.Result{}, err
	}

	s.publishInvalidate(ctx, userID, record.ID, "event_type_created")
	return record, result, nil
}

func (s *service) Update(ctx context.Context, userID, id uuid.UUID, values map[string]string) (*EventType, forms.Result, error) {
	record, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, forms.Result{}, err
	}

	result := schema.Parse(values)
	if !result.Ok() {
		return nil, result, nil
	}

	updated := recordFromValues(result.Value)
	record.Title = updated.Title
	record.URL = updated.URL
	record.Description = updated.Description
	record.Duration = updated.Duration
	record.VideoCall = updated.VideoCall
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, record); err != nil {
		if err == ErrSlugTaken {
			return nil, slugTakenResult(), nil
		}
		return nil, forms.Result{}, err
	}

	s.publishInvalidate(ctx, userID, record.ID, "event_type_updated")
	return record, result, nil
}

func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (*EventType, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Ownership check: a record of another user is indistinguishable from
	// a missing one.
	if record.UserID != userID {
		return nil, ErrNotFound
	}
	return record, nil
}

func (s *service) FindBySlug(ctx context.Context, userID uuid.UUID, slug string) (*EventType, error) {
	record, err := s.repo.GetByUserAndSlug(ctx, userID, slug)
	if err != nil {
		return nil, err
	}
	if !record.Active {
		return nil, ErrNotFound
	}
	return record, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]EventType, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) SetActive(ctx context.Context, userID, id uuid.UUID, active bool) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.publishInvalidate(ctx, userID, id, "event_type_active_changed")
	return nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishInvalidate(ctx, userID, id, "event_type_deleted")
	return nil
}

// recordFromValues builds an EventType from an already-validated value set.
// The schema guarantees duration and platform parse into their enums.
func recordFromValues(values map[string]string) *EventType {
	minutes, _ := strconv.Atoi(values[FieldDuration])
	return &EventType{
		Title:       values[FieldTitle],
		URL:         values[FieldURL],
		Description: values[FieldDescription],
		Duration:    Duration(minutes),
		VideoCall:   VideoCallSoftware(values[FieldVideoCall]),
	}
}

func slugTakenResult() forms.Result {
	return forms.Result{
		Status: forms.StatusError,
		FieldErrors: map[string][]string{
			FieldURL: {"this URL slug is already in use"},
		},
	}
}

// publishInvalidate tells connected dashboards to drop their cached list.
// Fire-and-forget: a cache miss later is the worst outcome.
func (s *service) publishInvalidate(ctx context.Context, userID, entityID uuid.UUID, action string) {
	if s.redis == nil {
		return
	}
	event := &events.DashboardEvent{
		EventType: events.EventTypeListUpdate,
		UserID:    userID,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Details:   map[string]interface{}{"action": action},
	}
	if err := s.redis.PublishDashboardEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish dashboard event",
			zap.String("action", action),
			zap.Error(err))
	}
	if err := s.redis.InvalidateDashboardCache(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
