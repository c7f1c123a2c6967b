package eventtype

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the data access methods for event types
type Repository interface {
	Create(ctx context.Context, record *EventType) error
	GetByID(ctx context.Context, id uuid.UUID) (*EventType, error)
	GetByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*EventType, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]EventType, error)
	Update(ctx context.Context, record *EventType) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new event type repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *EventType) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*EventType, error) {
	var record EventType
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *repository) GetByUserAndSlug(ctx context.Context, userID uuid.UUID, slug string) (*EventType, error) {
	var record EventType
	err := r.db.WithContext(ctx).
		First(&record, "user_id = ? AND url = ?", userID, slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListByUser returns the user's event types ordered by creation time,
// newest first. The dashboard renders this order verbatim.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]EventType, error) {
	var records []EventType
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, record *EventType) error {
	err := r.db.WithContext(ctx).Save(record).Error
	if err != nil && isUniqueViolation(err) {
		return ErrSlugTaken
	}
	return err
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&EventType{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&EventType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation matches the Postgres duplicate-key error for the
// per-user slug index.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "23505")
}
