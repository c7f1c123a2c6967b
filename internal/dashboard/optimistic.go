package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/notification"
)

// SetActiveFunc persists one record's active flag. It is the only
// collaborator the toggle needs from the event type service.
type SetActiveFunc func(ctx context.Context, id uuid.UUID, active bool) error

// OptimisticToggle drives the per-record active switches on the event type
// list. A toggle flips the displayed value immediately, then persists in
// the background; persistence failure rolls the value back and raises an
// error toast. Records are independent: one record's in-flight persist
// never blocks or perturbs another's.
type OptimisticToggle struct {
	mu       sync.Mutex
	userID   uuid.UUID
	persist  SetActiveFunc
	notifier notification.Notifier
	mounted  bool

	values map[uuid.UUID]bool
	// seq increments on every toggle of a record. A persist result only
	// rolls back if no newer toggle has landed since it started.
	seq map[uuid.UUID]uint64
}

// NewOptimisticToggle creates a toggle controller for one user's list.
func NewOptimisticToggle(userID uuid.UUID, persist SetActiveFunc, notifier notification.Notifier) *OptimisticToggle {
	return &OptimisticToggle{
		userID:   userID,
		persist:  persist,
		notifier: notifier,
		mounted:  true,
		values:   make(map[uuid.UUID]bool),
		seq:      make(map[uuid.UUID]uint64),
	}
}

// Seed installs the authoritative value for a record, typically from the
// fetched list.
func (t *OptimisticToggle) Seed(id uuid.UUID, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[id] = active
}

// Value returns the currently displayed value for a record.
func (t *OptimisticToggle) Value(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values[id]
}

// Toggle flips the record's displayed value and persists the new intent.
// It returns the value now displayed. The persist call runs under the
// caller's context with the lock released, so a slow backend never freezes
// the rest of the list.
func (t *OptimisticToggle) Toggle(ctx context.Context, id uuid.UUID) bool {
	t.mu.Lock()
	prev := t.values[id]
	next := !prev
	t.values[id] = next
	t.seq[id]++
	mySeq := t.seq[id]
	t.mu.Unlock()

	err := t.persist(ctx, id, next)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err == nil {
		// Success is silent: the optimistic value is already correct.
		return t.values[id]
	}

	// A newer toggle supersedes this result; only its own persist outcome
	// may adjust the display (last intent wins).
	if t.seq[id] != mySeq || !t.mounted {
		return t.values[id]
	}

	t.values[id] = prev
	if t.notifier != nil {
		t.notifier.Error(ctx, t.userID, "Could not update event type. Please try again.")
	}
	return t.values[id]
}

// Unmount detaches the controller from the view. Late persist results are
// discarded instead of mutating a list nobody is looking at.
func (t *OptimisticToggle) Unmount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mounted = false
}
