package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(ctx context.Context, userID uuid.UUID, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(ctx context.Context, userID uuid.UUID, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

func TestToggleFlipsImmediately(t *testing.T) {
	id := uuid.New()
	started := make(chan struct{})
	release := make(chan struct{})

	toggle := NewOptimisticToggle(uuid.New(), func(ctx context.Context, _ uuid.UUID, active bool) error {
		close(started)
		<-release
		return nil
	}, nil)
	toggle.Seed(id, true)

	done := make(chan struct{})
	go func() {
		toggle.Toggle(context.Background(), id)
		close(done)
	}()

	// The displayed value flips before persistence completes.
	<-started
	assert.False(t, toggle.Value(id))

	close(release)
	<-done
	assert.False(t, toggle.Value(id))
}

func TestToggleRollsBackOnFailure(t *testing.T) {
	id := uuid.New()
	notifier := &recordingNotifier{}

	toggle := NewOptimisticToggle(uuid.New(), func(ctx context.Context, _ uuid.UUID, active bool) error {
		return errors.New("backend down")
	}, notifier)
	toggle.Seed(id, true)

	got := toggle.Toggle(context.Background(), id)
	assert.True(t, got, "failed persist restores the previous value")
	assert.True(t, toggle.Value(id))
	assert.Equal(t, 1, notifier.errorCount())
	assert.Empty(t, notifier.successes, "success never raises a toast")
}

func TestToggleLastIntentWins(t *testing.T) {
	id := uuid.New()
	notifier := &recordingNotifier{}

	firstStarted := make(chan struct{})
	firstRelease := make(chan struct{})
	var calls int
	var mu sync.Mutex

	toggle := NewOptimisticToggle(uuid.New(), func(ctx context.Context, _ uuid.UUID, active bool) error {
		mu.Lock()
		calls++
		call := calls
		mu.Unlock()
		if call == 1 {
			close(firstStarted)
			<-firstRelease
			return errors.New("stale persist failed")
		}
		return nil
	}, notifier)
	toggle.Seed(id, false)

	firstDone := make(chan struct{})
	go func() {
		toggle.Toggle(context.Background(), id) // false -> true, will fail late
		close(firstDone)
	}()
	<-firstStarted

	// Second toggle lands while the first persist is in flight.
	got := toggle.Toggle(context.Background(), id) // true -> false, succeeds
	assert.False(t, got)

	close(firstRelease)
	<-firstDone

	// The stale failure must not roll back the newer intent.
	assert.False(t, toggle.Value(id))
	assert.Equal(t, 0, notifier.errorCount(), "superseded failures stay silent")
}

func TestToggleRecordsAreIndependent(t *testing.T) {
	slow := uuid.New()
	fast := uuid.New()
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	toggle := NewOptimisticToggle(uuid.New(), func(ctx context.Context, id uuid.UUID, active bool) error {
		if id == slow {
			close(slowStarted)
			<-slowRelease
		}
		return nil
	}, nil)
	toggle.Seed(slow, true)
	toggle.Seed(fast, true)

	slowDone := make(chan struct{})
	go func() {
		toggle.Toggle(context.Background(), slow)
		close(slowDone)
	}()
	<-slowStarted

	// A second record toggles freely while the first persist is in flight.
	got := toggle.Toggle(context.Background(), fast)
	assert.False(t, got)
	assert.False(t, toggle.Value(fast))

	close(slowRelease)
	<-slowDone
	assert.False(t, toggle.Value(slow))
}

func TestToggleDiscardsResultAfterUnmount(t *testing.T) {
	id := uuid.New()
	notifier := &recordingNotifier{}
	started := make(chan struct{})
	release := make(chan struct{})

	toggle := NewOptimisticToggle(uuid.New(), func(ctx context.Context, _ uuid.UUID, active bool) error {
		close(started)
		<-release
		return errors.New("late failure")
	}, notifier)
	toggle.Seed(id, true)

	done := make(chan struct{})
	go func() {
		toggle.Toggle(context.Background(), id)
		close(done)
	}()
	<-started

	toggle.Unmount()
	close(release)
	<-done

	require.Equal(t, 0, notifier.errorCount(), "no toast after unmount")
	assert.False(t, toggle.Value(id), "no rollback after unmount")
}
