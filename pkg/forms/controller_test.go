package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[string]string {
	return map[string]string{
		"title":    "30 min meeting",
		"url":      "intro-call",
		"duration": "30",
	}
}

func TestControllerBlurTriggersClientValidation(t *testing.T) {
	c := NewController(testSchema(), nil)
	assert.Equal(t, StateIdle, c.State())

	c.HandleBlur("title", "")
	assert.Equal(t, StateClientInvalid, c.State())
	assert.NotEmpty(t, c.Bind("title").Errors)

	// Untouched fields never report client errors, even when invalid.
	assert.Empty(t, c.Bind("url").Errors)
}

func TestControllerRevalidatesOnInputOnceTouched(t *testing.T) {
	c := NewController(testSchema(), nil)

	// Input before blur: no validation yet.
	c.HandleInput("title", "")
	assert.Equal(t, StateIdle, c.State())

	c.HandleBlur("title", "")
	assert.Equal(t, StateClientInvalid, c.State())

	c.HandleInput("title", "Intro call")
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, c.Bind("title").Errors)
}

func TestControllerSubmitSuccess(t *testing.T) {
	c := NewController(testSchema(), nil)
	for name, value := range validValues() {
		c.HandleInput(name, value)
	}

	var submitted map[string]string
	result, err := c.Submit(context.Background(), func(ctx context.Context, values map[string]string) (Result, error) {
		submitted = values
		return Result{Status: StatusSuccess, Value: values}, nil
	})

	require.NoError(t, err)
	assert.True(t, result.Ok())
	assert.Equal(t, StateSuccess, c.State())
	assert.Equal(t, "intro-call", submitted["url"])
}

func TestControllerServerRejectedAnnotatesExactFields(t *testing.T) {
	c := NewController(testSchema(), nil)
	titleKey := c.Bind("title").Key

	result, err := c.Submit(context.Background(), func(ctx context.Context, values map[string]string) (Result, error) {
		return Result{
			Status:      StatusError,
			FieldErrors: map[string][]string{"title": {"this field is required"}},
		}, nil
	})

	require.NoError(t, err)
	assert.False(t, result.Ok())
	assert.Equal(t, StateServerRejected, c.State())
	assert.Equal(t, []string{"this field is required"}, c.Bind("title").Errors)
	assert.Empty(t, c.Bind("url").Errors)

	// Repopulating a rejected field changes its identity key so the view
	// remounts the uncontrolled input.
	assert.NotEqual(t, titleKey, c.Bind("title").Key)
}

func TestControllerIgnoresSecondSubmitWhileInFlight(t *testing.T) {
	c := NewController(testSchema(), nil)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Submit(context.Background(), func(ctx context.Context, values map[string]string) (Result, error) {
			close(started)
			<-release
			return Result{Status: StatusSuccess, Value: values}, nil
		})
	}()

	<-started
	assert.Equal(t, StateSubmitting, c.State())

	_, err := c.Submit(context.Background(), func(ctx context.Context, values map[string]string) (Result, error) {
		t.Fatal("second action must not run")
		return Result{}, nil
	})
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	<-done
	assert.Equal(t, StateSuccess, c.State())
}

func TestControllerDiscardsResultAfterUnmount(t *testing.T) {
	c := NewController(testSchema(), nil)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Submit(context.Background(), func(ctx context.Context, values map[string]string) (Result, error) {
			close(started)
			<-release
			return Result{Status: StatusSuccess, Value: values}, nil
		})
	}()

	<-started
	c.Unmount()
	close(release)
	<-done

	// The stale result must not have been applied.
	assert.Equal(t, StateSubmitting, c.State())
	assert.Nil(t, c.LastResult())
}

func TestControllerSetValueBumpsIdentityKey(t *testing.T) {
	c := NewController(testSchema(), map[string]string{"url": "intro-call"})

	before := c.Bind("url")
	assert.Equal(t, "intro-call", before.InitialValue)

	// Unchanged value keeps the key stable.
	c.SetValue("url", "intro-call")
	assert.Equal(t, before.Key, c.Bind("url").Key)

	c.SetValue("url", "")
	after := c.Bind("url")
	assert.Equal(t, "", after.InitialValue)
	assert.NotEqual(t, before.Key, after.Key)
}

func TestControllerReset(t *testing.T) {
	c := NewController(testSchema(), nil)
	c.HandleBlur("title", "")
	require.Equal(t, StateClientInvalid, c.State())

	c.Reset()
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, c.Bind("title").Errors)
	assert.Nil(t, c.LastResult())
}
