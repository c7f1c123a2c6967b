package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State of a form submission controller.
type State string

const (
	// StateIdle means no submission or failed validation has happened yet.
	StateIdle State = "idle"
	// StateClientInvalid means a blur- or input-triggered local validation failed.
	StateClientInvalid State = "client_invalid"
	// StateSubmitting means the server action is in flight.
	StateSubmitting State = "submitting"
	// StateServerRejected means the server returned field errors.
	StateServerRejected State = "server_rejected"
	// StateSuccess means the server accepted the submission.
	StateSuccess State = "success"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not resolved yet. Submissions are never pipelined.
var ErrSubmitInFlight = errors.New("forms: submission already in flight")

// Action is the persistence collaborator: a one-shot call taking the
// submitted values and returning the authoritative result. The controller
// never short-circuits on client validation success alone.
type Action func(ctx context.Context, values map[string]string) (Result, error)

// Binding is the per-field view-facing projection of the controller's
// current state. Key changes whenever InitialValue changes out-of-band,
// forcing the view to discard and recreate uncontrolled input state.
type Binding struct {
	Name         string   `json:"name"`
	Key          string   `json:"key"`
	InitialValue string   `json:"initialValue"`
	Errors       []string `json:"errors,omitempty"`
}

// Controller orchestrates one logical form: it wires the schema to
// blur/input events, holds the last submission result, and exposes
// per-field bindings to the view.
//
// All state transitions run to completion under the lock; the lock is
// released across the Action call so other forms and list items stay
// interactive while a submission is pending.
type Controller struct {
	mu sync.Mutex

	schema  *Schema
	state   State
	mounted bool

	// generation increments on Reset/Unmount so a stale action result
	// resolving afterwards is discarded rather than applied.
	generation uint64

	values       map[string]string
	keys         map[string]uint64
	touched      map[string]bool
	clientErrors map[string][]string
	serverErrors map[string][]string

	lastResult *Result
}

// NewController creates a controller over schema, seeding each field's
// initial value from initial (missing fields seed empty).
func NewController(schema *Schema, initial map[string]string) *Controller {
	c := &Controller{
		schema:       schema,
		state:        StateIdle,
		mounted:      true,
		values:       make(map[string]string),
		keys:         make(map[string]uint64),
		touched:      make(map[string]bool),
		clientErrors: make(map[string][]string),
		serverErrors: make(map[string][]string),
	}
	for _, name := range schema.Fields() {
		c.values[name] = initial[name]
	}
	return c
}

// State returns the controller's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastResult returns the result of the last resolved submission, or nil.
func (c *Controller) LastResult() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// Bind returns the view binding for a field. It is a pure projection of
// the current state: server errors win for fields the server rejected,
// client errors otherwise.
func (c *Controller) Bind(name string) Binding {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := c.serverErrors[name]
	if len(errs) == 0 {
		errs = c.clientErrors[name]
	}
	return Binding{
		Name:         name,
		Key:          fmt.Sprintf("%s-%d", name, c.keys[name]),
		InitialValue: c.values[name],
		Errors:       errs,
	}
}

// HandleBlur records the field's value and runs the advisory client-side
// validation. A field only starts reporting client errors once blurred.
func (c *Controller) HandleBlur(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[name] = value
	c.touched[name] = true
	c.revalidate()
}

// HandleInput records the field's value and, once the field has been
// touched, revalidates continuously on every input event.
func (c *Controller) HandleInput(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[name] = value
	if c.touched[name] {
		c.revalidate()
	}
}

// SetValue changes a field's value out-of-band (e.g. after an external
// mutation like image deletion) and bumps the field's identity key so the
// view does not retain stale uncontrolled-input state.
func (c *Controller) SetValue(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values[name] != value {
		c.values[name] = value
		c.keys[name]++
	}
}

// revalidate runs the schema over the current values and records client
// errors for touched fields only. Caller holds the lock.
func (c *Controller) revalidate() {
	result := c.schema.Parse(c.values)

	c.clientErrors = make(map[string][]string)
	invalid := false
	for name, errs := range result.FieldErrors {
		if c.touched[name] {
			c.clientErrors[name] = errs
			invalid = true
		}
	}

	// Re-examining a field clears what the server said about it.
	for name := range c.touched {
		delete(c.serverErrors, name)
	}

	switch c.state {
	case StateSubmitting:
		// Submission in flight; its resolution decides the next state.
	default:
		if invalid {
			c.state = StateClientInvalid
		} else if len(c.serverErrors) == 0 {
			c.state = StateIdle
		}
	}
}

// Submit transitions to Submitting and delegates persistence to the action
// collaborator. A second submit while one is in flight is ignored with
// ErrSubmitInFlight. The result is applied only if the controller is still
// mounted and has not been reset since the submit started.
func (c *Controller) Submit(ctx context.Context, action Action) (Result, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	if !c.mounted {
		c.mu.Unlock()
		return Result{}, errors.New("forms: controller is unmounted")
	}

	c.state = StateSubmitting
	gen := c.generation
	submitted := make(map[string]string, len(c.values))
	for k, v := range c.values {
		submitted[k] = v
	}
	c.mu.Unlock()

	result, err := action(ctx, submitted)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Navigating away or resetting while the call was outstanding means
	// the result is stale; discard it without touching state.
	if !c.mounted || gen != c.generation {
		if err != nil {
			return Result{}, err
		}
		return result, nil
	}

	if err != nil {
		c.state = StateIdle
		return Result{}, err
	}

	c.lastResult = &result
	if result.Ok() {
		c.state = StateSuccess
		c.serverErrors = make(map[string][]string)
		c.clientErrors = make(map[string][]string)
		return result, nil
	}

	// Server rejected: annotate exactly the fields it named, repopulating
	// bindings with the submitted values and bumping their identity keys.
	c.state = StateServerRejected
	c.serverErrors = make(map[string][]string, len(result.FieldErrors))
	for name, errs := range result.FieldErrors {
		c.serverErrors[name] = errs
		c.keys[name]++
	}
	c.touched = make(map[string]bool)
	c.clientErrors = make(map[string][]string)
	return result, nil
}

// Reset returns the controller to Idle, clearing all field errors and
// touch state. Values keep their current contents.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = StateIdle
	c.touched = make(map[string]bool)
	c.clientErrors = make(map[string][]string)
	c.serverErrors = make(map[string][]string)
	c.lastResult = nil
}

// Unmount detaches the controller from its view. Any submission result
// arriving afterwards is silently discarded.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.mounted = false
}
