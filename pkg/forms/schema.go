package forms

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Status of a validation or submission pass.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Field declares one named input and its constraint expression. Rules uses
// go-playground/validator tag syntax (e.g. "required,max=150" or
// "required,oneof=15 30 45 60") so the same declaration drives both the
// advisory client-side pass and the authoritative server-side pass.
type Field struct {
	Name  string
	Rules string
}

// Schema is the declarative rule set a submitted payload must satisfy.
type Schema struct {
	fields   []Field
	validate *validator.Validate
}

// Result is the outcome of one validation (or submission) pass. A single
// invalid field fails the whole pass, but every field reports its own
// errors so the caller can surface all problems at once.
type Result struct {
	Status      Status              `json:"status"`
	Value       map[string]string   `json:"value,omitempty"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// Ok reports whether the pass succeeded.
func (r Result) Ok() bool {
	return r.Status == StatusSuccess
}

// Errors returns the messages recorded for a field, in order.
func (r Result) Errors(field string) []string {
	return r.FieldErrors[field]
}

// NewSchema creates a schema over the given fields. Field order is
// preserved; it determines binding iteration order in the controller.
func NewSchema(fields ...Field) *Schema {
	v := validator.New()

	// Register custom validators
	v.RegisterValidation("slug", validateSlug)

	return &Schema{
		fields:   fields,
		validate: v,
	}
}

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// oneofChoices splits a oneof tag parameter into its choices, honouring
// validator's single-quote syntax for values containing spaces.
func oneofChoices(param string) []string {
	if !strings.Contains(param, "'") {
		return strings.Split(param, " ")
	}
	var choices []string
	for _, part := range strings.Split(param, "'") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			choices = append(choices, trimmed)
		}
	}
	return choices
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

// Parse validates a flat mapping of field name -> submitted string against
// the schema. On success the returned Value holds the normalized mapping
// (whitespace-trimmed); on failure FieldErrors maps each offending field
// name to its ordered messages and Value is empty.
func (s *Schema) Parse(values map[string]string) Result {
	normalized := make(map[string]string, len(s.fields))
	fieldErrors := make(map[string][]string)

	for _, f := range s.fields {
		raw := strings.TrimSpace(values[f.Name])
		normalized[f.Name] = raw

		if err := s.validate.Var(raw, f.Rules); err != nil {
			verrs, ok := err.(validator.ValidationErrors)
			if !ok {
				fieldErrors[f.Name] = append(fieldErrors[f.Name], "invalid value")
				continue
			}
			for _, verr := range verrs {
				fieldErrors[f.Name] = append(fieldErrors[f.Name], formatFieldError(verr))
			}
		}
	}

	if len(fieldErrors) > 0 {
		return Result{Status: StatusError, FieldErrors: fieldErrors}
	}
	return Result{Status: StatusSuccess, Value: normalized}
}

// formatFieldError maps a validator tag failure to a human-readable message.
func formatFieldError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(oneofChoices(err.Param()), ", "))
	case "url":
		return "invalid URL"
	case "alphanum":
		return "only letters and numbers are allowed"
	case "lowercase":
		return "only lowercase characters are allowed"
	case "slug":
		return "only letters, numbers and hyphens are allowed"
	default:
		return "invalid value"
	}
}
