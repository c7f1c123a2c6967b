package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSchema() *Schema {
	return NewSchema(
		Field{Name: "title", Rules: "required,max=150"},
		Field{Name: "url", Rules: "required,max=150,slug"},
		Field{Name: "description", Rules: "omitempty,max=300"},
		Field{Name: "duration", Rules: "required,oneof=15 30 45 60"},
	)
}

func TestSchemaParse(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantOk     bool
		wantErrsOn []string
	}{
		{
			name: "All fields valid",
			values: map[string]string{
				"title":       "30 min meeting",
				"url":         "intro-call",
				"description": "",
				"duration":    "30",
			},
			wantOk: true,
		},
		{
			name: "Missing required title reports only title",
			values: map[string]string{
				"title":    "",
				"url":      "intro-call",
				"duration": "30",
			},
			wantOk:     false,
			wantErrsOn: []string{"title"},
		},
		{
			name: "Multiple invalid fields reported simultaneously",
			values: map[string]string{
				"title":    "",
				"url":      "not a slug!",
				"duration": "25",
			},
			wantOk:     false,
			wantErrsOn: []string{"title", "url", "duration"},
		},
		{
			name: "Duration outside enumeration",
			values: map[string]string{
				"title":    "Quick sync",
				"url":      "quick-sync",
				"duration": "90",
			},
			wantOk:     false,
			wantErrsOn: []string{"duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testSchema().Parse(tt.values)
			assert.Equal(t, tt.wantOk, result.Ok())

			if tt.wantOk {
				assert.Empty(t, result.FieldErrors)
				return
			}

			assert.Len(t, result.FieldErrors, len(tt.wantErrsOn))
			for _, field := range tt.wantErrsOn {
				assert.NotEmpty(t, result.Errors(field), "expected errors on %q", field)
			}
		})
	}
}

func TestSchemaParseNormalizesWhitespace(t *testing.T) {
	result := testSchema().Parse(map[string]string{
		"title":    "  30 min meeting  ",
		"url":      "intro-call",
		"duration": "30",
	})

	assert.True(t, result.Ok())
	assert.Equal(t, "30 min meeting", result.Value["title"])
	assert.Equal(t, "30", result.Value["duration"])
}

func TestSchemaParseNoPartialSuccess(t *testing.T) {
	// A single invalid field fails the whole pass: no normalized value set.
	result := testSchema().Parse(map[string]string{
		"title":    "",
		"url":      "intro-call",
		"duration": "30",
	})

	assert.False(t, result.Ok())
	assert.Empty(t, result.Value)
	assert.NotEmpty(t, result.Errors("title"))
	assert.Empty(t, result.Errors("url"))
}
