package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func validProductRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:        "Widget",
		Description: "A simple widget for testing",
		Quantity:    int64Ptr(5),
		Categories:  []string{"64f1a2b3c4d5e6f708192a3b"},
	}
}

func violationsFor(t *testing.T, payload dto.ProductRequest) errs.FieldViolations {
	t.Helper()

	err := New().Validate(&payload)
	require.Error(t, err)

	return Violations(err, dto.ProductRequestMessages)
}

func fieldsOf(violations errs.FieldViolations) []string {
	fields := make([]string, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, violation.Field)
	}
	return fields
}

func TestValidateProductRequestPasses(t *testing.T) {
	payload := validProductRequest()

	assert.NoError(t, New().Validate(&payload))
}

func TestValidateProductRequestEmptyPayload(t *testing.T) {
	violations := violationsFor(t, dto.ProductRequest{})

	assert.Equal(t, []string{"name", "description", "quantity", "categories"}, fieldsOf(violations))
	assert.Equal(t, "Product name is required", violations[0].Message)
	assert.Equal(t, "Description is required", violations[1].Message)
	assert.Equal(t, "Quantity is required", violations[2].Message)
	assert.Equal(t, "At least one category is required", violations[3].Message)
}

func TestValidateProductRequestFieldRules(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(r *dto.ProductRequest)
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "name too short",
			mutate:          func(r *dto.ProductRequest) { r.Name = "ab" },
			expectedField:   "name",
			expectedMessage: "Name must be 3-100 characters",
		},
		{
			name:            "description too short",
			mutate:          func(r *dto.ProductRequest) { r.Description = "too short" },
			expectedField:   "description",
			expectedMessage: "Description must be 10-500 characters",
		},
		{
			name:            "negative quantity",
			mutate:          func(r *dto.ProductRequest) { r.Quantity = int64Ptr(-1) },
			expectedField:   "quantity",
			expectedMessage: "Quantity must be a non-negative integer",
		},
		{
			name:            "malformed category id",
			mutate:          func(r *dto.ProductRequest) { r.Categories = []string{"not-an-object-id"} },
			expectedField:   "categories",
			expectedMessage: "Invalid category ID format",
		},
		{
			name:            "category id with wrong length",
			mutate:          func(r *dto.ProductRequest) { r.Categories = []string{"abc123"} },
			expectedField:   "categories",
			expectedMessage: "Invalid category ID format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := validProductRequest()
			tc.mutate(&payload)

			violations := violationsFor(t, payload)

			require.Len(t, violations, 1)
			assert.Equal(t, tc.expectedField, violations[0].Field)
			assert.Equal(t, tc.expectedMessage, violations[0].Message)
		})
	}
}

// Two malformed ids in the same request collapse onto one violation for the
// categories field.
func TestViolationsCollapseSliceElements(t *testing.T) {
	payload := validProductRequest()
	payload.Categories = []string{"bad-one", "bad-two"}

	violations := violationsFor(t, payload)

	require.Len(t, violations, 1)
	assert.Equal(t, "categories", violations[0].Field)
}

func TestTrimNormalizesWhitespace(t *testing.T) {
	payload := dto.ProductRequest{
		Name:        "  Widget  ",
		Description: "  A simple widget for testing  ",
	}

	payload.Trim()

	assert.Equal(t, "Widget", payload.Name)
	assert.Equal(t, "A simple widget for testing", payload.Description)
}
