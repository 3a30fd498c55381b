package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-service/pkg/apperr"
)

func registrationSchema() Schema {
	return New(
		Field{Name: "name", Label: "Name", Kind: String, Required: true, MinLen: 3, MaxLen: 100},
		Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		Field{Name: "password", Label: "Password", Kind: String, Required: true, MinLen: 8},
		Field{Name: "confirm_password", Label: "Confirm password", Kind: String, Required: true, MatchField: "password"},
		Field{Name: "role", Label: "Role", Kind: String, Enum: []string{"USER", "VENDOR"}, Default: "USER"},
	)
}

func validRegistration() map[string]any {
	return map[string]any{
		"name":             "Jane Doe",
		"email":            "jane@example.com",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
		"role":             "VENDOR",
	}
}

func TestValidate_Success(t *testing.T) {
	out, err := registrationSchema().Validate(validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", out["name"])
	assert.Equal(t, "VENDOR", out["role"])
}

func TestValidate_DefaultSubstitution(t *testing.T) {
	payload := validRegistration()
	delete(payload, "role")

	out, err := registrationSchema().Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, "USER", out["role"])
}

func TestValidate_UnknownKeysStripped(t *testing.T) {
	payload := validRegistration()
	payload["admin"] = true
	payload["$where"] = "1 == 1"

	out, err := registrationSchema().Validate(payload)
	require.NoError(t, err)
	assert.NotContains(t, out, "admin")
	assert.NotContains(t, out, "$where")
}

func TestValidate_FailFastReportsFirstDeclaredField(t *testing.T) {
	// Both name and password are invalid; only name, declared first, is
	// reported.
	payload := validRegistration()
	payload["name"] = ""
	payload["password"] = "x"

	_, err := registrationSchema().Validate(payload)
	require.Error(t, err)
	assert.Equal(t, `"Name" is not allowed to be empty`, err.Error())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{
			name:    "required field absent",
			mutate:  func(p map[string]any) { delete(p, "email") },
			message: `"Email" is required`,
		},
		{
			name:    "required field empty",
			mutate:  func(p map[string]any) { p["email"] = "" },
			message: `"Email" is not allowed to be empty`,
		},
		{
			name:    "bad email format",
			mutate:  func(p map[string]any) { p["email"] = "not-an-email" },
			message: `"Email" must be a valid email`,
		},
		{
			name:    "below minimum length",
			mutate:  func(p map[string]any) { p["name"] = "ab" },
			message: `"Name" length must be at least 3 characters long`,
		},
		{
			name: "above maximum length",
			mutate: func(p map[string]any) {
				long := make([]byte, 101)
				for i := range long {
					long[i] = 'a'
				}
				p["name"] = string(long)
			},
			message: `"Name" length must be less than or equal to 100 characters long`,
		},
		{
			name:    "enum mismatch",
			mutate:  func(p map[string]any) { p["role"] = "ROOT" },
			message: `"Role" must be one of [USER, VENDOR]`,
		},
		{
			name: "confirmation mismatch",
			mutate: func(p map[string]any) {
				p["confirm_password"] = "different-pass"
			},
			message: `"Confirm password" must match "password"`,
		},
		{
			name:    "wrong primitive type",
			mutate:  func(p map[string]any) { p["name"] = 42.0 },
			message: `"Name" must be a string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegistration()
			tt.mutate(payload)

			_, err := registrationSchema().Validate(payload)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
		})
	}
}

func TestValidate_NumberCoercion(t *testing.T) {
	s := New(
		Field{Name: "price", Label: "Price", Kind: Number, Required: true, Min: Float(1)},
	)

	t.Run("JSON number", func(t *testing.T) {
		out, err := s.Validate(map[string]any{"price": 250000.0})
		require.NoError(t, err)
		assert.Equal(t, 250000.0, out["price"])
	})

	t.Run("numeric string", func(t *testing.T) {
		out, err := s.Validate(map[string]any{"price": "250000"})
		require.NoError(t, err)
		assert.Equal(t, 250000.0, out["price"])
	})

	t.Run("non-numeric string", func(t *testing.T) {
		_, err := s.Validate(map[string]any{"price": "lots"})
		require.Error(t, err)
		assert.Equal(t, `"Price" must be a number`, err.Error())
	})

	t.Run("below minimum", func(t *testing.T) {
		_, err := s.Validate(map[string]any{"price": 0.0})
		require.Error(t, err)
		assert.Equal(t, `"Price" must be greater than or equal to 1`, err.Error())
	})
}

func TestValidate_MaxBound(t *testing.T) {
	s := New(
		Field{Name: "rating", Label: "Rating", Kind: Number, Max: Float(5)},
	)

	_, err := s.Validate(map[string]any{"rating": 6.0})
	require.Error(t, err)
	assert.Equal(t, `"Rating" must be less than or equal to 5`, err.Error())
}

func TestValidate_BoolCoercion(t *testing.T) {
	s := New(
		Field{Name: "verified", Label: "Verified", Kind: Bool},
	)

	out, err := s.Validate(map[string]any{"verified": true})
	require.NoError(t, err)
	assert.Equal(t, true, out["verified"])

	out, err = s.Validate(map[string]any{"verified": "true"})
	require.NoError(t, err)
	assert.Equal(t, true, out["verified"])

	_, err = s.Validate(map[string]any{"verified": "maybe"})
	require.Error(t, err)
	assert.Equal(t, `"Verified" must be a boolean`, err.Error())
}

func TestValidate_OptionalFieldAbsent(t *testing.T) {
	s := New(
		Field{Name: "description", Label: "Description", Kind: String, MaxLen: 2000},
	)

	out, err := s.Validate(map[string]any{})
	require.NoError(t, err)
	assert.NotContains(t, out, "description")
}

func TestValidate_LabelFallsBackToName(t *testing.T) {
	s := New(
		Field{Name: "city", Kind: String, Required: true},
	)

	_, err := s.Validate(map[string]any{})
	require.Error(t, err)
	assert.Equal(t, `"city" is required`, err.Error())
}
