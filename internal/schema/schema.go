// Package schema implements the declarative payload validation engine.
//
// A schema is data: an ordered list of field descriptors interpreted by one
// generic validator. Validation is fail-fast, reporting only the first
// violation in declared field order, and the error message names the field
// by its declared label. On success the payload is normalized: values are
// coerced to their declared kind, defaults substituted, and keys not
// declared in the schema stripped.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"estate-service/pkg/apperr"
)

// Kind is the primitive type a field's value must conform to.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	Email
)

// Field describes one accepted payload field.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool

	MinLen int // strings; 0 = unset
	MaxLen int // strings; 0 = unset

	Min *float64 // numbers
	Max *float64 // numbers

	Enum []string // string membership constraint

	// MatchField names a sibling field whose normalized value this field
	// must equal (e.g. password confirmation).
	MatchField string

	// Default is substituted when the field is absent from the payload.
	Default any
}

// Schema is an ordered set of field descriptors.
type Schema struct {
	fields []Field
}

// New builds a schema from fields. Declaration order determines which
// violation is reported when several fields fail at once.
func New(fields ...Field) Schema {
	return Schema{fields: fields}
}

var formatChecker = validator.New()

// Validate checks payload against the schema. It returns the normalized
// payload, or a validation error naming the first violated field's label.
func (s Schema) Validate(payload map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		raw, present := payload[f.Name]

		if !present || raw == nil {
			if f.Default != nil {
				out[f.Name] = f.Default
				continue
			}
			if f.Required {
				return nil, violation(f, "is required")
			}
			continue
		}

		value, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}

		if err := constrain(f, value, out); err != nil {
			return nil, err
		}

		out[f.Name] = value
	}

	return out, nil
}

// coerce converts raw to the field's declared kind.
func coerce(f Field, raw any) (any, error) {
	switch f.Kind {
	case String, Email:
		v, ok := raw.(string)
		if !ok {
			return nil, violation(f, "must be a string")
		}
		return v, nil
	case Number:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, violation(f, "must be a number")
			}
			return parsed, nil
		default:
			return nil, violation(f, "must be a number")
		}
	case Bool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return nil, violation(f, "must be a boolean")
			}
			return parsed, nil
		default:
			return nil, violation(f, "must be a boolean")
		}
	default:
		return nil, violation(f, "has an unsupported kind")
	}
}

// constrain applies the field's declared constraints to an already-coerced
// value. out holds the values produced so far in the same pass, used by
// cross-field equality.
func constrain(f Field, value any, out map[string]any) error {
	switch v := value.(type) {
	case string:
		if f.Required && v == "" {
			return violation(f, "is not allowed to be empty")
		}
		if f.Kind == Email && v != "" {
			if err := formatChecker.Var(v, "email"); err != nil {
				return violation(f, "must be a valid email")
			}
		}
		if f.MinLen > 0 && len(v) < f.MinLen {
			return violation(f, fmt.Sprintf("length must be at least %d characters long", f.MinLen))
		}
		if f.MaxLen > 0 && len(v) > f.MaxLen {
			return violation(f, fmt.Sprintf("length must be less than or equal to %d characters long", f.MaxLen))
		}
		if len(f.Enum) > 0 && !contains(f.Enum, v) {
			return violation(f, fmt.Sprintf("must be one of [%s]", strings.Join(f.Enum, ", ")))
		}
	case float64:
		if f.Min != nil && v < *f.Min {
			return violation(f, fmt.Sprintf("must be greater than or equal to %s", formatNumber(*f.Min)))
		}
		if f.Max != nil && v > *f.Max {
			return violation(f, fmt.Sprintf("must be less than or equal to %s", formatNumber(*f.Max)))
		}
	}

	if f.MatchField != "" {
		if sibling, ok := out[f.MatchField]; !ok || sibling != value {
			return violation(f, fmt.Sprintf("must match %q", f.MatchField))
		}
	}

	return nil
}

func violation(f Field, constraint string) error {
	label := f.Label
	if label == "" {
		label = f.Name
	}
	return apperr.Validation(fmt.Sprintf("%q %s", label, constraint))
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Float is a convenience for declaring Min/Max bounds inline.
func Float(v float64) *float64 {
	return &v
}
