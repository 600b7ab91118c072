package validators

import (
	"context"
	"strings"

	"github.com/securedesk/secure-desk/models"
)

// RecordValidator checks a record's field map against its collection schema.
// One instance is bound to one schema; every record store owns the validator
// for its own collection.
type RecordValidator struct {
	schema models.Schema
}

func NewRecordValidator(schema models.Schema) Validator {
	return &RecordValidator{schema: schema}
}

// Validate accepts a raw field map or a [models.Record] (by value or
// pointer). With no field-level scoping it checks every required field of
// the schema; with scoping it checks only the named fields that the schema
// also requires.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case map[string]string:
		return v.validateFields(ctx, value, fields...)
	case models.Record:
		return v.validateFields(ctx, value.Fields, fields...)
	case *models.Record:
		return v.validateFields(ctx, value.Fields, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateFields(_ context.Context, values map[string]string, fields ...string) error {
	required := v.schema.Required
	if len(fields) > 0 {
		required = intersect(v.schema.Required, fields)
	}

	var missing []string
	for _, name := range required {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Collection: v.schema.Collection, Missing: missing}
	}
	return nil
}

func intersect(required, scoped []string) []string {
	out := make([]string, 0, len(scoped))
	for _, name := range scoped {
		for _, r := range required {
			if name == r {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
