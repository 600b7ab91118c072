// Package validators enforces collection schemas on incoming vault records.
//
// Each collection carries a [models.Schema] naming its required fields; a
// record with a missing or empty required field is rejected with a
// [*ValidationError] listing every offending field name, so callers can
// surface the full set of form errors at once instead of one at a time.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates arbitrary input values. Implementations may restrict
// validation to specific named fields via the optional field-level scoping
// arguments.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
