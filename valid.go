package valid

// Schema is the capability every binding in this package provides: a
// non-throwing check that classifies arbitrary input as either valid,
// producing a typed value, or invalid, producing an ordered issue list.
// An empty issue list means the input is valid
type Schema[T any] interface {
	Check(input any) (T, []Issue)
}

// Validate runs the schema's check and wraps the outcome in a Result.
// It never fails itself: invalid input is recovered into a Result whose
// Err carries the schema's issues in their reported order
func Validate[T any](schema Schema[T], input any) Result[T] {
	value, issues := schema.Check(input)
	if len(issues) > 0 {
		return fail[T](issues)
	}
	return ok(value)
}

// ValidateOrError runs Validate and converts a failed result into a
// returned *Error, for callers that prefer error-style control flow.
// On success it returns the typed value and a nil error
func ValidateOrError[T any](schema Schema[T], input any) (T, error) {
	result := Validate(schema, input)
	if !result.Valid {
		var zero T
		return zero, result.Err
	}
	return result.Value, nil
}

// MustValidate is like ValidateOrError but panics with the *Error when the
// input does not conform. Intended for init-time values known to be valid
func MustValidate[T any](schema Schema[T], input any) T {
	value, err := ValidateOrError(schema, input)
	if err != nil {
		panic(err)
	}
	return value
}
