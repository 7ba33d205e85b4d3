package valid

// Error aggregates every issue reported by one failed validation attempt.
// It implements the error interface so it can be returned, wrapped, and
// matched with errors.As
type Error struct {
	Message string  `json:"message"`
	Issues  []Issue `json:"issues"`
}

// NewError builds an Error whose display message is derived from the issue
// list via UserMessage. The issue order is kept as reported
func NewError(issues []Issue) *Error {
	message := UserMessage(issues)
	if message == "" {
		message = "validation failed"
	}

	return &Error{
		Message: message,
		Issues:  issues,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Result represents the outcome of a validation. When Valid is true, Value
// holds the typed value produced by the schema and Err is nil; when Valid is
// false, Err carries the issues and Value is the zero value. Results are
// produced by Validate and must not be modified afterwards
type Result[T any] struct {
	Valid bool   `json:"valid"`
	Value T      `json:"value,omitempty"`
	Err   *Error `json:"error,omitempty"`
}

func ok[T any](value T) Result[T] {
	return Result[T]{Valid: true, Value: value}
}

func fail[T any](issues []Issue) Result[T] {
	return Result[T]{Err: NewError(issues)}
}
