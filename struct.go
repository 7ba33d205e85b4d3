package valid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrTranslatorNotFound indicates the English translator is unavailable
var ErrTranslatorNotFound = errors.New("translator not found")

// StructSchema validates tagged Go structs with go-playground/validator.
// The typed value is the populated struct, so callers get decoded, checked
// data in one step. It satisfies Schema[T]
type StructSchema[T any] struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewStructSchema constructs a StructSchema with English error messages
func NewStructSchema[T any]() (*StructSchema[T], error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	translator, found := uni.GetTranslator("en")
	if !found {
		return nil, ErrTranslatorNotFound
	}

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &StructSchema[T]{
		validate:   validate,
		translator: translator,
	}, nil
}

// Check classifies input against the struct's validate tags. Input may be a
// T, or raw JSON text ([]byte, string, json.RawMessage) which is decoded
// into a T first. Check never fails: decode errors and unexpected validator
// failures become a single root-level issue
func (s *StructSchema[T]) Check(input any) (T, []Issue) {
	var value T

	if typed, isT := input.(T); isT {
		value = typed
	} else {
		var raw []byte
		switch v := input.(type) {
		case json.RawMessage:
			raw = v
		case []byte:
			raw = v
		case string:
			raw = []byte(v)
		default:
			return value, []Issue{{Message: fmt.Sprintf("unsupported input type %T", input)}}
		}

		if err := json.Unmarshal(raw, &value); err != nil {
			return value, []Issue{{Message: fmt.Sprintf("invalid JSON: %s", err)}}
		}
	}

	err := s.validate.Struct(value)
	if err == nil {
		return value, nil
	}

	var zero T

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return zero, []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		issues = append(issues, Issue{
			Path:    fieldPath(fieldErr.Namespace()),
			Message: fieldErr.Translate(s.translator),
		})
	}
	return zero, issues
}

// fieldPath converts a validator namespace such as "User.Address.City" into
// path segments, dropping the root struct name
func fieldPath(namespace string) []string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	return segments
}
