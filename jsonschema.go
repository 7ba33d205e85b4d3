package valid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema validates JSON documents against a JSON Schema Draft 7 schema.
// It satisfies Schema[any]: the typed value is the parsed document
// (map[string]any, []any, or a JSON scalar)
type JSONSchema struct {
	loader gojsonschema.JSONLoader
}

// New creates a JSONSchema from a schema file
func New(schemaPath string) (*JSONSchema, error) {
	schemaFile, err := os.Open(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("opening schema file '%s': %w", schemaPath, err)
	}
	defer schemaFile.Close()

	schemaBytes, err := io.ReadAll(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("reading schema file '%s': %w", schemaPath, err)
	}

	var schemaObj any
	if err := json.Unmarshal(schemaBytes, &schemaObj); err != nil {
		return nil, fmt.Errorf("invalid schema in '%s': %w", schemaPath, err)
	}

	return &JSONSchema{
		loader: gojsonschema.NewBytesLoader(schemaBytes),
	}, nil
}

// NewFromString creates a JSONSchema from a schema given as a JSON string
func NewFromString(schemaJSON string) (*JSONSchema, error) {
	if strings.TrimSpace(schemaJSON) == "" {
		return nil, fmt.Errorf("schema must not be empty")
	}

	var schemaObj any
	if err := json.Unmarshal([]byte(schemaJSON), &schemaObj); err != nil {
		return nil, fmt.Errorf("invalid schema JSON: %w", err)
	}

	return &JSONSchema{
		loader: gojsonschema.NewStringLoader(schemaJSON),
	}, nil
}

// NewFromBytes creates a JSONSchema from the raw bytes of a schema
func NewFromBytes(schemaBytes []byte) (*JSONSchema, error) {
	if len(schemaBytes) == 0 {
		return nil, fmt.Errorf("schema bytes must not be empty")
	}

	var schemaObj any
	if err := json.Unmarshal(schemaBytes, &schemaObj); err != nil {
		return nil, fmt.Errorf("invalid schema bytes: %w", err)
	}

	return &JSONSchema{
		loader: gojsonschema.NewBytesLoader(schemaBytes),
	}, nil
}

// Check classifies input against the schema. Raw JSON text ([]byte, string,
// json.RawMessage) is parsed first; any other value is normalized through
// its JSON encoding. Check never fails: malformed input and internal
// validation errors are reported as a single root-level issue
func (s *JSONSchema) Check(input any) (any, []Issue) {
	document, issue := normalizeJSON(input)
	if issue != nil {
		return nil, []Issue{*issue}
	}

	result, err := gojsonschema.Validate(s.loader, gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, []Issue{{Message: fmt.Sprintf("schema check failed: %s", err)}}
	}

	if result.Valid() {
		return document, nil
	}

	issues := make([]Issue, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		issues = append(issues, Issue{
			Path:    splitField(resultErr.Field()),
			Message: resultErr.Description(),
		})
	}
	return nil, issues
}

// normalizeJSON turns the caller's input into a parsed JSON document. Raw
// JSON text is unmarshaled directly; everything else makes a round trip
// through encoding/json so the validated value has JSON semantics
func normalizeJSON(input any) (any, *Issue) {
	var raw []byte

	switch v := input.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, &Issue{Message: fmt.Sprintf("cannot encode input as JSON: %s", err)}
		}
		raw = encoded
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, &Issue{Message: fmt.Sprintf("invalid JSON: %s", err)}
	}
	return document, nil
}

// splitField converts a gojsonschema field reference into path segments.
// gojsonschema reports root-level issues with the field "(root)"
func splitField(field string) []string {
	if field == "" || field == "(root)" {
		return nil
	}
	return strings.Split(field, ".")
}
