package valid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes schema-library error messages to English
var printer = message.NewPrinter(language.English)

// CompiledSchema validates JSON documents against a compiled JSON Schema.
// Unlike JSONSchema it supports drafts up to 2020-12 and resolves $ref
// within the schema document. It satisfies Schema[any]
type CompiledSchema struct {
	schema *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema given as a JSON string
func Compile(schemaJSON string) (*CompiledSchema, error) {
	var schemaDoc any
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		return nil, fmt.Errorf("invalid schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	// the resource must be a parsed JSON value, not an io.Reader
	if err := compiler.AddResource("schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &CompiledSchema{schema: compiled}, nil
}

// Check classifies input against the compiled schema. Input handling matches
// JSONSchema.Check: raw JSON text is parsed, other values are normalized
// through their JSON encoding, and Check itself never fails
func (s *CompiledSchema) Check(input any) (any, []Issue) {
	document, issue := normalizeJSON(input)
	if issue != nil {
		return nil, []Issue{*issue}
	}

	err := s.schema.Validate(document)
	if err == nil {
		return document, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	collectIssues(validationErr, &issues)
	if len(issues) == 0 {
		issues = append(issues, Issue{Message: validationErr.Error()})
	}
	return nil, issues
}

// collectIssues walks the error tree depth-first and keeps leaf errors in
// the order the library reports them. Pure $ref bookkeeping entries carry no
// information about the input and are skipped
func collectIssues(err *jsonschema.ValidationError, issues *[]Issue) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			var path []string
			if len(err.InstanceLocation) > 0 {
				path = append(path, err.InstanceLocation...)
			}
			*issues = append(*issues, Issue{Path: path, Message: msg})
		}
	}

	for _, cause := range err.Causes {
		collectIssues(cause, issues)
	}
}
