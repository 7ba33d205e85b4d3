package valid

import (
	"os"
	"reflect"
	"testing"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"name": {
			"type": "string",
			"minLength": 2,
			"maxLength": 50
		},
		"email": {
			"type": "string",
			"format": "email"
		},
		"age": {
			"type": "integer",
			"minimum": 0,
			"maximum": 120
		},
		"address": {
			"type": "object",
			"properties": {
				"street": {"type": "string"},
				"city": {"type": "string"},
				"zipCode": {"type": "string", "pattern": "^[0-9]{5}-?[0-9]{3}$"}
			},
			"required": ["street", "city"]
		}
	},
	"required": ["name", "email"]
}`

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name        string
		schema      string
		expectError bool
	}{
		{
			name:        "valid schema",
			schema:      testSchema,
			expectError: false,
		},
		{
			name:        "empty schema",
			schema:      "",
			expectError: true,
		},
		{
			name:        "invalid JSON",
			schema:      `{"type": "object"`,
			expectError: true,
		},
		{
			name:        "whitespace only",
			schema:      "   ",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := NewFromString(tt.schema)
			if tt.expectError {
				if err == nil {
					t.Error("expected an error, got none")
				}
				if schema != nil {
					t.Error("expected nil schema on error")
				}
			} else {
				if err != nil {
					t.Errorf("did not expect error, got: %v", err)
				}
				if schema == nil {
					t.Error("expected a usable schema")
				}
			}
		})
	}
}

func TestNewFromBytes(t *testing.T) {
	tests := []struct {
		name        string
		schema      []byte
		expectError bool
	}{
		{
			name:        "valid schema bytes",
			schema:      []byte(testSchema),
			expectError: false,
		},
		{
			name:        "empty bytes",
			schema:      []byte{},
			expectError: true,
		},
		{
			name:        "nil bytes",
			schema:      nil,
			expectError: true,
		},
		{
			name:        "invalid JSON bytes",
			schema:      []byte(`{"type": "object"`),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := NewFromBytes(tt.schema)
			if tt.expectError {
				if err == nil {
					t.Error("expected an error, got none")
				}
			} else {
				if err != nil {
					t.Errorf("did not expect error, got: %v", err)
				}
				if schema == nil {
					t.Error("expected a usable schema")
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-schema-*.json")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(testSchema); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	tmpFile.Close()

	schema, err := New(tmpFile.Name())
	if err != nil {
		t.Errorf("did not expect error, got: %v", err)
	}
	if schema == nil {
		t.Error("expected a usable schema")
	}

	_, err = New("no-such-file.json")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestJSONSchemaCheck(t *testing.T) {
	schema, err := NewFromString(testSchema)
	if err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	tests := []struct {
		name        string
		input       any
		expectValid bool
	}{
		{
			name: "valid document",
			input: `{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"age": 30,
				"address": {
					"street": "1 Main St",
					"city": "Springfield",
					"zipCode": "01234-567"
				}
			}`,
			expectValid: true,
		},
		{
			name:        "minimal valid document",
			input:       `{"name": "Ana", "email": "ana@test.com"}`,
			expectValid: true,
		},
		{
			name:        "raw bytes input",
			input:       []byte(`{"name": "Ana", "email": "ana@test.com"}`),
			expectValid: true,
		},
		{
			name: "arbitrary Go value input",
			input: map[string]any{
				"name":  "Test User",
				"email": "test@example.com",
				"age":   25,
			},
			expectValid: true,
		},
		{
			name:        "missing required field",
			input:       `{"name": "Jane Doe"}`,
			expectValid: false,
		},
		{
			name:        "invalid email format",
			input:       `{"name": "Jane Doe", "email": "not-an-email"}`,
			expectValid: false,
		},
		{
			name:        "name too short",
			input:       `{"name": "J", "email": "j@example.com"}`,
			expectValid: false,
		},
		{
			name:        "negative age",
			input:       `{"name": "Jane Doe", "email": "jane@example.com", "age": -5}`,
			expectValid: false,
		},
		{
			name: "invalid nested field",
			input: `{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"address": {"street": "1 Main St", "city": "Springfield", "zipCode": "123"}
			}`,
			expectValid: false,
		},
		{
			name:        "malformed JSON",
			input:       `{"name": "Jane"`,
			expectValid: false,
		},
		{
			name:        "empty input",
			input:       "",
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate[any](schema, tt.input)

			if result.Valid != tt.expectValid {
				t.Errorf("expected valid=%v, got valid=%v", tt.expectValid, result.Valid)
				if result.Err != nil {
					t.Logf("issues: %v", FormatIssues(result.Err.Issues))
				}
			}

			if tt.expectValid {
				if result.Value == nil {
					t.Error("valid result should carry the parsed document")
				}
			} else {
				if result.Err == nil || len(result.Err.Issues) == 0 {
					t.Error("invalid input should produce detailed issues")
				}
			}
		})
	}
}

func TestJSONSchemaIssuePaths(t *testing.T) {
	schema, err := NewFromString(testSchema)
	if err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	_, issues := schema.Check(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"address": {"street": "1 Main St", "city": "Springfield", "zipCode": "123"}
	}`)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), FormatIssues(issues))
	}
	if !reflect.DeepEqual(issues[0].Path, []string{"address", "zipCode"}) {
		t.Errorf("expected path [address zipCode], got %v", issues[0].Path)
	}

	// missing required fields are reported at the root
	_, issues = schema.Check(`{}`)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), FormatIssues(issues))
	}
	for _, issue := range issues {
		if len(issue.Path) != 0 {
			t.Errorf("expected root-level issue, got path %v", issue.Path)
		}
		if issue.Message == "" {
			t.Error("issue should carry a message")
		}
	}
}

func TestJSONSchemaMalformedInput(t *testing.T) {
	schema, err := NewFromString(testSchema)
	if err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	value, issues := schema.Check(`{"name": "Jane"`)
	if value != nil {
		t.Error("malformed input should not produce a value")
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue for malformed JSON, got %d", len(issues))
	}
	if len(issues[0].Path) != 0 {
		t.Errorf("malformed JSON should be a root-level issue, got path %v", issues[0].Path)
	}

	// unmarshalable Go values are recovered into an issue as well
	_, issues = schema.Check(func() {})
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue for unencodable input, got %d", len(issues))
	}
}

func BenchmarkJSONSchemaCheck(b *testing.B) {
	schema, err := NewFromString(testSchema)
	if err != nil {
		b.Fatalf("creating schema: %v", err)
	}

	document := []byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"age": 30,
		"address": {
			"street": "1 Main St",
			"city": "Springfield",
			"zipCode": "01234-567"
		}
	}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		schema.Check(document)
	}
}
