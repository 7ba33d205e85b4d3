/*
Package valid adapts schema-validation libraries behind a small, uniform result
and error surface for application code.

Every schema binding in this package satisfies the same capability: a
non-throwing check that classifies arbitrary input as valid, producing a typed
value, or invalid, producing an ordered list of issues. The package layers four
operations on that capability, so application code handles validation outcomes
the same way regardless of which library performed the check.

# Main Features

- A generic Schema[T] capability with three concrete bindings
- Result-style and error-style validation (Validate, ValidateOrError, MustValidate)
- Uniform issue formatting for logs and user-facing messages
- HTTP middleware for automatic request validation
- A registry for applications juggling per-endpoint schemas

# Core Operations

Validate never fails; invalid input is recovered into a Result:

	result := valid.Validate[any](schema, input)
	if !result.Valid {
		for _, issue := range result.Err.Issues {
			fmt.Println(issue)
		}
	}

ValidateOrError converts a failed check into a returned *valid.Error for
callers that prefer error-style control flow:

	value, err := valid.ValidateOrError[any](schema, input)
	if err != nil {
		var verr *valid.Error
		if errors.As(err, &verr) {
			fmt.Println(valid.UserMessage(verr.Issues))
		}
	}

FormatIssues renders one line per issue, "<dot-joined path>: <message>", in
the order the schema reported them. UserMessage collapses an issue list into
a single display string: one issue verbatim, several under a
"Multiple validation errors:" header.

# Schema Bindings

JSONSchema validates JSON documents against JSON Schema Draft 7 via
github.com/xeipuuv/gojsonschema:

	schema, err := valid.NewFromString(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 2},
			"email": {"type": "string", "format": "email"}
		},
		"required": ["name", "email"]
	}`)

CompiledSchema supports drafts up to 2020-12 via
github.com/santhosh-tekuri/jsonschema/v6:

	schema, err := valid.Compile(schemaJSON)

StructSchema validates tagged Go structs via go-playground/validator, with
English messages, and decodes raw JSON into the struct first when needed:

	type User struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	schema, err := valid.NewStructSchema[User]()
	user, err := valid.ValidateOrError[User](schema, body)

Any other validation library can participate by implementing Schema[T].

# HTTP Middleware

JSONSchema doubles as request-validation middleware:

	http.HandleFunc("/users", schema.Middleware(userHandler))

Non-conforming request bodies receive a JSON 400 response whose error field
is the user message and whose details are the individual issues. Methods
without meaningful bodies (GET, DELETE, HEAD, OPTIONS by default) skip
validation; both the skip list and the error handler are configurable through
MiddlewareWithConfig.

# Multiple Schemas

For applications with several endpoints and different schemas:

	registry := valid.NewRegistry()
	if err := registry.AddFromFile("user", "schemas/user.json"); err != nil {
		log.Fatal(err)
	}

	if schema, ok := registry.Get("user"); ok {
		result := valid.Validate[any](schema, body)
		// ...
	}

# Error Handling

The package distinguishes validation failures from operational errors:

  - Operational errors (unreadable schema file, malformed schema JSON) are
    returned as error from constructors only.
  - Invalid input produces issues, never an error: Check and Validate cannot
    fail. A binding's internal failure, including malformed input JSON,
    becomes a single root-level issue.

valid.Error implements the error interface and carries the full ordered issue
list, so it can be matched with errors.As and inspected after the fact.

# Concurrency

All schemas are immutable after construction and all operations are pure
functions over their arguments, so they are safe for concurrent use without
coordination. Registry is not synchronized; populate it during startup or
guard it externally.
*/
package valid
