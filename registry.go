package valid

// Registry manages named schemas, one per endpoint or message kind
type Registry struct {
	schemas map[string]Schema[any]
}

// NewRegistry creates an empty schema registry
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]Schema[any]),
	}
}

// Add registers a schema under a specific key
func (rg *Registry) Add(key string, schema Schema[any]) {
	rg.schemas[key] = schema
}

// AddFromFile registers a JSONSchema loaded from a schema file
func (rg *Registry) AddFromFile(key, schemaPath string) error {
	schema, err := New(schemaPath)
	if err != nil {
		return err
	}
	rg.Add(key, schema)
	return nil
}

// AddFromString registers a JSONSchema parsed from a schema string
func (rg *Registry) AddFromString(key, schemaJSON string) error {
	schema, err := NewFromString(schemaJSON)
	if err != nil {
		return err
	}
	rg.Add(key, schema)
	return nil
}

// Get returns the schema registered under key
func (rg *Registry) Get(key string) (Schema[any], bool) {
	schema, exists := rg.schemas[key]
	return schema, exists
}

// Remove unregisters a schema
func (rg *Registry) Remove(key string) {
	delete(rg.schemas, key)
}

// Keys returns the keys of all registered schemas
func (rg *Registry) Keys() []string {
	keys := make([]string, 0, len(rg.schemas))
	for key := range rg.schemas {
		keys = append(keys, key)
	}
	return keys
}

// Count returns the number of registered schemas
func (rg *Registry) Count() int {
	return len(rg.schemas)
}
