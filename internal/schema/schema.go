package schema

// JSONSchema represents a JSON Schema object compatible with draft-07.
// Tool definitions use it to describe their argument records to the LLM.
type JSONSchema struct {
	Type                 string                 `json:"type"`
	Description          string                 `json:"description,omitempty"`
	Properties           map[string]SchemaField `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Items                *SchemaField           `json:"items,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
}

// SchemaField represents a field within a schema.
type SchemaField struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Minimum     *float64               `json:"minimum,omitempty"`
	Maximum     *float64               `json:"maximum,omitempty"`
	Items       *SchemaField           `json:"items,omitempty"`
	Properties  map[string]SchemaField `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// NewObjectSchema creates a new object schema with the given properties and required fields.
func NewObjectSchema(properties map[string]SchemaField, required []string) JSONSchema {
	return JSONSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// NewStringField creates a new string field with the given description.
func NewStringField(description string) SchemaField {
	return SchemaField{
		Type:        "string",
		Description: description,
	}
}

// NewIntegerField creates a new integer field with the given description.
func NewIntegerField(description string) SchemaField {
	return SchemaField{
		Type:        "integer",
		Description: description,
	}
}

// NewBooleanField creates a new boolean field with the given description.
func NewBooleanField(description string) SchemaField {
	return SchemaField{
		Type:        "boolean",
		Description: description,
	}
}

// WithEnum adds an enum constraint to the field.
func (f SchemaField) WithEnum(values ...string) SchemaField {
	f.Enum = values
	return f
}

// WithMin adds a minimum constraint to numeric fields.
func (f SchemaField) WithMin(min float64) SchemaField {
	f.Minimum = &min
	return f
}

// WithMax adds a maximum constraint to numeric fields.
func (f SchemaField) WithMax(max float64) SchemaField {
	f.Maximum = &max
	return f
}

// WithDefault sets the default value for the field.
func (f SchemaField) WithDefault(value any) SchemaField {
	f.Default = value
	return f
}
