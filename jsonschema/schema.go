package jsonschema

// Draft202012 is the meta-schema URI emitted in $schema.
const Draft202012 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export and
// validation. Only the keywords the Request document needs are modeled.
type Schema struct {
	// Core
	SchemaURI   string `json:"$schema,omitempty"`
	ID          string `json:"$id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`

	// Number
	Minimum *uint64 `json:"minimum,omitempty"`
	Maximum *uint64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`
}

// Object builds an object schema whose properties are all required, in the
// given order.
func Object(props ...Property) *Schema {
	s := &Schema{Type: "object", Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Required = append(s.Required, p.Name)
	}
	return s
}

// Property is a named object member used with Object.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop is shorthand for Property{name, s}.
func Prop(name string, s *Schema) Property { return Property{Name: name, Schema: s} }

// String returns a string schema with an optional format.
func String(format string) *Schema { return &Schema{Type: "string", Format: format} }

// Bool returns a boolean schema.
func Bool() *Schema { return &Schema{Type: "boolean"} }

// Uint32 returns an integer schema bounded to the unsigned 32-bit range.
func Uint32() *Schema {
	lo, hi := uint64(0), uint64(1<<32-1)
	return &Schema{Type: "integer", Minimum: &lo, Maximum: &hi}
}

// ArrayOf returns an array schema of items.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Strict sets additionalProperties=false on s and every nested object.
func (s *Schema) Strict() *Schema {
	if s == nil {
		return s
	}
	if s.Type == "object" {
		f := false
		s.AdditionalProperties = &f
	}
	for _, p := range s.Properties {
		p.Strict()
	}
	s.Items.Strict()
	return s
}
