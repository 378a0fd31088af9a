package model

import "github.com/invopop/jsonschema"

// The ordered scale types marshal as JSON objects, so the reflected
// generation schema needs their shapes spelled out.

func scalarSchema() *jsonschema.Schema {
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "number"}}}
}

func (CSSValue) JSONSchema() *jsonschema.Schema {
	return scalarSchema()
}

func (Scale) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", AdditionalProperties: scalarSchema()}
}

func (SemanticSpacing) JSONSchema() *jsonschema.Schema {
	group := Scale{}.JSONSchema()
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Spacing grouped by component or section; scalar members are allowed",
		AdditionalProperties: &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "number"}, group}},
	}
}

func (Spacing) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Numeric spacing scale; the optional \"semantic\" key holds grouped spacing",
		AdditionalProperties: &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			{Type: "string"}, {Type: "number"}, SemanticSpacing{}.JSONSchema(),
		}},
	}
}
