package catalog

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "catalog.schema.json"

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["entities"],
  "additionalProperties": false,
  "properties": {
    "entities": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "category", "color"],
        "additionalProperties": false,
        "properties": {
          "id":          {"type": "string", "pattern": "^[a-z0-9][a-z0-9_-]*$"},
          "name":        {"type": "string", "minLength": 1},
          "category":    {"type": "string"},
          "tagline":     {"type": "string"},
          "description": {"type": "string"},
          "slot":        {"type": "integer", "minimum": 0},
          "radius":      {"type": "number", "exclusiveMinimum": 0},
          "color":       {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaJSON)
	})
	return schema, schemaErr
}
