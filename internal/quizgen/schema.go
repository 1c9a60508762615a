package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// itemSchemaDefinition is the JSON Schema for one quiz item on the wire.
// It is appended to the prompt as format instructions and enforced per
// item during extraction.
var itemSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question text, answerable from the article alone",
		},
		"options": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"A": map[string]any{"type": "string"},
				"B": map[string]any{"type": "string"},
				"C": map[string]any{"type": "string"},
				"D": map[string]any{"type": "string"},
			},
			"required":             []any{"A", "B", "C", "D"},
			"additionalProperties": false,
			"description":          "Exactly four answer options keyed A through D",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"enum":        []any{"A", "B", "C", "D"},
			"description": "The key of the correct option",
		},
	},
	"required":             []any{"question", "options", "correct_answer"},
	"additionalProperties": false,
}

var (
	itemSchemaOnce     sync.Once
	itemSchemaCompiled *jsonschema.Schema
	itemSchemaErr      error
)

// validateItemSchema checks one raw array element against the item schema.
func validateItemSchema(el json.RawMessage) error {
	itemSchemaOnce.Do(compileItemSchema)
	if itemSchemaErr != nil {
		return fmt.Errorf("compile item schema: %w", itemSchemaErr)
	}

	var parsed any
	if err := json.Unmarshal(el, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := itemSchemaCompiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compileItemSchema compiles the definition once. The jsonschema library
// wants a parsed JSON value, so the map goes through a marshal round trip.
func compileItemSchema() {
	defBytes, err := json.Marshal(itemSchemaDefinition)
	if err != nil {
		itemSchemaErr = err
		return
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		itemSchemaErr = err
		return
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://quiz-item.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		itemSchemaErr = err
		return
	}
	itemSchemaCompiled, itemSchemaErr = c.Compile(schemaURL)
}

// SchemaJSON renders the item schema definition as indented JSON for
// embedding in the prompt.
func SchemaJSON() string {
	b, err := json.MarshalIndent(itemSchemaDefinition, "", "  ")
	if err != nil {
		// The definition is a static literal; this cannot fail at runtime.
		panic(err)
	}
	return string(b)
}
