package store

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema describes the persisted document shape. A stored blob that
// parses as JSON but does not conform is treated the same as a parse
// failure: the loader falls back to a fresh document. The version field is
// optional because version-0 documents predate it.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["subjects", "progress"],
	"properties": {
		"version": { "type": "integer", "minimum": 0 },
		"subjects": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["notes", "quizzes", "decks", "pastpapers"],
				"properties": {
					"notes":      { "type": "array" },
					"quizzes":    { "type": "array" },
					"decks":      { "type": "array" },
					"pastpapers": { "type": "array" }
				}
			}
		},
		"progress": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["attempts", "correct", "mastery"],
				"properties": {
					"attempts": { "type": "integer", "minimum": 0 },
					"correct":  { "type": "integer", "minimum": 0 },
					"mastery":  { "type": "integer", "minimum": 0, "maximum": 100 }
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateDocument checks a raw stored blob against the document schema.
func validateDocument(raw []byte) error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse document schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("document.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("document.json")
	})
	if schemaErr != nil {
		return schemaErr
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := compiledSchema.Validate(inst); err != nil {
		return fmt.Errorf("document schema validation failed: %w", err)
	}
	return nil
}
