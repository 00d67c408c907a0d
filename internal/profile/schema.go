package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema rejects malformed records before decoding so a corrupted
// store row cannot smuggle unexpected shapes into the session.
var profileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":                map[string]any{"type": "string"},
		"hasSpeechImpairment": map[string]any{"type": "boolean"},
		"hasVisualImpairment": map[string]any{"type": "boolean"},
		"inputMethod": map[string]any{
			"type": "string",
			"enum": []any{"text", "voice"},
		},
		"voiceOutput": map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://profile.json", profileSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://profile.json")
	})
	return compiledSchema, compileErr
}

func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile profile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("profile schema validation: %w", err)
	}
	return nil
}
