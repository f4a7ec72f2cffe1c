package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildSaveSchema returns the JSON-Schema (draft 2020-12 subset) for the
// save-invoices payload: a non-empty array of invoice objects. The store
// trusts validated payloads, so shape errors are rejected at the edge.
func buildSaveSchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"empresa":           map[string]any{"type": "string"},
				"data":              map[string]any{"type": "string"},
				"valor":             map[string]any{"type": "string"},
				"status":            map[string]any{"type": "string"},
				"isCadastrado":      map[string]any{"type": "boolean"},
				"arquivoBase64":     map[string]any{"type": "string"},
				"detalhesCompletos": map[string]any{"type": "object"},
			},
			"required": []string{"empresa", "data", "valor", "status"},
		},
	}
}

// compileSaveSchema compiles the payload schema once at server startup.
func compileSaveSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(buildSaveSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("save.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("save.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateSavePayload validates raw JSON against the save schema.
func validateSavePayload(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
