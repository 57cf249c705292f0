package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchema []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.schema.json", bytes.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("failed to load document schema: %w", err)
	}
	schema, err := compiler.Compile("document.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile document schema: %w", err)
	}
	return schema, nil
})

// Schema returns the JSON Schema every Document satisfies.
func Schema() []byte {
	return documentSchema
}

// Validate checks d against the document schema.
func (d *Document) Validate() error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode document for validation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
