package openapi

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/root.json
var rootSchemaJSON []byte

const rootSchemaURL = "root.json"

var rootSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(rootSchemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)
	if err := compiler.AddResource(rootSchemaURL, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(rootSchemaURL)
})

// ValidateJSON checks that data is a serialized root document of the shape
// this package produces. It does not validate against the full OpenAPI
// schema.
func ValidateJSON(data []byte) error {
	schema, err := rootSchema()
	if err != nil {
		return fmt.Errorf("openapi: compile root schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("openapi: parse document: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("openapi: document does not match root schema: %w", err)
	}
	return nil
}

// Validate serializes the document and checks it with ValidateJSON.
func (d *Document) Validate() error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("openapi: serialize document: %w", err)
	}
	return ValidateJSON(data)
}
