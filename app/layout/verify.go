package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var embeddedSchemaData []byte

// GenerateSchema generates JSON schema for the Config struct.
func GenerateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&Config{})
	schema.Title = "Shade Layout Configuration"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Verify validates layout data against the embedded JSON schema.
func Verify(data []byte) error {
	if len(embeddedSchemaData) == 0 {
		return errors.New("embedded layout schema is empty")
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// parse yaml into a generic map for schema validation
	var cfg any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse layout file: %w", err)
	}

	if err := schema.Validate(cfg); err != nil {
		return fmt.Errorf("layout validation failed: %w", err)
	}
	return nil
}
