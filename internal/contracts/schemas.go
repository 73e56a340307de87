package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var (
	propertyPayloadSchema    *jsonschema.Schema
	descriptionRequestSchema *jsonschema.Schema
)

func init() {
	propertyPayloadSchema = mustCompile("schemas/property_payload.json")
	descriptionRequestSchema = mustCompile("schemas/description_request.json")
}

func mustCompile(path string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	file, err := schemasFS.Open(path)
	if err != nil {
		log.Fatalf("failed to open embedded schema %s: %v", path, err)
	}
	defer file.Close()

	if err := compiler.AddResource(path, file); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", path, err)
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		log.Fatalf("failed to compile schema %s: %v", path, err)
	}
	return schema
}

func validate(schema *jsonschema.Schema, body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ValidatePropertyPayload checks a create/update request body against the
// listing payload schema.
func ValidatePropertyPayload(body []byte) error {
	return validate(propertyPayloadSchema, body)
}

// ValidateDescriptionRequest checks a description generation request body
// against its schema.
func ValidateDescriptionRequest(body []byte) error {
	return validate(descriptionRequestSchema, body)
}
