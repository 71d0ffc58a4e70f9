package profiles

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed manifest.schema.json
var manifestSchemaSource string

// ErrManifestInvalid wraps every schema violation found in a manifest.
var ErrManifestInvalid = errors.New("profiles: manifest invalid")

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func manifestSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("manifest.schema.json", strings.NewReader(manifestSchemaSource)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("manifest.schema.json")
	})
	return compiledSchema, compileErr
}

// validateDocument checks the decoded manifest against the embedded schema.
// The YAML document is round-tripped through encoding/json first so the
// validator sees canonical JSON types.
func validateDocument(document any) error {
	schema, err := manifestSchema()
	if err != nil {
		return fmt.Errorf("profiles: compile manifest schema: %w", err)
	}

	encoded, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("profiles: encode manifest for validation: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(encoded, &normalized); err != nil {
		return fmt.Errorf("profiles: normalise manifest for validation: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrManifestInvalid, formatIssues(validationErr))
		}
		return fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	return nil
}

func formatIssues(err *jsonschema.ValidationError) string {
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			issues = append(issues, location+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(issues, "; ")
}
