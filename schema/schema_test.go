package schema

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

// TestEmbeddedSchemasAreValidJSON verifies that all embedded schema files are valid JSON objects.
func TestEmbeddedSchemasAreValidJSON(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("failed to read embedded FS: %v", err)
	}

	schemaCount := 0
	for _, entry := range entries {
		entry := entry
		if !strings.HasSuffix(entry.Name(), ".schema.json") {
			continue
		}
		schemaCount++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			data, err := FS.ReadFile(entry.Name())
			if err != nil {
				t.Fatalf("failed to read %s: %v", entry.Name(), err)
			}

			var v map[string]interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				t.Fatalf("%s is not a JSON object: %v", entry.Name(), err)
			}
			if _, ok := v["$schema"]; !ok {
				t.Errorf("%s missing $schema field", entry.Name())
			}
			if v["type"] != "object" {
				t.Errorf("%s root type = %v, want object", entry.Name(), v["type"])
			}
		})
	}

	if schemaCount == 0 {
		t.Error("no schema files found in embedded FS")
	}
}

// TestConfigSchemaProperties keeps the schema in step with the config file fields.
func TestConfigSchemaProperties(t *testing.T) {
	t.Parallel()

	data, err := FS.ReadFile("config.schema.json")
	if err != nil {
		t.Fatalf("config schema not embedded: %v", err)
	}

	var schema struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("failed to parse config schema: %v", err)
	}

	for _, field := range []string{"mode", "stderr_policy", "representative", "languages", "include", "exclude", "format", "color", "export"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("config schema missing property %q", field)
		}
	}
}
