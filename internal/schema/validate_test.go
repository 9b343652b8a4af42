package schema

import (
	"testing"
)

func TestSchemaValidConfig(t *testing.T) {
	valid := map[string]string{
		"empty":   `{}`,
		"minimal": `{"mode": "full"}`,
		"complete": `{
			"mode": "compiler",
			"stderr_policy": "strict",
			"representative": true,
			"languages": ["c", "Fortran"],
			"include": ["/^atomic/"],
			"exclude": ["legacy"],
			"format": "json",
			"color": "never",
			"export": {"format": "xlsx", "output": "results.xlsx"}
		}`,
		"unknown field": `{"mode": "full", "theme": "dark"}`,
	}

	for name, doc := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateConfig([]byte(doc)); err != nil {
				t.Errorf("expected valid config, got error: %v", err)
			}
		})
	}
}

func TestSchemaInvalidConfig(t *testing.T) {
	invalid := map[string]string{
		"bad mode":           `{"mode": "partial"}`,
		"bad stderr policy":  `{"stderr_policy": "loud"}`,
		"representative str": `{"representative": "yes"}`,
		"unknown language":   `{"languages": ["rust"]}`,
		"empty pattern":      `{"include": [""]}`,
		"include not array":  `{"include": "atomic"}`,
		"bad format":         `{"format": "html"}`,
		"bad color":          `{"color": "rainbow"}`,
		"bad export format":  `{"export": {"format": "pdf"}}`,
		"not object":         `"string"`,
	}

	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateConfig([]byte(doc)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSchemaInvalidConfigMalformedJSON(t *testing.T) {
	if err := ValidateConfig([]byte(`{"mode": `)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidateConfigValue(t *testing.T) {
	doc := map[string]interface{}{
		"mode":      "full",
		"languages": []interface{}{"c++"},
	}
	if err := ValidateConfigValue(doc); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}

	doc["mode"] = 3
	if err := ValidateConfigValue(doc); err == nil {
		t.Error("expected error for numeric mode")
	}

	unrepresentable := map[string]interface{}{"mode": make(chan int)}
	if err := ValidateConfigValue(unrepresentable); err == nil {
		t.Error("expected error for value that cannot be encoded as JSON")
	}
}
