package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// detectUnknownFields compares a decoded YAML tree with the known struct fields.
func detectUnknownFields(tree any) []string {
	root, ok := tree.(map[string]interface{})
	if !ok {
		return nil
	}

	var warnings []string
	knownTopLevel := getYAMLFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(root) {
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if export, ok := root["export"].(map[string]interface{}); ok {
		knownExport := getYAMLFields(reflect.TypeOf(ExportConfig{}))
		for _, key := range sortedKeys(export) {
			if !knownExport[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in export (ignored)", key))
			}
		}
	}

	return warnings
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = true
		}
	}
	return fields
}
