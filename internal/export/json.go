package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// WriteJSON writes value as indented JSON. When query is not empty it is
// evaluated as a jq expression against value and each result is written on
// its own.
func WriteJSON(w io.Writer, value any, query string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if query == "" {
		return enc.Encode(value)
	}

	results, err := Query(value, query)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// Query evaluates a jq expression against the JSON form of value.
func Query(value any, expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
	}

	input, err := toGeneric(value)
	if err != nil {
		return nil, err
	}

	var out []any
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("error evaluating jq expression %q: %w", expr, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// toGeneric round-trips value through encoding/json so gojq sees only maps,
// slices, and scalars.
func toGeneric(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}
