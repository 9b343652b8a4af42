package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
)

// ParseErrorMessage is the user-facing message for any structural problem.
const ParseErrorMessage = "could not parse results file"

// Older producers wrote the results as a script: var jsonResults = {...};
var assignmentPrefix = regexp.MustCompile(`^\s*(?:var|let|const)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*`)

// Section keys in lookup order.
var (
	compilationKeys = []string{"compilation", "compile"}
	runtimeKeys     = []string{"runtime", "execution"}
)

// ReadFile loads and parses the results document at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFound("results file", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read results file %s", path))
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.WithPath(err, path)
	}
	return doc, nil
}

// Parse parses raw document text. Only document-level problems are reported:
// invalid JSON, a missing "runs" key, or "runs" that is not an object.
// Malformed individual entries degrade to empty records instead.
func Parse(data []byte) (*Document, error) {
	body := StripAssignment(data)
	if len(body) == 0 {
		return nil, errors.Document(ParseErrorMessage, fmt.Errorf("empty document"))
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, errors.Document(ParseErrorMessage, fmt.Errorf("invalid JSON: %w", err))
	}

	runsRaw, ok := top["runs"]
	if !ok || isNull(runsRaw) {
		return nil, errors.Document(ParseErrorMessage, fmt.Errorf("missing required field \"runs\""))
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(runsRaw, &entries); err != nil {
		return nil, errors.Document(ParseErrorMessage, fmt.Errorf("\"runs\" must be an object"))
	}

	doc := &Document{Runs: make(map[string][]RunRecord, len(entries))}
	for name, raw := range entries {
		doc.Runs[name] = decodeRuns(raw)
	}
	return doc, nil
}

// StripAssignment removes a UTF-8 BOM, a leading "var x = " assignment and a
// trailing semicolon, returning the JSON body.
func StripAssignment(data []byte) []byte {
	body := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if loc := assignmentPrefix.FindIndex(body); loc != nil {
		body = body[loc[1]:]
		body = bytes.TrimSpace(body)
		body = bytes.TrimSuffix(body, []byte(";"))
	}
	return bytes.TrimSpace(body)
}

// decodeRuns accepts an array of run objects. A bare object is treated as a
// single run; anything else yields no runs.
func decodeRuns(raw json.RawMessage) []RunRecord {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		var single map[string]json.RawMessage
		if err := json.Unmarshal(raw, &single); err != nil || single == nil {
			return nil
		}
		return []RunRecord{decodeRun(single)}
	}

	runs := make([]RunRecord, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			fields = nil
		}
		runs = append(runs, decodeRun(fields))
	}
	return runs
}

func decodeRun(fields map[string]json.RawMessage) RunRecord {
	return RunRecord{
		Compilation: decodeSection(lookup(fields, compilationKeys)),
		Runtime:     decodeSection(lookup(fields, runtimeKeys)),
	}
}

func lookup(fields map[string]json.RawMessage, keys []string) json.RawMessage {
	for _, key := range keys {
		if raw, ok := fields[key]; ok && !isNull(raw) {
			return raw
		}
	}
	return nil
}

func decodeSection(raw json.RawMessage) *Section {
	if raw == nil {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}

	sec := &Section{
		Result:     decodeField(fields["result"]),
		ReturnCode: decodeField(fields["return_code"]),
		Success:    decodeBool(fields["success"]),
		Stdout:     decodeText(fields["stdout"]),
		Stderr:     decodeText(fields["stderr"]),
		Output:     decodeText(fields["output"]),
	}

	sec.Shape = sec.DetectShape()
	return sec
}

func decodeField(raw json.RawMessage) Field {
	if raw == nil || isNull(raw) {
		return Field{}
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		if num != math.Trunc(num) || math.Abs(num) > math.MaxInt32 {
			return Field{Kind: FieldString, Text: string(raw)}
		}
		return Field{Kind: FieldNumber, Number: int(num)}
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return Field{Kind: FieldString, Text: text}
	}
	return Field{}
}

func decodeBool(raw json.RawMessage) *bool {
	if raw == nil || isNull(raw) {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return &b
}

// decodeText accepts a string or an array of lines.
func decodeText(raw json.RawMessage) string {
	if raw == nil || isNull(raw) {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil {
		return strings.Join(lines, "\n")
	}
	return ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
