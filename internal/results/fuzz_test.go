package results

import "testing"

// FuzzParse checks that arbitrary input never panics and that any accepted
// document has a non-nil run table.
// Run: go test -fuzz=FuzzParse -fuzztime=30s ./internal/results
func FuzzParse(f *testing.F) {
	seeds := []string{
		`{"runs": {"a.c": [{"compilation": {"result": 0}, "runtime": {"result": 0}}]}}`,
		`var jsonResults = {"runs": {"b.cpp": [{"compilation": {"result": 1, "stderr": "fatal error"}}]}};`,
		`{"runs": {"x.f90": [{"compile": {"success": true}}]}}`,
		`{"runs": {"y.c": [{"compilation": {"return_code": "2"}}]}}`,
		`{"runs": {}}`,
		`{"runs": null}`,
		`{}`,
		``,
		`var x = ;`,
		`{"runs": {"z.c": [null, 1, "s", {"runtime": []}]}}`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := Parse(data)
		if err != nil {
			return
		}
		if doc == nil || doc.Runs == nil {
			t.Fatal("accepted document has nil runs")
		}
	})
}
