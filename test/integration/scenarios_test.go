// Package integration contains end-to-end tests for vvresults over results fixtures.
package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/results"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/status"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func resultsPath(name string) string {
	return filepath.Join(fixturesDir(), "results", name)
}

func loadVerdicts(t *testing.T, name string, opts classify.Options) []classify.Verdict {
	t.Helper()
	doc, err := results.ReadFile(resultsPath(name))
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	return classify.Classify(doc, opts)
}

func find(t *testing.T, verdicts []classify.Verdict, name string) classify.Verdict {
	t.Helper()
	for _, v := range verdicts {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("no verdict for %s", name)
	return classify.Verdict{}
}

func TestScenarioA_CleanPass(t *testing.T) {
	t.Parallel()
	verdicts := loadVerdicts(t, "scenario-a.json", classify.Options{})

	v := find(t, verdicts, "a.c")
	if v.Language != classify.LanguageC {
		t.Errorf("language = %q, want C", v.Language)
	}
	if v.Compiler.Result != status.Int(0) || v.Compiler.Reason != status.PassReason {
		t.Errorf("compiler = (%v, %q), want (0, Pass)", v.Compiler.Result, v.Compiler.Reason)
	}
	if v.Runtime.Result != status.Int(0) || v.Runtime.Reason != status.PassReason {
		t.Errorf("runtime = (%v, %q), want (0, Pass)", v.Runtime.Result, v.Runtime.Reason)
	}

	for _, mode := range []summary.Mode{summary.ModeCompiler, summary.ModeFull} {
		st, _ := summary.Summarize(verdicts, mode).Language(classify.LanguageC)
		if st.Total != 1 || st.Pass != 1 || st.Fail != 0 {
			t.Errorf("%s: C = %+v, want 1/1/0", mode, st)
		}
	}
}

func TestScenarioB_CompileFailure(t *testing.T) {
	t.Parallel()
	verdicts := loadVerdicts(t, "scenario-b.json", classify.Options{})

	v := find(t, verdicts, "b.cpp")
	if v.Compiler.Result != status.Int(1) {
		t.Errorf("compiler result = %v, want 1", v.Compiler.Result)
	}
	if v.Compiler.Reason != "fatal error: foo.h not found" {
		t.Errorf("compiler reason = %q", v.Compiler.Reason)
	}
	if v.Runtime.Result.String() != "Unknown" || v.Runtime.Reason != status.NoExecutionReason {
		t.Errorf("runtime = (%v, %q), want not evaluated", v.Runtime.Result, v.Runtime.Reason)
	}

	compiler := summary.Summarize(verdicts, summary.ModeCompiler)
	if len(compiler.Failures) != 1 || compiler.Failures[0].Reason != "fatal error: foo.h not found" {
		t.Errorf("compiler failures = %+v", compiler.Failures)
	}

	full := summary.Summarize(verdicts, summary.ModeFull)
	if full.Totals().Total != 0 {
		t.Errorf("full mode counted a test that never compiled: %+v", full)
	}
}

func TestScenarioC_Comparison(t *testing.T) {
	t.Parallel()
	before, err := results.ReadFile(resultsPath("scenario-c-before.json"))
	if err != nil {
		t.Fatal(err)
	}
	after, err := results.ReadFile(resultsPath("scenario-c-after.json"))
	if err != nil {
		t.Fatal(err)
	}

	classifyAll := func(doc *results.Document) []classify.Verdict {
		return classify.Classify(doc, classify.Options{})
	}
	cmp, _, err := summary.CompareDocuments(context.Background(), before, after, classifyAll, summary.ModeCompiler)
	if err != nil {
		t.Fatalf("CompareDocuments() error = %v", err)
	}

	if len(cmp.Rows) != 1 {
		t.Fatalf("rows = %+v, want only C", cmp.Rows)
	}
	row := cmp.Rows[0]
	if row.Language != classify.LanguageC || row.PassA != 10 || row.PassB != 11 {
		t.Errorf("row = %+v, want C (10, 11)", row)
	}
}

func TestScenarioD_NoRuntimeSection(t *testing.T) {
	t.Parallel()
	verdicts := loadVerdicts(t, "scenario-d.json", classify.Options{})

	v := find(t, verdicts, "x.f90")
	if !v.Compiler.Result.IsPass() {
		t.Errorf("compiler = %+v, want pass", v.Compiler)
	}
	if v.Runtime.Result.String() != "Unknown" || v.Runtime.Reason != status.NoExecutionReason {
		t.Errorf("runtime = (%v, %q), want (Unknown, %q)", v.Runtime.Result, v.Runtime.Reason, status.NoExecutionReason)
	}

	st, _ := summary.Summarize(verdicts, summary.ModeCompiler).Language(classify.LanguageFortran)
	if st.Pass != 1 {
		t.Errorf("compiler mode Fortran = %+v, want one pass", st)
	}
	full := summary.Summarize(verdicts, summary.ModeFull)
	if full.Totals().Total != 0 || full.Excluded != 1 {
		t.Errorf("full mode = %+v, want x.f90 excluded", full)
	}
}

func TestLegacyDocument(t *testing.T) {
	t.Parallel()
	verdicts := loadVerdicts(t, "legacy.js", classify.Options{})

	if len(verdicts) != 3 {
		t.Fatalf("got %d verdicts, want 3", len(verdicts))
	}

	c := find(t, verdicts, "atomic_capture.c")
	if !c.Compiler.Result.IsPass() || !c.Runtime.Result.IsPass() {
		t.Errorf("atomic_capture.c = %+v, want pass/pass", c)
	}

	cpp := find(t, verdicts, "atomic_capture.cpp")
	if cpp.Runtime.Result != status.Int(1) {
		t.Errorf("atomic_capture.cpp runtime = %v, want 1", cpp.Runtime.Result)
	}
	if want := "Test failed | value mismatch at index 3"; cpp.Runtime.Reason != want {
		t.Errorf("atomic_capture.cpp runtime reason = %q, want %q", cpp.Runtime.Reason, want)
	}

	f := find(t, verdicts, "atomic_capture.f90")
	if f.Compiler.Result != status.Int(1) {
		t.Errorf("atomic_capture.f90 compiler = %v, want 1", f.Compiler.Result)
	}
	if !f.Runtime.Result.IsSentinel() {
		t.Errorf("atomic_capture.f90 runtime = %v, want not evaluated", f.Runtime.Result)
	}

	reps := loadVerdicts(t, "legacy.js", classify.Options{Representative: true})
	if len(reps) != 1 || reps[0].Name != "atomic_capture.f90" {
		t.Errorf("representatives = %v, want only the Fortran variant", reps)
	}
}

func TestMixedDocument(t *testing.T) {
	t.Parallel()
	verdicts := loadVerdicts(t, "mixed.json", classify.Options{})

	var names []string
	for _, v := range verdicts {
		names = append(names, v.Name)
	}
	want := []string{"data_copy.c", "kernels_async.F90", "parallel_loop.c", "parallel_loop.cpp", "parallel_loop.f90", "readme.txt"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}

	if v := find(t, verdicts, "kernels_async.F90"); v.Language != classify.LanguageFortran || !v.Runtime.Result.IsPass() {
		t.Errorf("kernels_async.F90 = %+v, want Fortran pass", v)
	}
	if v := find(t, verdicts, "parallel_loop.c"); v.Runtime.Result != status.Label("Runtime Failure") || v.Runtime.Reason != "Segmentation fault (core dumped)" {
		t.Errorf("parallel_loop.c runtime = (%v, %q)", v.Runtime.Result, v.Runtime.Reason)
	}
	if v := find(t, verdicts, "data_copy.c"); v.Runtime.Reason != "line one | line two | line three" {
		t.Errorf("data_copy.c runtime reason = %q", v.Runtime.Reason)
	}

	full := summary.Summarize(verdicts, summary.ModeFull)
	c, _ := full.Language(classify.LanguageC)
	if c.Total != 2 || c.Fail != 2 {
		t.Errorf("full mode C = %+v, want 2 failures", c)
	}
	f, _ := full.Language(classify.LanguageFortran)
	if f.Total != 2 || f.Pass != 2 {
		t.Errorf("full mode Fortran = %+v, want 2 passes", f)
	}
	if full.Excluded != 1 {
		t.Errorf("full mode excluded = %d, want 1 (readme.txt)", full.Excluded)
	}
}

func TestMixedDocument_StrictStderr(t *testing.T) {
	t.Parallel()
	strict := classify.Options{Status: status.Options{StderrPolicy: status.StderrStrict}}
	verdicts := loadVerdicts(t, "mixed.json", strict)

	v := find(t, verdicts, "parallel_loop.f90")
	if v.Compiler.Result != status.Label(status.StderrOutputLabel) {
		t.Errorf("compiler = %v, want %q", v.Compiler.Result, status.StderrOutputLabel)
	}
	if v.Compiler.Reason != "warning: unused variable 'j'" {
		t.Errorf("compiler reason = %q", v.Compiler.Reason)
	}
}

func TestMalformedDocument(t *testing.T) {
	t.Parallel()
	_, err := results.ReadFile(resultsPath("malformed.json"))
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
}
