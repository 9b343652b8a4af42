// Package classify turns a results document into one verdict per test.
package classify

import (
	"sort"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/results"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/status"
)

// Verdict is the normalized outcome of one test.
type Verdict struct {
	Name     string        `json:"name"`
	Base     string        `json:"base"`
	Language Language      `json:"language"`
	Compiler status.Status `json:"compiler"`
	Runtime  status.Status `json:"runtime"`
	Runs     int           `json:"runs"`
}

// Options tune classification.
type Options struct {
	Status status.Options
	// Representative keeps one verdict per base name, preferring Fortran,
	// then C++, then C.
	Representative bool
}

// Classify produces one verdict per test in doc, ordered by base name and
// then language (C, C++, Fortran, unknown).
//
// Runs are folded: a phase fails if any run failed it, and the first failure
// keeps its reason and output. Runtime is only folded over runs that compiled,
// and is reported as not evaluated when the folded compilation did not pass.
func Classify(doc *results.Document, opts Options) []Verdict {
	verdicts := make([]Verdict, 0, doc.Len())
	for _, name := range doc.Names() {
		verdicts = append(verdicts, classifyTest(name, doc.Runs[name], opts.Status))
	}

	Sort(verdicts)

	if opts.Representative {
		return Representatives(verdicts)
	}
	return verdicts
}

// Sort orders verdicts by base name, language priority, then full name.
func Sort(verdicts []Verdict) {
	sort.SliceStable(verdicts, func(i, j int) bool {
		a, b := verdicts[i], verdicts[j]
		if a.Base != b.Base {
			return a.Base < b.Base
		}
		if pa, pb := a.Language.Priority(), b.Language.Priority(); pa != pb {
			return pa < pb
		}
		return a.Name < b.Name
	})
}

func classifyTest(name string, runs []results.RunRecord, opts status.Options) Verdict {
	base, _ := SplitName(name)
	v := Verdict{
		Name:     name,
		Base:     base,
		Language: LanguageOf(name),
		Runs:     len(runs),
	}

	v.Compiler = foldPhase(runs, results.Compilation, opts, nil)
	if !v.Compiler.Result.IsPass() {
		v.Runtime = status.Missing(results.Runtime)
		return v
	}

	compiled := func(run results.RunRecord) bool {
		return status.Extract(run, results.Compilation, opts).Result.IsPass()
	}
	v.Runtime = foldPhase(runs, results.Runtime, opts, compiled)
	return v
}

// foldPhase picks the first status with the highest rank among the runs
// accepted by include (all runs when include is nil).
func foldPhase(runs []results.RunRecord, phase results.Phase, opts status.Options, include func(results.RunRecord) bool) status.Status {
	best := status.Missing(phase)
	bestRank := -1
	for _, run := range runs {
		if include != nil && !include(run) {
			continue
		}
		st := status.Extract(run, phase, opts)
		if r := rank(st.Result); r > bestRank {
			best, bestRank = st, r
		}
	}
	return best
}

// rank orders outcomes: a recorded failure outranks a pass, which outranks
// a missing result.
func rank(c status.Code) int {
	switch {
	case c.IsFailure():
		return 2
	case c.IsPass():
		return 1
	default:
		return 0
	}
}

// Representatives keeps one verdict per base name from sorted verdicts:
// Fortran over C++ over C. Tests with unrecognized extensions are only kept
// when no recognized variant exists.
func Representatives(sorted []Verdict) []Verdict {
	var out []Verdict
	for i := 0; i < len(sorted); {
		j := i
		pick := i
		for j < len(sorted) && sorted[j].Base == sorted[i].Base {
			if better(sorted[j], sorted[pick]) {
				pick = j
			}
			j++
		}
		out = append(out, sorted[pick])
		i = j
	}
	return out
}

func better(candidate, current Verdict) bool {
	if !candidate.Language.Known() {
		return false
	}
	if !current.Language.Known() {
		return true
	}
	return candidate.Language.Priority() > current.Language.Priority()
}
