// Package summary folds verdicts into per-language pass/fail statistics.
package summary

import (
	"fmt"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
)

// Mode selects which phases decide whether a test passed.
type Mode string

const (
	// ModeCompiler judges tests on compilation alone.
	ModeCompiler Mode = "compiler"
	// ModeFull judges tests that compiled on their runtime result.
	ModeFull Mode = "full"
)

// ParseMode converts a config or flag value to a Mode. It accepts exactly
// the values the config schema allows for "mode".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCompiler:
		return ModeCompiler, nil
	case ModeFull:
		return ModeFull, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be %q or %q", s, ModeCompiler, ModeFull)
	}
}

// Stats holds counts for one language. Total is always Pass + Fail.
type Stats struct {
	Language classify.Language `json:"language"`
	Total    int               `json:"total"`
	Pass     int               `json:"pass"`
	Fail     int               `json:"fail"`
}

// PassRate returns Pass/Total, or 0 when there are no tests.
func (s Stats) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Pass) / float64(s.Total)
}

// Failure is one failing test with the reason for its failure.
type Failure struct {
	Name     string            `json:"name"`
	Language classify.Language `json:"language"`
	Reason   string            `json:"reason"`
}

// Summary is the aggregate of a verdict list under one mode.
type Summary struct {
	Mode      Mode      `json:"mode"`
	Languages []Stats   `json:"languages"`
	Failures  []Failure `json:"failures"`
	// Excluded counts tests that are in no language bucket: unrecognized
	// extensions, and in full mode tests that did not compile or have no
	// runtime result.
	Excluded int `json:"excluded"`
}

// Language returns the stats for lang, and whether any test counted for it.
func (s Summary) Language(lang classify.Language) (Stats, bool) {
	for _, st := range s.Languages {
		if st.Language == lang {
			return st, true
		}
	}
	return Stats{Language: lang}, false
}

// Totals returns the stats summed over all languages.
func (s Summary) Totals() Stats {
	var total Stats
	for _, st := range s.Languages {
		total.Total += st.Total
		total.Pass += st.Pass
		total.Fail += st.Fail
	}
	return total
}

// outcome is how one verdict counts under a mode.
type outcome int

const (
	excluded outcome = iota
	passed
	failed
)

// Summarize aggregates verdicts under mode. Tests with unrecognized
// extensions are left out of every language bucket and of the failure list.
// Failures keep the order of verdicts.
func Summarize(verdicts []classify.Verdict, mode Mode) Summary {
	sum := Summary{Mode: mode, Failures: []Failure{}}
	counts := make(map[classify.Language]*Stats)

	for _, v := range verdicts {
		if !v.Language.Known() {
			sum.Excluded++
			continue
		}

		result, why := judge(v, mode)
		if result == excluded {
			sum.Excluded++
			continue
		}

		st := counts[v.Language]
		if st == nil {
			st = &Stats{Language: v.Language}
			counts[v.Language] = st
		}
		st.Total++
		if result == passed {
			st.Pass++
			continue
		}
		st.Fail++
		sum.Failures = append(sum.Failures, Failure{Name: v.Name, Language: v.Language, Reason: why})
	}

	sum.Languages = []Stats{}
	for _, lang := range classify.Languages() {
		if st, ok := counts[lang]; ok {
			sum.Languages = append(sum.Languages, *st)
		}
	}
	return sum
}

func judge(v classify.Verdict, mode Mode) (outcome, string) {
	if mode == ModeFull {
		if !v.Compiler.Result.IsPass() || v.Runtime.Result.IsSentinel() {
			return excluded, ""
		}
		if v.Runtime.Result.IsPass() {
			return passed, ""
		}
		return failed, v.Runtime.Reason
	}

	if v.Compiler.Result.IsPass() {
		return passed, ""
	}
	return failed, v.Compiler.Reason
}
