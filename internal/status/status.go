package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/reason"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/results"
)

// Fixed reasons.
const (
	PassReason          = "Pass"
	NoCompilationReason = "No compilation result"
	NoExecutionReason   = "No execution result"
)

// StderrOutputLabel is the failing label assigned by StderrStrict.
const StderrOutputLabel = "Stderr Output"

// StderrPolicy decides whether stderr text can fail a phase whose code is 0.
type StderrPolicy string

const (
	// StderrIgnore keeps a 0 code passing whatever stderr contains.
	StderrIgnore StderrPolicy = "ignore"
	// StderrStrict fails a 0 code when stderr is not blank.
	StderrStrict StderrPolicy = "strict"
)

// ParseStderrPolicy converts a config or flag value to a StderrPolicy.
// The empty string selects StderrIgnore.
func ParseStderrPolicy(s string) (StderrPolicy, error) {
	switch StderrPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StderrIgnore:
		return StderrIgnore, nil
	case StderrStrict:
		return StderrStrict, nil
	default:
		return "", fmt.Errorf("invalid stderr policy %q: must be %q or %q", s, StderrIgnore, StderrStrict)
	}
}

// Options tune status extraction.
type Options struct {
	StderrPolicy StderrPolicy
}

// Status is the resolved outcome of one phase of one run record.
type Status struct {
	Result Code   `json:"result"`
	Reason string `json:"reason"`
	Stdout string `json:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty"`
	Output string `json:"output,omitempty"`
}

// Extract resolves the result and reason of phase in run.
func Extract(run results.RunRecord, phase results.Phase, opts Options) Status {
	sec := run.Section(phase)
	if sec == nil {
		return Missing(phase)
	}

	st := Status{
		Result: Resolve(sec, phase),
		Stdout: sec.Stdout,
		Stderr: sec.Stderr,
		Output: sec.Output,
	}

	if st.Result.IsPass() && opts.StderrPolicy == StderrStrict && strings.TrimSpace(sec.Stderr) != "" {
		st.Result = Label(StderrOutputLabel)
	}

	switch {
	case st.Result.IsPass():
		st.Reason = PassReason
	case st.Result.IsSentinel():
		st.Reason = sentinelReason(phase)
	default:
		st.Reason = reason.Extract(sec.Stdout, sec.Stderr, sec.Output)
	}
	return st
}

// Missing is the status of a phase that was not recorded at all. It is also
// used for a runtime phase that was never evaluated because the build failed.
func Missing(phase results.Phase) Status {
	return Status{Result: sentinel(phase), Reason: sentinelReason(phase)}
}

// resolver tries to derive a code from one field of a section.
type resolver func(sec *results.Section) (Code, bool)

// chain lists the resolvers in priority order: result, return_code, success.
var chain = []resolver{
	fromResult,
	fromReturnCode,
	fromSuccess,
}

// chainStart is where resolution begins for each tagged shape. Every field
// ahead of that position is absent in a section of that shape.
var chainStart = map[results.Shape]int{
	results.ShapeModern:        0,
	results.ShapeLegacyNumeric: 1,
	results.ShapeLegacyBoolean: 2,
}

// Resolve runs the resolution chain over sec, starting at the resolver for
// its Shape, and falls back to the sentinel for phase when no field yields a
// code. Explicit "no result" values (-1 for compilation, "Unknown" for
// runtime) resolve to the sentinel too.
func Resolve(sec *results.Section, phase results.Phase) Code {
	if sec == nil {
		return sentinel(phase)
	}
	start, ok := chainStart[sec.Shape]
	if !ok {
		return sentinel(phase)
	}
	for _, resolve := range chain[start:] {
		if code, ok := resolve(sec); ok {
			return explicitSentinel(code, phase)
		}
	}
	return sentinel(phase)
}

// explicitSentinel maps a recorded "no result" value to the sentinel of phase.
func explicitSentinel(c Code, phase results.Phase) Code {
	switch {
	case phase == results.Compilation && c.Kind == KindCode && c.Value == -1:
		return NoCompilationResult()
	case phase == results.Runtime && c.Kind == KindLabel && strings.EqualFold(c.Label, UnknownLabel):
		return NoExecutionResult()
	}
	return c
}

func fromResult(sec *results.Section) (Code, bool) {
	if code, ok := numeric(sec.Result); ok {
		return code, true
	}
	if sec.Result.Kind == results.FieldString {
		if label := strings.TrimSpace(sec.Result.Text); label != "" {
			return Label(label), true
		}
	}
	return Code{}, false
}

func fromReturnCode(sec *results.Section) (Code, bool) {
	return numeric(sec.ReturnCode)
}

func fromSuccess(sec *results.Section) (Code, bool) {
	if sec.Success == nil {
		return Code{}, false
	}
	if *sec.Success {
		return Int(0), true
	}
	return Int(1), true
}

// numeric accepts a JSON number or a string holding an integer.
func numeric(f results.Field) (Code, bool) {
	switch f.Kind {
	case results.FieldNumber:
		return Int(f.Number), true
	case results.FieldString:
		if n, err := strconv.Atoi(strings.TrimSpace(f.Text)); err == nil {
			return Int(n), true
		}
	}
	return Code{}, false
}

func sentinel(phase results.Phase) Code {
	if phase == results.Compilation {
		return NoCompilationResult()
	}
	return NoExecutionResult()
}

func sentinelReason(phase results.Phase) string {
	if phase == results.Compilation {
		return NoCompilationReason
	}
	return NoExecutionReason
}
