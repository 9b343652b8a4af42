// Package status resolves the result code and reason of one phase of a run
// record, across every field-naming scheme producers have used.
package status

import (
	"encoding/json"
	"strconv"
)

// Kind distinguishes the forms a result code can take.
type Kind int

const (
	// KindCode is an integer result code; 0 means pass.
	KindCode Kind = iota
	// KindLabel is a descriptive failure label such as "Runtime Failure".
	KindLabel
	// KindNone marks a phase with no recorded result.
	KindNone
)

// Code is a phase result: an integer, a label, or a "no result" sentinel.
type Code struct {
	Kind  Kind
	Value int
	Label string
}

// UnknownLabel is how the runtime "no result" sentinel is rendered.
const UnknownLabel = "Unknown"

// Int returns an integer result code.
func Int(v int) Code {
	return Code{Kind: KindCode, Value: v}
}

// Label returns a descriptive result label.
func Label(s string) Code {
	return Code{Kind: KindLabel, Label: s}
}

// NoCompilationResult is the compilation sentinel, rendered as -1.
func NoCompilationResult() Code {
	return Code{Kind: KindNone, Value: -1}
}

// NoExecutionResult is the runtime sentinel, rendered as "Unknown".
func NoExecutionResult() Code {
	return Code{Kind: KindNone, Label: UnknownLabel}
}

// IsPass reports whether the code is the pass code 0.
func (c Code) IsPass() bool {
	return c.Kind == KindCode && c.Value == 0
}

// IsSentinel reports whether no result was recorded.
func (c Code) IsSentinel() bool {
	return c.Kind == KindNone
}

// IsFailure reports whether the code is a recorded, non-passing result.
func (c Code) IsFailure() bool {
	return !c.IsPass() && !c.IsSentinel()
}

func (c Code) String() string {
	if c.Label != "" {
		return c.Label
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON writes integer codes and the compilation sentinel as numbers and
// everything else as strings.
func (c Code) MarshalJSON() ([]byte, error) {
	if c.Label == "" {
		return json.Marshal(c.Value)
	}
	return json.Marshal(c.Label)
}
