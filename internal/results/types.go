// Package results loads raw test-suite result documents into typed run records.
//
// Producers of these documents changed their field names several times. Each
// phase section is tagged with the Shape it was recorded in when the document
// is parsed, so later stages never have to inspect raw JSON again.
package results

import "sort"

// Phase identifies one stage of a test run.
type Phase int

const (
	Compilation Phase = iota
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Compilation:
		return "compilation"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Shape tags the field-naming scheme a section was recorded with.
type Shape int

const (
	// ShapeEmpty is a missing section, or one without any result field.
	ShapeEmpty Shape = iota
	// ShapeModern carries a "result" field.
	ShapeModern
	// ShapeLegacyNumeric carries a "return_code" field.
	ShapeLegacyNumeric
	// ShapeLegacyBoolean carries only a "success" flag.
	ShapeLegacyBoolean
)

func (s Shape) String() string {
	switch s {
	case ShapeModern:
		return "modern"
	case ShapeLegacyNumeric:
		return "legacy-numeric"
	case ShapeLegacyBoolean:
		return "legacy-boolean"
	default:
		return "empty"
	}
}

// FieldKind is the JSON type a result-code field was written as.
type FieldKind int

const (
	FieldAbsent FieldKind = iota
	FieldNumber
	FieldString
)

// Field is a result-code field exactly as the producer wrote it.
type Field struct {
	Kind   FieldKind
	Number int    // valid when Kind == FieldNumber
	Text   string // valid when Kind == FieldString
}

// Present reports whether the field was set to a number or a string.
func (f Field) Present() bool {
	return f.Kind != FieldAbsent
}

// Section is one phase (compilation or runtime) of a run record.
type Section struct {
	Shape      Shape
	Result     Field
	ReturnCode Field
	Success    *bool
	Stdout     string
	Stderr     string
	Output     string
}

// DetectShape reports the shape of s from the result fields it carries. The
// highest-priority field present decides.
func (s *Section) DetectShape() Shape {
	switch {
	case s.Result.Present():
		return ShapeModern
	case s.ReturnCode.Present():
		return ShapeLegacyNumeric
	case s.Success != nil:
		return ShapeLegacyBoolean
	default:
		return ShapeEmpty
	}
}

// RunRecord is one recorded attempt to build and optionally execute a test.
// A nil section means the producer did not record that phase at all.
type RunRecord struct {
	Compilation *Section
	Runtime     *Section
}

// Section returns the section recorded for phase, or nil.
func (r RunRecord) Section(phase Phase) *Section {
	if phase == Compilation {
		return r.Compilation
	}
	return r.Runtime
}

// Document is a parsed results file: test name to its ordered run records.
type Document struct {
	Runs map[string][]RunRecord
}

// Names returns the test names in the document in lexical order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Runs))
	for name := range d.Runs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct tests in the document.
func (d *Document) Len() int {
	return len(d.Runs)
}
