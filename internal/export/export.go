// Package export writes classified verdicts to tabular and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatXLSX, FormatJSON}
}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q (expected csv, xlsx, or json)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f, err == nil
}

// Columns is the header row of every tabular export.
var Columns = []string{
	"Name",
	"Language",
	"Compiler Result",
	"Compiler Reason",
	"Runtime Result",
	"Runtime Reason",
	"Compiler Stdout",
	"Compiler Stderr",
	"Runtime Stdout",
	"Runtime Stderr",
}

// Row renders one verdict in Columns order.
func Row(v classify.Verdict) []string {
	return []string{
		v.Name,
		string(v.Language),
		v.Compiler.Result.String(),
		v.Compiler.Reason,
		v.Runtime.Result.String(),
		v.Runtime.Reason,
		v.Compiler.Stdout,
		v.Compiler.Stderr,
		v.Runtime.Stdout,
		v.Runtime.Stderr,
	}
}

// Report is everything an export can contain.
type Report struct {
	Verdicts []classify.Verdict `json:"verdicts"`
	Summary  summary.Summary    `json:"summary"`
}

// Write encodes rep to w in the given format.
func Write(w io.Writer, format Format, rep Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rep.Verdicts)
	case FormatXLSX:
		return WriteXLSX(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep, "")
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes one header row and one row per verdict.
func WriteCSV(w io.Writer, verdicts []classify.Verdict) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, v := range verdicts {
		if err := cw.Write(Row(v)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes rep to path, replacing any existing file.
func ToFile(path string, format Format, rep Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WithPath(errors.Wrap(cerr, "failed to close export file"), path)
		}
	}()

	if err := Write(f, format, rep); err != nil {
		return errors.WithPath(errors.Wrap(err, "failed to write export"), path)
	}
	return nil
}
