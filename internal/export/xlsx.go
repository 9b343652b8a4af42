package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

// Sheet names of the workbook, in tab order.
const (
	SheetSummary  = "Summary"
	SheetFailures = "Failures"
	SheetDetails  = "Details"
)

// default sheet created by excelize.NewFile
const defaultSheet = "Sheet1"

var (
	summaryColumns = []string{"Language", "Total", "Pass", "Fail", "Pass Rate"}
	failureColumns = []string{"Name", "Language", "Reason"}
)

// WriteXLSX writes a workbook with a per-language summary, the failure list
// and one detail row per verdict. Every sheet has a bold, frozen header row.
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetSummary, summaryColumns, summaryRows(rep.Summary)},
		{SheetFailures, failureColumns, failureRows(rep.Summary.Failures)},
		{SheetDetails, Columns, detailRows(rep.Verdicts)},
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sh := range sheets {
		idx, err := f.NewSheet(sh.name)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", sh.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeSheet(f, sh.name, sh.header, sh.rows, bold); err != nil {
			return fmt.Errorf("write sheet %s: %w", sh.name, err)
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, style int) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func summaryRows(sum summary.Summary) [][]any {
	rows := make([][]any, 0, len(sum.Languages)+1)
	for _, st := range sum.Languages {
		rows = append(rows, statsRow(string(st.Language), st))
	}
	if len(sum.Languages) > 1 {
		rows = append(rows, statsRow("Total", sum.Totals()))
	}
	return rows
}

func statsRow(label string, st summary.Stats) []any {
	return []any{label, st.Total, st.Pass, st.Fail, fmt.Sprintf("%.1f%%", st.PassRate()*100)}
}

func failureRows(failures []summary.Failure) [][]any {
	rows := make([][]any, 0, len(failures))
	for _, fl := range failures {
		rows = append(rows, []any{fl.Name, string(fl.Language), fl.Reason})
	}
	return rows
}

func detailRows(verdicts []classify.Verdict) [][]any {
	rows := make([][]any, 0, len(verdicts))
	for _, v := range verdicts {
		cells := Row(v)
		row := make([]any, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return rows
}
