package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
)

const (
	SummarySheet = "Summary"
	DetailsSheet = "Details"
)

// XLSX writes the summary and the audit into separate worksheets. Numeric
// columns are stored as numbers so the shop can sum them.
type XLSX struct{}

func NewXLSX() *XLSX {
	return &XLSX{}
}

func (e *XLSX) Format() string { return "xlsx" }

func (e *XLSX) Export(r *aggregate.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DetailsSheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	// summary: everything after the folder name is numeric
	if err := writeTable(f, SummarySheet, SummaryHeader(), SummaryRows(r), bold, func(col int) bool { return col > 0 }); err != nil {
		return nil, err
	}
	// details: raw and final counts
	if err := writeTable(f, DetailsSheet, AuditHeader(), AuditRows(r), bold, func(col int) bool { return col == 5 || col == 6 }); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 24)
	_ = f.SetColWidth(DetailsSheet, "B", "C", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, header []string, rows [][]string, headerStyle int, numeric func(col int) bool) error {
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
			if numeric(j) {
				if n, err := strconv.Atoi(v); err == nil {
					cells[j] = n
				}
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
