package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
)

// utf8BOM makes spreadsheet applications open the file as UTF-8 instead of
// the system code page.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV writes the summary table, a blank row and the audit table into one file.
type CSV struct {
	Comma rune
}

func NewCSV() *CSV {
	return &CSV{Comma: ','}
}

func (e *CSV) Format() string { return "csv" }

func (e *CSV) Export(r *aggregate.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if e.Comma != 0 {
		w.Comma = e.Comma
	}

	records := make([][]string, 0, 4+len(r.Folders())+len(r.Audit()))
	records = append(records, SummaryHeader())
	records = append(records, SummaryRows(r)...)
	records = append(records, []string{})
	records = append(records, AuditHeader())
	records = append(records, AuditRows(r)...)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
