package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/export"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = cellStyle.Bold(true)
)

func (a *App) printSummary(rep *aggregate.Report) {
	a.printTable(export.SummaryHeader(), export.SummaryRows(rep))
}

// printTable draws a bordered table on a terminal and tab-separated lines
// otherwise, so piped output stays easy to parse.
func (a *App) printTable(header []string, rows [][]string) {
	if !a.styled {
		fmt.Fprintln(a.out, strings.Join(header, "\t"))
		for _, r := range rows {
			fmt.Fprintln(a.out, strings.Join(r, "\t"))
		}
		return
	}
	fmt.Fprintln(a.out, styledTable(header, rows).Render())
}

func styledTable(header []string, rows [][]string) *table.Table {
	last := len(rows) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last && col == 0 && rows[row][0] == export.TotalLabel:
				return totalStyle
			default:
				return cellStyle
			}
		}).
		Headers(header...).
		Rows(rows...)
}
