package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sporadisk/timesheet/format"
	"github.com/sporadisk/timesheet/summary"
)

const noActivity = "-"

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	taskStyle   = lipgloss.NewStyle().Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	totalStyle  = cellStyle.Bold(true)
)

func (c *Client) OutputTable(sheet summary.Table) error {
	_, err := fmt.Fprint(c.Out, c.Summary(sheet))
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func (c *Client) Summary(sheet summary.Table) string {
	var sb strings.Builder

	sb.WriteString("\n- Timesheet / " + sheetRange(sheet) + " -\n")

	if sheet.Empty() {
		sb.WriteString("No time entries found.\n")
		return sb.String()
	}

	headers := []string{"Task"}
	for _, day := range sheet.Days {
		headers = append(headers, day.String())
	}
	headers = append(headers, "Total")

	totalRow := len(sheet.Rows)
	lastCol := len(headers) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return taskStyle
			case row == totalRow || col == lastCol:
				return totalStyle
			default:
				return cellStyle
			}
		})

	for _, row := range sheet.Rows {
		cells := []string{row.Task}
		for _, h := range row.Hours {
			cells = append(cells, c.cell(h))
		}
		cells = append(cells, c.formatHours(row.Total()))
		t.Row(cells...)
	}

	totals := []string{"Total"}
	for _, h := range sheet.DayTotals() {
		totals = append(totals, c.cell(h))
	}
	totals = append(totals, c.formatHours(sheet.Total()))
	t.Row(totals...)

	sb.WriteString(t.Render())
	sb.WriteString("\n\nWorked: " + c.formatHours(sheet.Total()) + "\n")

	return sb.String()
}

func (c *Client) cell(h float64) string {
	if h == 0 {
		return noActivity
	}
	return c.formatHours(h)
}

func (c *Client) formatHours(h float64) string {
	return format.Hours(h, c.TimeFormat)
}

func sheetRange(sheet summary.Table) string {
	if len(sheet.Days) == 0 {
		return "no days"
	}

	first := sheet.Days[0].String()
	last := sheet.Days[len(sheet.Days)-1].String()
	if first == last {
		return first
	}

	return first + " - " + last
}
