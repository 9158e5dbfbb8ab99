package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// defaultColumns returns the step table layout before the first resize.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the step table columns for a terminal width.
func columnsForWidth(width int) []table.Column {
	nameWidth := width - 38
	if nameWidth < 16 {
		nameWidth = 16
	}
	return []table.Column{
		{Title: "Step", Width: nameWidth},
		{Title: "Status", Width: 10},
		{Title: "Events", Width: 6},
		{Title: "Duration", Width: 12},
		{Title: "Cost", Width: 8},
	}
}

// rowsForState converts the folded steps into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Steps))
	for _, s := range state.Steps {
		rows = append(rows, table.Row{
			s.Name,
			string(s.Status),
			strconv.Itoa(len(s.Hooks)),
			durationCell(s),
			costCell(s),
		})
	}
	return rows
}
