package live

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"flightdeck/internal/classify"
)

// renderHeader renders the task header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Task " + state.Task.ID
	if state.Task.Title != "" {
		line += " | " + state.Task.Title
	}
	if state.Task.DeploymentStatus != "" {
		line += " | Deploy: " + state.Task.DeploymentStatus
	}
	if !state.LastUpdate.IsZero() {
		ago := now.Sub(state.LastUpdate).Round(time.Second)
		if ago < 0 {
			ago = 0
		}
		line += fmt.Sprintf(" | Updated %s ago", ago)
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderStageLadder renders the stage navigation line with the aggregate
// progress percentage.
func renderStageLadder(state State, noColor bool) string {
	if len(state.Nav) == 0 {
		return stylize("Stages pending…", noColor, lipgloss.Color("240"))
	}
	parts := make([]string, 0, len(state.Nav))
	for _, item := range state.Nav {
		label := stageGlyph(item.Status) + " " + item.Label
		if item.ID == state.SelectedStage {
			label = "[" + label + "]"
		}
		parts = append(parts, stylize(label, noColor, lipgloss.Color(stageColor(item.Status))))
	}
	progress := fmt.Sprintf("  %d%%", state.Progress)
	return strings.Join(parts, "  ") + stylize(progress, noColor, lipgloss.Color("242"))
}

// renderDetail renders the chip line for the selected step's latest hook.
func renderDetail(state State, cursor int, noColor bool) string {
	if cursor < 0 || cursor >= len(state.Steps) {
		return ""
	}
	selected := state.Steps[cursor]
	if len(selected.Hooks) == 0 {
		return ""
	}
	last := selected.Hooks[len(selected.Hooks)-1]
	parts := []string{}
	if summary := classify.Summary(last); summary != "" {
		parts = append(parts, summary)
	}
	for _, chip := range classify.DetailChips(last) {
		parts = append(parts, chip.Label+": "+chip.Value)
	}
	if len(parts) == 0 {
		return ""
	}
	return stylize(strings.Join(parts, "  |  "), noColor, lipgloss.Color("244"))
}

// renderFooter renders the error/help line. Waiting states show a
// placeholder, never an error.
func renderFooter(state State, noColor bool) string {
	if state.LastError != "" {
		return stylize("Fetch error (showing last snapshot): "+state.LastError, noColor, lipgloss.Color("203"))
	}
	if state.Waiting() {
		return stylize("Waiting for jobs…", noColor, lipgloss.Color("240"))
	}
	help := "q: quit  ←/→: stage  ↑/↓: step"
	if state.Options.ShowPhaseFilter {
		help += "  f: phase filter"
		if state.PhaseFilter != "" {
			help += " (" + state.PhaseFilter + ")"
		}
	}
	return stylize(help, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
