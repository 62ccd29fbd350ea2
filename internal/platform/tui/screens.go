package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// communityHandle is where the game's community gathers.
const communityHandle = "@ziggyandzoop"

func (a App) viewSettings() string {
	t := a.tuning
	diff := strings.ToUpper(string(a.diff))
	if diff == "" {
		diff = "CUSTOM"
	}

	rows := []struct{ label, value string }{
		{"DIFFICULTY", diff},
		{"TICK RATE", fmt.Sprintf("%d/s", a.runtime.TickRate)},
		{"GRAVITY", fmt.Sprintf("%g", t.Physics.Gravity)},
		{"JUMP", fmt.Sprintf("%g", t.Physics.JumpImpulse)},
		{"SPEED", fmt.Sprintf("%g → %g", t.Progression.BaseSpeed, t.Progression.MaxSpeed)},
		{"SEED", fmt.Sprintf("%d", a.runtime.Seed)},
	}

	label := lipgloss.NewStyle().Width(14)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	var panel strings.Builder
	for i, r := range rows {
		if i > 0 {
			panel.WriteString("\n")
		}
		panel.WriteString(label.Render(r.label) + value.Render(r.value))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), a.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panelStyle.Render(panel.String()), a.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Tuning comes from runner.yaml and --difficulty"), a.width))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewCommunity() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("JOIN THE COMMUNITY"), a.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Follow us on Instagram!"), a.width))
	b.WriteString("\n")
	b.WriteString(centerText(blinkStyle.Render(communityHandle), a.width))
	b.WriteString("\n")
	return b.String()
}
