package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
)

// newRosterTable builds the character table.
func newRosterTable(roster []config.Character, screenH int) table.Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Name", Width: 8},
		{Title: "Special", Width: 16},
		{Title: "ATK", Width: 4},
		{Title: "DEF", Width: 4},
		{Title: "SPD", Width: 4},
		{Title: "MAG", Width: 4},
		{Title: "", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rosterRows(roster)),
		table.WithFocused(true),
		table.WithHeight(rosterHeight(len(roster), screenH)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func rosterRows(roster []config.Character) []table.Row {
	rows := make([]table.Row, len(roster))
	for i, c := range roster {
		status := ""
		if !c.Unlocked {
			status = "LOCKED"
		}
		rows[i] = table.Row{
			c.Sprite,
			c.Name,
			c.Special,
			strconv.Itoa(c.Stats.Attack),
			strconv.Itoa(c.Stats.Defense),
			strconv.Itoa(c.Stats.Speed),
			strconv.Itoa(c.Stats.Magic),
			status,
		}
	}
	return rows
}

// rosterHeight fits the table (two header lines plus one per character) to
// the roster, leaving room for the title and help on small terminals.
func rosterHeight(n, screenH int) int {
	return max(min(n+2, screenH-10), 3)
}

func (a App) updateCharacterSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.MenuAction(msg) {
	case core.ActionUp:
		a.roster.MoveUp(1)

	case core.ActionDown:
		a.roster.MoveDown(1)

	case core.ActionQuit:
		return a.quit()

	case core.ActionBack:
		a.startSeq++ // cancel a pending auto-start
		a.notice = ""
		a.show(ScreenMenu)

	case core.ActionConfirm:
		return a.pickCharacter(a.roster.Cursor())
	}
	return a, nil
}

// pickCharacter selects the roster entry at row and schedules play.
func (a App) pickCharacter(row int) (tea.Model, tea.Cmd) {
	if row < 0 || row >= len(a.tuning.Roster) {
		return a, nil
	}
	ch := a.tuning.Roster[row]
	if !ch.Unlocked {
		a.notice = ch.Name + " is locked"
		return a, nil
	}

	a.character = &ch
	a.notice = ch.Name + " selected! Get ready..."
	a.startSeq++
	seq := a.startSeq
	a.logger.Debug("character selected", "character", ch.ID)

	return a, tea.Tick(autoStartDelay, func(time.Time) tea.Msg {
		return autoStartMsg{seq: seq}
	})
}

func (a App) viewCharacterSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT YOUR HERO"), a.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panelStyle.Render(a.roster.View()), a.width))
	b.WriteString("\n")

	unlocked := 0
	for _, c := range a.tuning.Roster {
		if c.Unlocked {
			unlocked++
		}
	}
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Unlocked %d / %d", unlocked, len(a.tuning.Roster))), a.width))
	b.WriteString("\n")

	if a.notice != "" {
		b.WriteString(centerText(blinkStyle.Render(a.notice), a.width))
		b.WriteString("\n")
	}
	return b.String()
}
