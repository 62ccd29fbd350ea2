package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuCharacterSelect
	MenuSettings
	MenuCommunity
	MenuQuit
)

var menuItems = []MenuItem{MenuStart, MenuCharacterSelect, MenuSettings, MenuCommunity, MenuQuit}

// Label returns the text shown in the menu.
func (i MenuItem) Label() string {
	switch i {
	case MenuStart:
		return "START GAME"
	case MenuCharacterSelect:
		return "CHARACTER SELECT"
	case MenuSettings:
		return "SETTINGS"
	case MenuCommunity:
		return "COMMUNITY"
	case MenuQuit:
		return "QUIT GAME"
	default:
		return ""
	}
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.MenuAction(msg) {
	case core.ActionQuit:
		return a.quit()

	case core.ActionUp:
		if a.cursor > 0 {
			a.cursor--
		}

	case core.ActionDown:
		if a.cursor < len(menuItems)-1 {
			a.cursor++
		}

	case core.ActionConfirm:
		return a.selectMenuItem(menuItems[a.cursor])
	}
	return a, nil
}

func (a App) selectMenuItem(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuStart:
		// Play needs a character; pick one first.
		if a.character == nil {
			a.show(ScreenCharacterSelect)
			return a, nil
		}
		if err := a.enterPlay(); err != nil {
			a.err = err
			return a, tea.Quit
		}
	case MenuCharacterSelect:
		a.show(ScreenCharacterSelect)
	case MenuSettings:
		a.show(ScreenSettings)
	case MenuCommunity:
		a.show(ScreenCommunity)
	case MenuQuit:
		return a.quit()
	}
	return a, nil
}

func (a App) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Z I G G Y  &  Z O O P"), a.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("PIXEL RUNNER"), a.width))
	b.WriteString("\n")
	b.WriteString(centerText(blinkStyle.Render("PRESS START TO BEGIN"), a.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := itemStyle.Render("  " + item.Label() + "  ")
		if i == a.cursor {
			line = activeStyle.Render("> " + item.Label() + " <")
		}
		b.WriteString(centerText(line, a.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	who := "No character selected"
	if a.character != nil {
		who = "Character: " + a.character.Name
	}
	b.WriteString(centerText(dimStyle.Render(who), a.width))
	b.WriteString("\n")

	return b.String()
}
