package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the character roster",
	Long: `Shows every character in the roster with its stats.
Locked characters cannot be played.`,
	Args: cobra.NoArgs,
	RunE: runCharacters,
}

func runCharacters(cmd *cobra.Command, _ []string) error {
	cfg, err := loadTuning(app)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "NAME", "SPRITE", "SPECIAL", "ATK", "DEF", "SPD", "MAG", "")
	for _, c := range cfg.Roster {
		status := ""
		if !c.Unlocked {
			status = "locked"
		}
		t.Row(c.ID, c.Name, c.Sprite, c.Special,
			strconv.Itoa(c.Stats.Attack), strconv.Itoa(c.Stats.Defense),
			strconv.Itoa(c.Stats.Speed), strconv.Itoa(c.Stats.Magic),
			status)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
