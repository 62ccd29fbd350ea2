// Package tui is the terminal front end: a Bubble Tea app that walks the
// player through the menus, feeds key presses to the runner and draws its
// snapshots. The same app is served over SSH by Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameClock measures real time between ticks. tea.Tick fires late under
// load, so the interval it was asked for is not what actually elapsed.
type frameClock struct {
	last     time.Time
	interval time.Duration
}

// elapsed returns the time since the previous tick. The first tick, and any
// tick whose clock went backwards, count as one interval.
func (c *frameClock) elapsed(now time.Time) time.Duration {
	dt := c.interval
	if !c.last.IsZero() && now.After(c.last) {
		dt = now.Sub(c.last)
	}
	c.last = now
	return dt
}

// reset forgets the previous tick so time spent off the play screen is not
// replayed as one long frame.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
