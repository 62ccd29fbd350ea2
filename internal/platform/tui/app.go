package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
	"github.com/vovakirdan/pixel-runner/internal/registry"
)

// Screen is one of the app's top-level views.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenCharacterSelect
	ScreenPlaying
	ScreenSettings
	ScreenCommunity
)

// String returns the screen name used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenCharacterSelect:
		return "character select"
	case ScreenPlaying:
		return "playing"
	case ScreenSettings:
		return "settings"
	case ScreenCommunity:
		return "community"
	default:
		return "unknown"
	}
}

// autoStartDelay is how long character select lingers on the pick before play.
const autoStartDelay = time.Second

// autoStartMsg moves from character select to play. seq guards against a
// pick the player already backed out of.
type autoStartMsg struct{ seq int }

// Options configures an App.
type Options struct {
	Runtime    core.RuntimeConfig
	Difficulty config.DifficultyPreset
	Character  string // roster id; when set the app opens straight into play
	Logger     *log.Logger
}

// App is the top-level Bubble Tea model: menu, character select, play,
// settings and community screens.
type App struct {
	screen  Screen
	runtime core.RuntimeConfig
	tuning  config.RunnerConfig
	diff    config.DifficultyPreset
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	cursor    int
	roster    table.Model
	character *config.Character
	notice    string
	startSeq  int

	game       registry.Game
	gameScreen *core.Screen
	gameState  core.GameState
	inputFrame core.InputFrame
	clock      frameClock

	width    int
	height   int
	quitting bool
	err      error
}

// NewApp creates the app model. An unknown or locked character in opts is
// an error.
func NewApp(opts Options) (App, error) {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := App{
		screen:     ScreenMenu,
		runtime:    rt,
		tuning:     runner.CurrentConfig(),
		diff:       opts.Difficulty,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      rt.ScreenW,
		height:     rt.ScreenH,
		inputFrame: core.NewInputFrame(),
		clock:      frameClock{interval: tickInterval(rt.TickRate)},
	}
	a.help.Width = rt.ScreenW
	a.roster = newRosterTable(a.tuning.Roster, rt.ScreenH)

	if opts.Character != "" {
		ch, ok := a.tuning.Character(opts.Character)
		if !ok {
			return App{}, fmt.Errorf("tui: unknown character %q", opts.Character)
		}
		if !ch.Unlocked {
			return App{}, fmt.Errorf("tui: character %q is locked", opts.Character)
		}
		a.character = &ch
		if err := a.enterPlay(); err != nil {
			return App{}, err
		}
	}
	return a, nil
}

// Init starts the tick loop. It runs for the app's lifetime; ticks only
// advance the game while the play screen is shown.
func (a App) Init() tea.Cmd {
	return tickCmd(a.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case TickMsg:
		a.handleTick(time.Time(msg))
		return a, tickCmd(a.runtime.TickRate)

	case autoStartMsg:
		if msg.seq == a.startSeq && a.screen == ScreenCharacterSelect {
			if err := a.enterPlay(); err != nil {
				a.err = err
				return a, tea.Quit
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenMenu:
		return a.updateMenu(msg)
	case ScreenCharacterSelect:
		return a.updateCharacterSelect(msg)
	case ScreenPlaying:
		return a.updatePlaying(msg)
	case ScreenSettings, ScreenCommunity:
		switch a.keys.MenuAction(msg) {
		case core.ActionQuit:
			return a.quit()
		case core.ActionBack, core.ActionConfirm:
			a.show(ScreenMenu)
		}
	}
	return a, nil
}

func (a App) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := a.keys.Action(msg); action {
	case core.ActionQuit:
		return a.quit()
	case core.ActionBack:
		// Leaving mid-run would silently throw the run away.
		if !a.gameState.Playing {
			a.leavePlay()
		}
	case core.ActionNone:
	default:
		a.inputFrame.Set(action)
	}
	return a, nil
}

// handleTick runs one simulation tick with the real time since the last one.
func (a *App) handleTick(now time.Time) {
	if a.screen != ScreenPlaying || a.game == nil {
		return
	}
	dt := a.clock.elapsed(now)
	prev := a.gameState
	res := a.game.Step(a.inputFrame, dt)
	a.inputFrame.Clear()
	a.gameState = res.State
	a.logTransition(prev, res.State)
}

// logTransition logs run lifecycle changes between two ticks.
func (a *App) logTransition(prev, next core.GameState) {
	switch {
	case next.Playing && prev.GameOver:
		a.logger.Info("run restarted", "best", next.Best)
	case next.Playing && prev.Paused:
		a.logger.Debug("run resumed", "score", next.Score)
	case next.Playing && !prev.Playing:
		a.logger.Info("run started", "character", a.characterID())
	case next.Paused && !prev.Paused:
		a.logger.Debug("run paused", "score", next.Score)
	case next.GameOver && !prev.GameOver:
		a.logger.Info("game over", "score", next.Score, "best", next.Best)
	}
}

// enterPlay creates a fresh game for the selected character.
func (a *App) enterPlay() error {
	g, err := registry.Create(runner.GameID)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if c, ok := g.(interface{ SetCharacter(config.Character) }); ok && a.character != nil {
		c.SetCharacter(*a.character)
	}
	if err := g.Reset(a.runtime); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	a.game = g
	a.gameState = g.State()
	a.gameScreen = core.NewScreen(a.width, a.playHeight())
	a.inputFrame.Clear()
	a.clock.reset()
	a.notice = ""
	a.show(ScreenPlaying)
	return nil
}

func (a *App) leavePlay() {
	if a.gameState.GameOver || a.gameState.Score > 0 {
		a.logger.Info("left run", "score", a.gameState.Score, "best", a.gameState.Best)
	}
	a.game = nil
	a.gameScreen = nil
	a.gameState = core.GameState{}
	a.show(ScreenMenu)
}

func (a *App) show(s Screen) {
	if s != a.screen {
		a.logger.Debug("screen", "from", a.screen, "to", s)
	}
	a.screen = s
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.logger.Debug("quit", "screen", a.screen)
	return a, tea.Quit
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.runtime.ScreenW, a.runtime.ScreenH = w, h
	a.help.Width = w
	a.roster.SetHeight(rosterHeight(len(a.tuning.Roster), h))
	if a.gameScreen != nil {
		a.gameScreen.Resize(w, a.playHeight())
	}
}

// playHeight leaves the last row for the help footer.
func (a App) playHeight() int {
	return max(a.height-1, 0)
}

func (a App) characterID() string {
	if a.character == nil {
		return ""
	}
	return a.character.ID
}

// View renders the current screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch a.screen {
	case ScreenMenu:
		body = a.viewMenu()
	case ScreenCharacterSelect:
		body = a.viewCharacterSelect()
	case ScreenPlaying:
		body = a.viewPlaying()
	case ScreenSettings:
		body = a.viewSettings()
	case ScreenCommunity:
		body = a.viewCommunity()
	}
	return body + "\n" + dimStyle.Render(a.help.View(a.keys.helpFor(a.screen)))
}

func (a App) viewPlaying() string {
	if a.game == nil || a.gameScreen == nil {
		return ""
	}
	a.game.Render(a.gameScreen)
	return RenderScreen(a.gameScreen)
}

// Screen returns the screen currently shown.
func (a App) Screen() Screen {
	return a.screen
}

// Err returns the error that stopped the app, if any.
func (a App) Err() error {
	return a.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(App); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
