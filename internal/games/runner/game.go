// Package runner implements the endless-runner simulation: a character that
// jumps over procedurally spawned obstacles while distance, score and speed
// grow on their own. Driver sequences physics, obstacles, collision and
// progression once per tick; Game adapts it to the platform registry and
// draws snapshots into a core.Screen.
package runner

import (
	"fmt"
	"math"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/registry"
)

// GameID is the registry identifier of the runner.
const GameID = "runner"

// Visual characters for rendering
const (
	ObstacleChar = '▓'
	GroundChar   = '═'
	DefaultLook  = '█'
)

// gameConfig only seeds the tuning of new Game values; a Driver never reads it.
var (
	settingsMu sync.RWMutex
	gameConfig = config.DefaultRunnerConfig()
)

// Configure sets the tuning used by games created afterwards.
// An invalid configuration is rejected and the previous one is kept.
func Configure(cfg config.RunnerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	settingsMu.Lock()
	gameConfig = cfg
	settingsMu.Unlock()
	return nil
}

// CurrentConfig returns the tuning new games are created with.
func CurrentConfig() config.RunnerConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return gameConfig
}

// Game implements registry.Game on top of a Driver.
type Game struct {
	driver    *Driver
	cfg       config.RunnerConfig
	character config.Character
	snap      Snapshot
}

// New creates a runner game using the current configuration.
func New() *Game {
	cfg := CurrentConfig()
	g := &Game{cfg: cfg}
	if len(cfg.Roster) > 0 {
		g.character = cfg.Roster[0]
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pixel Runner"
}

// SetCharacter picks the roster entry drawn as the player.
func (g *Game) SetCharacter(ch config.Character) {
	g.character = ch
}

// Character returns the roster entry drawn as the player.
func (g *Game) Character() config.Character {
	return g.character
}

// Reset discards the current driver and starts over in the idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	d, err := NewDriver(g.cfg, runtime.Seed)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	g.driver = d
	g.snap = d.Snapshot()
	return nil
}

// Step forwards the frame's actions as commands and runs one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.driver == nil {
		return core.StepResult{State: g.State()}
	}
	for _, a := range in.Actions() {
		if cmd, ok := commandFor(a); ok {
			g.driver.Enqueue(cmd)
		}
	}
	g.snap = g.driver.Tick(dt)
	return core.StepResult{State: g.State()}
}

// commandFor maps platform actions onto runner commands.
func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionJump:
		return CommandJump, true
	case core.ActionStart:
		return CommandStart, true
	case core.ActionPause:
		return CommandPause, true
	default:
		return 0, false
	}
}

// Snapshot returns the snapshot of the last completed tick.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Best:     g.snap.Best,
		Playing:  g.snap.Phase == PhasePlaying,
		GameOver: g.snap.Phase == PhaseGameOver,
		Paused:   g.snap.Phase == PhasePaused,
	}
}

// viewport maps world units onto screen cells. Row 0 is the HUD and the
// ground line sits on the last row.
type viewport struct {
	scaleX    float64
	scaleY    float64
	top       int
	groundRow int
}

func newViewport(w, h int, cfg config.RunnerConfig) viewport {
	groundRow := h - 1
	return viewport{
		scaleX:    float64(w) / cfg.Obstacles.ViewportWidth,
		scaleY:    float64(groundRow-1) / cfg.Physics.GroundBaseline,
		top:       1,
		groundRow: groundRow,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.scaleX))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// rect converts a world box to cells, keeping at least one cell each way.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := max(v.col(b.Right()), x0+1)
	y1 := max(v.row(b.Bottom()), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	v := newViewport(w, h, g.cfg)
	dst.DrawHLine(0, v.groundRow, w, GroundChar, core.ColorGray)

	for _, o := range g.snap.Obstacles {
		dst.DrawRect(v.rect(o.Box(g.cfg.Physics.GroundBaseline)), ObstacleChar, core.ColorPink)
	}

	hitbox := Hitbox{X: g.cfg.Player.X, Width: g.cfg.Player.Width, Height: g.cfg.Player.Height}
	look, color := g.look()
	dst.DrawRect(v.rect(hitbox.At(g.snap.Player)), look, color)

	g.drawHUD(dst)

	switch g.snap.Phase {
	case PhaseIdle:
		g.drawCenteredMessage(dst, "PRESS START", "Enter to run, Space to jump")
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press Enter to resume")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Enter to restart", g.snap.Score))
	}
}

// look returns the rune and color the character is drawn with.
func (g *Game) look() (rune, core.Color) {
	r := DefaultLook
	if s := g.character.Sprite; s != "" {
		r, _ = utf8.DecodeRuneInString(s)
	}
	return r, core.ParseColor(g.character.Color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" SCORE %06d ", g.snap.Score)
	dst.DrawTextColored(1, 0, left, core.ColorYellow)

	if name := g.character.Name; name != "" {
		dst.DrawTextCentered(0, name, core.ColorPurple)
	}

	right := fmt.Sprintf(" SPD %.1f  BEST %d ", g.snap.Speed, g.snap.Best)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorBlue)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorPink)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
