package runner

import (
	"time"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing started yet
	PhasePlaying               // ticks advance the simulation
	PhasePaused                // halted mid-run, resumable without reset
	PhaseGameOver              // the run ended in a collision
)

// String returns the phase name shown in the HUD and logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command is an input forwarded by the platform layer.
type Command int

const (
	CommandJump  Command = iota + 1 // jump if playing and grounded
	CommandStart                    // start, restart after game over, or resume
	CommandPause                    // pause a running session
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandJump:
		return "jump"
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Rules are the validated constants a session runs with.
type Rules struct {
	Gravity        float64
	JumpImpulse    float64
	GroundLevel    float64
	GroundBaseline float64
	Hitbox         Hitbox
	Spawn          SpawnRules
	Progression    ProgressionRules
	NominalTick    time.Duration
	MaxCatchUp     float64
}

// NewRules validates cfg and extracts the simulation constants from it.
func NewRules(cfg config.RunnerConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}
	return Rules{
		Gravity:        cfg.Physics.Gravity,
		JumpImpulse:    cfg.Physics.JumpImpulse,
		GroundLevel:    cfg.Physics.GroundLevel,
		GroundBaseline: cfg.Physics.GroundBaseline,
		Hitbox: Hitbox{
			X:      cfg.Player.X,
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
		},
		Spawn: SpawnRules{
			SpawnX:    cfg.Obstacles.SpawnX,
			Threshold: cfg.Obstacles.SpawnThreshold,
			Width:     cfg.Obstacles.Width,
			Height:    cfg.Obstacles.Height,
			MaxWidth:  cfg.Obstacles.MaxWidth,
			MaxHeight: cfg.Obstacles.MaxHeight,
			Jitter:    cfg.Obstacles.SpawnJitter,
		},
		Progression: ProgressionRules{
			BaseSpeed:    cfg.Progression.BaseSpeed,
			MaxSpeed:     cfg.Progression.MaxSpeed,
			SpeedRamp:    cfg.Progression.SpeedRamp,
			ScoreDivisor: cfg.Progression.ScoreDivisor,
		},
		NominalTick: time.Second / time.Duration(cfg.Timing.ReferenceTickRate),
		MaxCatchUp:  cfg.Timing.MaxCatchUp,
	}, nil
}

// Session is one play-through: the player, the obstacle field and the
// progression, plus the phase gating them. Sessions are values; every
// transition returns a new one.
type Session struct {
	Phase    Phase
	Player   Player
	Field    Field
	Progress Progress
	Ticks    uint64 // scheduler ticks that advanced the simulation
}

// NewSession returns a session in the given phase with a grounded player,
// no obstacles, zero distance and base speed.
func NewSession(r Rules, phase Phase) Session {
	return Session{
		Phase:    phase,
		Player:   GroundedAt(r.GroundLevel),
		Progress: r.Progression.At(0),
	}
}

// Apply runs a command through the state machine. Commands that are not
// legal in the current phase return the session unchanged.
func (s Session) Apply(r Rules, cmd Command) Session {
	switch cmd {
	case CommandJump:
		if s.Phase == PhasePlaying {
			s.Player = s.Player.Jump(r.JumpImpulse)
		}
	case CommandStart:
		switch s.Phase {
		case PhaseIdle, PhaseGameOver:
			return NewSession(r, PhasePlaying)
		case PhasePaused:
			s.Phase = PhasePlaying
		}
	case CommandPause:
		if s.Phase == PhasePlaying {
			s.Phase = PhasePaused
		}
	}
	return s
}

// Halted reports whether ticks leave the session untouched.
func (s Session) Halted() bool {
	return s.Phase != PhasePlaying
}
