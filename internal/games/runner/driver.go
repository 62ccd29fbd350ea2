package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

// Driver owns a session and advances it once per scheduler tick.
//
// A Driver is not safe for concurrent use. The platform calls Enqueue and
// Tick from the same goroutine (the Bubble Tea update loop), so commands
// always land between ticks, never inside one.
type Driver struct {
	rules       Rules
	session     Session
	seed        int64
	runs        int64
	rng         *rand.Rand
	pending     []Command
	best        int
	subscribers []func(Snapshot)
}

// NewDriver validates cfg and returns a driver in the idle phase.
// Obstacle variation (when configured) is drawn from an RNG seeded with
// seed, so equal seeds and equal command scripts replay identically.
func NewDriver(cfg config.RunnerConfig, seed int64) (*Driver, error) {
	rules, err := NewRules(cfg)
	if err != nil {
		return nil, err
	}
	return &Driver{
		rules:   rules,
		session: NewSession(rules, PhaseIdle),
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Rules returns the constants the driver runs with.
func (d *Driver) Rules() Rules {
	return d.rules
}

// Session returns a copy of the current session.
func (d *Driver) Session() Session {
	s := d.session
	s.Field = s.Field.Clone()
	return s
}

// Best returns the best score reached by this driver.
func (d *Driver) Best() int {
	return d.best
}

// Subscribe registers fn to receive every snapshot Tick emits.
func (d *Driver) Subscribe(fn func(Snapshot)) {
	d.subscribers = append(d.subscribers, fn)
}

// Enqueue queues a command for the start of the next tick.
func (d *Driver) Enqueue(cmd Command) {
	d.pending = append(d.pending, cmd)
}

// Step runs one tick of exactly one nominal tick duration.
func (d *Driver) Step() Snapshot {
	return d.Tick(d.rules.NominalTick)
}

// Tick applies queued commands in arrival order, then, if the session is
// playing, advances it by dt of simulated time and emits a snapshot.
//
// dt is measured in nominal ticks and capped at MaxCatchUp. It is split into
// equal sub-steps no longer than one nominal tick so a slow frame cannot
// carry an obstacle through the player. Each sub-step runs physics, then
// obstacles, then collision, then progression. A collision ends the run at
// once and that sub-step adds no distance.
func (d *Driver) Tick(dt time.Duration) Snapshot {
	for _, cmd := range d.pending {
		d.apply(cmd)
	}
	d.pending = d.pending[:0]

	if !d.session.Halted() {
		d.advance(float64(dt) / float64(d.rules.NominalTick))
	}

	snap := d.Snapshot()
	for _, fn := range d.subscribers {
		fn(snap)
	}
	return snap
}

func (d *Driver) apply(cmd Command) {
	prev := d.session.Phase
	d.session = d.session.Apply(d.rules, cmd)

	// A fresh run reseeds so each run's obstacle sequence depends only on
	// the seed and how many runs came before it.
	if cmd == CommandStart && (prev == PhaseIdle || prev == PhaseGameOver) {
		d.runs++
		d.rng = rand.New(rand.NewSource(d.seed + d.runs))
	}
}

func (d *Driver) advance(scale float64) {
	scale = math.Min(math.Max(scale, 0), d.rules.MaxCatchUp)
	if scale == 0 {
		return
	}

	s := d.session
	s.Ticks++

	steps := int(math.Ceil(scale))
	sub := scale / float64(steps)
	for i := 0; i < steps; i++ {
		var collided bool
		s, collided = s.step(d.rules, sub, d.rng)
		if collided {
			s.Phase = PhaseGameOver
			d.best = max(d.best, s.Progress.Score)
			break
		}
	}
	d.session = s
}

// step runs one sub-step of the tick pipeline and reports a collision.
func (s Session) step(r Rules, scale float64, rng *rand.Rand) (Session, bool) {
	s.Player = s.Player.Integrate(r.Gravity, r.GroundLevel, scale)
	s.Field = s.Field.AdvanceAndSpawn(s.Progress.Speed*scale, r.Spawn, rng)

	if Collides(r.Hitbox.At(s.Player), s.Field, r.GroundBaseline) {
		return s, true
	}

	s.Progress = r.Progression.Advance(s.Progress, scale)
	return s, false
}

// Snapshot returns an immutable view of the current session.
func (d *Driver) Snapshot() Snapshot {
	best := d.best
	if d.session.Phase == PhasePlaying || d.session.Phase == PhasePaused {
		best = max(best, d.session.Progress.Score)
	}
	return Snapshot{
		Tick:      d.session.Ticks,
		Phase:     d.session.Phase,
		Player:    d.session.Player,
		Obstacles: d.session.Field.Clone(),
		Score:     d.session.Progress.Score,
		Distance:  d.session.Progress.Distance,
		Speed:     d.session.Progress.Speed,
		Best:      best,
	}
}
