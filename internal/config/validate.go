package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the invariants the simulation relies on and reports every
// violation at once.
func (c RunnerConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	p := c.Physics
	if p.Gravity <= 0 {
		fail("physics.gravity must be positive, got %g", p.Gravity)
	}
	if p.JumpImpulse <= 0 {
		fail("physics.jump_impulse must be positive, got %g", p.JumpImpulse)
	}
	if p.GroundBaseline < p.GroundLevel {
		fail("physics.ground_baseline (%g) must not be above ground_level (%g)", p.GroundBaseline, p.GroundLevel)
	}

	o := c.Obstacles
	if o.Width <= 0 || o.Height <= 0 {
		fail("obstacles.width and obstacles.height must be positive, got %gx%g", o.Width, o.Height)
	}
	if o.MaxWidth != 0 && o.MaxWidth < o.Width {
		fail("obstacles.max_width (%g) must be 0 or at least width (%g)", o.MaxWidth, o.Width)
	}
	if o.MaxHeight != 0 && o.MaxHeight < o.Height {
		fail("obstacles.max_height (%g) must be 0 or at least height (%g)", o.MaxHeight, o.Height)
	}
	if o.SpawnThreshold <= 0 {
		fail("obstacles.spawn_threshold must be positive, got %g", o.SpawnThreshold)
	}
	if o.SpawnThreshold > o.SpawnX {
		fail("obstacles.spawn_threshold (%g) must not exceed spawn_x (%g)", o.SpawnThreshold, o.SpawnX)
	}
	if o.SpawnJitter < 0 {
		fail("obstacles.spawn_jitter must not be negative, got %g", o.SpawnJitter)
	}
	if o.ViewportWidth <= 0 {
		fail("obstacles.viewport_width must be positive, got %g", o.ViewportWidth)
	}

	pl := c.Player
	if pl.Width <= 0 || pl.Height <= 0 {
		fail("player.width and player.height must be positive, got %gx%g", pl.Width, pl.Height)
	}

	pr := c.Progression
	if pr.BaseSpeed <= 0 {
		fail("progression.base_speed must be positive, got %g", pr.BaseSpeed)
	}
	if pr.MaxSpeed < pr.BaseSpeed {
		fail("progression.max_speed (%g) must be at least base_speed (%g)", pr.MaxSpeed, pr.BaseSpeed)
	}
	if pr.SpeedRamp <= 0 {
		fail("progression.speed_ramp must be positive, got %g", pr.SpeedRamp)
	}
	if pr.ScoreDivisor <= 0 {
		fail("progression.score_divisor must be positive, got %g", pr.ScoreDivisor)
	}

	t := c.Timing
	if t.ReferenceTickRate <= 0 {
		fail("timing.reference_tick_rate must be positive, got %d", t.ReferenceTickRate)
	} else if time.Second/time.Duration(t.ReferenceTickRate) <= 0 {
		fail("timing.reference_tick_rate must be at most %d, got %d", int64(time.Second), t.ReferenceTickRate)
	}
	if t.MaxCatchUp < 1 {
		fail("timing.max_catch_up must be at least 1, got %g", t.MaxCatchUp)
	}

	seen := make(map[string]bool, len(c.Roster))
	for i, ch := range c.Roster {
		if ch.ID == "" {
			fail("roster[%d].id must not be empty", i)
			continue
		}
		if seen[ch.ID] {
			fail("roster id %q is duplicated", ch.ID)
		}
		seen[ch.ID] = true
	}

	return errors.Join(errs...)
}
