package runner

// Player is the jumping character. Y is the top edge of its hitbox in world
// units and grows downward, so a jump makes Y smaller. Y never exceeds the
// ground level it was integrated against.
type Player struct {
	Y        float64 // Vertical position
	VY       float64 // Vertical velocity, negative = up
	Airborne bool
}

// GroundedAt returns a player standing still on the given ground level.
func GroundedAt(groundLevel float64) Player {
	return Player{Y: groundLevel}
}

// Integrate advances the player by scale nominal ticks.
// Position moves by the current velocity, then gravity is applied, so a jump
// of 12 under gravity 0.8 goes 240 -> 228 with velocity -11.2 after one tick.
// Reaching or passing groundLevel lands the player. Grounded players are
// returned unchanged.
func (p Player) Integrate(gravity, groundLevel, scale float64) Player {
	if !p.Airborne {
		return p
	}

	p.Y += p.VY * scale
	p.VY += gravity * scale

	if p.Y >= groundLevel {
		p.Y = groundLevel
		p.VY = 0
		p.Airborne = false
	}
	return p
}

// Jump launches a grounded player with the given upward impulse.
// Jumping while airborne is a no-op.
func (p Player) Jump(impulse float64) Player {
	if p.Airborne {
		return p
	}
	p.VY = -impulse
	p.Airborne = true
	return p
}
