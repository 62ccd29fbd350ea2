package runner

import (
	"math/rand"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// Obstacle is a ground block the player must jump over.
type Obstacle struct {
	X      float64 // Horizontal position (left edge)
	Width  float64
	Height float64
	Gap    float64 // Extra distance this obstacle must travel past the spawn threshold before the next spawns
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Box returns the collision box with the obstacle's base on groundBaseline.
func (o Obstacle) Box(groundBaseline float64) core.Box {
	return core.NewBox(o.X, groundBaseline-o.Height, o.Width, o.Height)
}

// Field is the ordered set of live obstacles in spawn order. Everything moves
// at the same speed and spawns at the same x, so the newest obstacle is also
// the rightmost one.
type Field []Obstacle

// SpawnRules configures where and how often obstacles appear.
type SpawnRules struct {
	SpawnX    float64 // x of a new obstacle's left edge
	Threshold float64 // the newest obstacle must be left of this before another spawns
	Width     float64
	Height    float64
	MaxWidth  float64 // 0 = always Width
	MaxHeight float64 // 0 = always Height
	Jitter    float64 // upper bound of the random extra gap, 0 = none
}

// Last returns the most recently spawned obstacle.
func (f Field) Last() (Obstacle, bool) {
	if len(f) == 0 {
		return Obstacle{}, false
	}
	return f[len(f)-1], true
}

// Clone returns a copy that shares no storage with f.
func (f Field) Clone() Field {
	if f == nil {
		return nil
	}
	return append(Field(nil), f...)
}

// AdvanceAndSpawn moves every obstacle left by dx, drops those whose right
// edge reached the left viewport edge (x=0), and appends at most one new
// obstacle when the field is empty or the newest obstacle has passed the
// spawn threshold. The receiver is not modified.
func (f Field) AdvanceAndSpawn(dx float64, rules SpawnRules, rng *rand.Rand) Field {
	next := make(Field, 0, len(f)+1)
	for _, o := range f {
		o.X -= dx
		if o.Right() > 0 {
			next = append(next, o)
		}
	}

	last, ok := next.Last()
	if !ok || last.X < rules.Threshold-last.Gap {
		next = append(next, rules.spawn(rng))
	}
	return next
}

// spawn creates a new obstacle at the spawn position.
func (r SpawnRules) spawn(rng *rand.Rand) Obstacle {
	return Obstacle{
		X:      r.SpawnX,
		Width:  between(rng, r.Width, r.MaxWidth),
		Height: between(rng, r.Height, r.MaxHeight),
		Gap:    between(rng, 0, r.Jitter),
	}
}

// between returns lo when there is no range to draw from, otherwise a value in [lo, hi].
func between(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil || hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
