package runner

import "github.com/vovakirdan/pixel-runner/internal/core"

// Hitbox is the player's fixed-size collision box. Only its vertical
// position follows the player.
type Hitbox struct {
	X      float64
	Width  float64
	Height float64
}

// At returns the hitbox placed at the player's vertical position.
func (h Hitbox) At(p Player) core.Box {
	return core.NewBox(h.X, p.Y, h.Width, h.Height)
}

// Collides reports whether box overlaps any live obstacle standing on
// groundBaseline. Touching edges do not count.
func Collides(box core.Box, field Field, groundBaseline float64) bool {
	for _, o := range field {
		if box.Intersects(o.Box(groundBaseline)) {
			return true
		}
	}
	return false
}
