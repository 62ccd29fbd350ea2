package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGravity = 0.8
	testGround  = 240.0
	testImpulse = 12.0
)

func TestJumpArcFirstTick(t *testing.T) {
	p := GroundedAt(testGround)
	require.Equal(t, Player{Y: 240, VY: 0, Airborne: false}, p)

	p = p.Jump(testImpulse)
	assert.Equal(t, -12.0, p.VY)
	assert.True(t, p.Airborne)

	p = p.Integrate(testGravity, testGround, 1)
	assert.InDelta(t, 228.0, p.Y, 1e-9)
	assert.InDelta(t, -11.2, p.VY, 1e-9)
	assert.True(t, p.Airborne)
}

func TestJumpWhileAirborneIsNoop(t *testing.T) {
	p := Player{Y: 200, VY: -3.2, Airborne: true}

	got := p.Jump(testImpulse)
	assert.Equal(t, p, got)
}

func TestIntegrateGroundedIsIdentity(t *testing.T) {
	p := GroundedAt(testGround)
	assert.Equal(t, p, p.Integrate(testGravity, testGround, 1))
	assert.Equal(t, p, p.Integrate(testGravity, testGround, 3.5))
}

func TestFullArcLandsOnGround(t *testing.T) {
	p := GroundedAt(testGround).Jump(testImpulse)

	ticks := 0
	minY := p.Y
	for p.Airborne {
		p = p.Integrate(testGravity, testGround, 1)
		ticks++
		require.LessOrEqual(t, p.Y, testGround, "player passed through the ground at tick %d", ticks)
		minY = min(minY, p.Y)
		require.Less(t, ticks, 1000, "player never landed")
	}

	assert.Equal(t, 31, ticks)
	assert.Equal(t, testGround, p.Y)
	assert.Equal(t, 0.0, p.VY)
	assert.InDelta(t, 144.0, minY, 1e-9, "apex of a 12/0.8 jump")
}

func TestLandingClampsOvershoot(t *testing.T) {
	p := Player{Y: 238, VY: 9, Airborne: true}

	p = p.Integrate(testGravity, testGround, 1)
	assert.Equal(t, Player{Y: testGround}, p)
}

func TestIntegrateScalesWithTickFraction(t *testing.T) {
	p := GroundedAt(testGround).Jump(testImpulse)

	half := p.Integrate(testGravity, testGround, 0.5)
	assert.InDelta(t, 234.0, half.Y, 1e-9)
	assert.InDelta(t, -11.6, half.VY, 1e-9)
}
