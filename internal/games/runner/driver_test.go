package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

func newTestDriver(t *testing.T, cfg config.RunnerConfig) *Driver {
	t.Helper()
	d, err := NewDriver(cfg, 42)
	require.NoError(t, err)
	return d
}

// unreachableObstacles moves the obstacle baseline far below the runner so
// nothing can ever collide.
func unreachableObstacles() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.GroundBaseline = 1000
	return cfg
}

func startedDriver(t *testing.T, cfg config.RunnerConfig) *Driver {
	t.Helper()
	d := newTestDriver(t, cfg)
	d.Enqueue(CommandStart)
	return d
}

func TestNewDriverRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.Gravity = 0

	d, err := NewDriver(cfg, 1)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestIdleIgnoresJumpAndPause(t *testing.T) {
	d := newTestDriver(t, config.DefaultRunnerConfig())

	d.Enqueue(CommandJump)
	d.Enqueue(CommandPause)
	snap := d.Step()

	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, GroundedAt(240), snap.Player)
	assert.Empty(t, snap.Obstacles)
	assert.Zero(t, snap.Distance)
	assert.Zero(t, snap.Tick)
	assert.Equal(t, 3.0, snap.Speed)
}

func TestStartSpawnsFirstObstacle(t *testing.T) {
	d := startedDriver(t, config.DefaultRunnerConfig())

	snap := d.Step()
	assert.Equal(t, PhasePlaying, snap.Phase)
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, Obstacle{X: 800, Width: 30, Height: 60}, snap.Obstacles[0])
	assert.Equal(t, 1.0, snap.Distance)
	assert.Equal(t, uint64(1), snap.Tick)
	assert.True(t, snap.Grounded())

	snap = d.Step()
	require.Len(t, snap.Obstacles, 1)
	assert.InDelta(t, 800-3.001, snap.Obstacles[0].X, 1e-9)
}

func TestStartWhilePlayingIsIgnored(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())
	for i := 0; i < 10; i++ {
		d.Step()
	}

	d.Enqueue(CommandStart)
	snap := d.Step()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 11.0, snap.Distance)
}

func TestPauseFreezesAndResumes(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())
	d.Step()
	d.Step()
	d.Step()

	d.Enqueue(CommandPause)
	paused := d.Step()
	assert.Equal(t, PhasePaused, paused.Phase)
	assert.Equal(t, 3.0, paused.Distance)

	again := d.Step()
	assert.Equal(t, paused, again, "ticks leave a paused session untouched")

	d.Enqueue(CommandJump)
	assert.Equal(t, GroundedAt(240), d.Step().Player, "jump is ignored while paused")

	d.Enqueue(CommandPause)
	assert.Equal(t, paused, d.Step(), "pause while paused is ignored")

	d.Enqueue(CommandStart)
	resumed := d.Step()
	assert.Equal(t, PhasePlaying, resumed.Phase)
	assert.Equal(t, 4.0, resumed.Distance)
}

func TestStartResumesPausedRun(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())
	for i := 0; i < 5; i++ {
		d.Step()
	}
	d.Enqueue(CommandPause)
	d.Step()

	d.Enqueue(CommandStart)
	snap := d.Step()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 6.0, snap.Distance, "resume keeps the run")
}

func TestJumpTwiceInOneTick(t *testing.T) {
	d := startedDriver(t, config.DefaultRunnerConfig())
	d.Step()

	d.Enqueue(CommandJump)
	d.Enqueue(CommandJump)
	snap := d.Step()

	assert.InDelta(t, 228.0, snap.Player.Y, 1e-9)
	assert.InDelta(t, -11.2, snap.Player.VY, 1e-9)
	assert.False(t, snap.Grounded())
}

func TestStartAndJumpInSameTick(t *testing.T) {
	d := newTestDriver(t, config.DefaultRunnerConfig())

	d.Enqueue(CommandStart)
	d.Enqueue(CommandJump)
	snap := d.Step()

	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.InDelta(t, 228.0, snap.Player.Y, 1e-9)
}

func TestProgressionAfterThousandTicks(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())

	var snap Snapshot
	for i := 0; i < 1000; i++ {
		snap = d.Step()
	}

	require.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 1000.0, snap.Distance)
	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 4.0, snap.Speed)
	assert.Equal(t, 100, snap.Best)
}

// collidingDriver returns a playing driver whose next tick collides.
func collidingDriver(t *testing.T) *Driver {
	t.Helper()
	d := newTestDriver(t, config.DefaultRunnerConfig())
	r := d.Rules()
	d.session = Session{
		Phase:    PhasePlaying,
		Player:   GroundedAt(r.GroundLevel),
		Field:    Field{{X: 133, Width: 30, Height: 60}},
		Progress: r.Progression.At(50),
		Ticks:    50,
	}
	return d
}

func TestCollisionEndsRunWithoutProgress(t *testing.T) {
	d := collidingDriver(t)

	snap := d.Step()
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Equal(t, 50.0, snap.Distance, "the colliding tick adds no distance")
	assert.Equal(t, 5, snap.Score)
	assert.Equal(t, 5, snap.Best)
	assert.Equal(t, 5, d.Best())
	assert.Equal(t, uint64(51), snap.Tick)

	// The field was still advanced before the check.
	require.Len(t, snap.Obstacles, 2)
	assert.InDelta(t, 133-3.05, snap.Obstacles[0].X, 1e-9)
	assert.Equal(t, 800.0, snap.Obstacles[1].X)

	frozen := d.Step()
	assert.Equal(t, snap, frozen)

	d.Enqueue(CommandJump)
	d.Enqueue(CommandPause)
	assert.Equal(t, snap, d.Step(), "game over ignores jump and pause")
}

func TestRestartAfterGameOver(t *testing.T) {
	d := collidingDriver(t)
	d.Step()

	d.Enqueue(CommandStart)
	snap := d.Step()

	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, GroundedAt(240), snap.Player)
	assert.Equal(t, 1.0, snap.Distance)
	assert.Equal(t, 0, snap.Score)
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, 800.0, snap.Obstacles[0].X)
	assert.Equal(t, 5, snap.Best, "best survives a restart")
}

func TestTickScalesWithElapsedTime(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	one := startedDriver(t, cfg)
	two := startedDriver(t, cfg)
	tick := one.Rules().NominalTick

	for i := 0; i < 40; i++ {
		if i == 5 {
			one.Enqueue(CommandJump)
			two.Enqueue(CommandJump)
		}
		one.Step()
		one.Step()
		two.Tick(2 * tick)
	}

	a, b := one.Session(), two.Session()
	assert.Equal(t, a.Phase, b.Phase)
	assert.InDelta(t, a.Player.Y, b.Player.Y, 1e-9)
	assert.InDelta(t, a.Progress.Distance, b.Progress.Distance, 1e-9)
	assert.Equal(t, len(a.Field), len(b.Field))
	assert.Equal(t, uint64(80), a.Ticks)
	assert.Equal(t, uint64(40), b.Ticks)
}

func TestHalfTicks(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())
	half := d.Rules().NominalTick / 2

	var snap Snapshot
	for i := 0; i < 20; i++ {
		snap = d.Tick(half)
	}
	assert.InDelta(t, 10.0, snap.Distance, 1e-5)
	assert.Equal(t, uint64(20), snap.Tick)
}

func TestTickCapsCatchUp(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())

	snap := d.Tick(time.Hour)
	assert.Equal(t, 5.0, snap.Distance)
	assert.Equal(t, uint64(1), snap.Tick)
}

func TestNonPositiveTickIsNoop(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())
	d.Step()
	before := d.Session()

	d.Tick(0)
	d.Tick(-time.Second)
	assert.Equal(t, before, d.Session())
}

func TestSubscribeReceivesEverySnapshot(t *testing.T) {
	d := startedDriver(t, unreachableObstacles())

	var got []Snapshot
	d.Subscribe(func(s Snapshot) { got = append(got, s) })

	last := d.Step()
	d.Step()
	d.Enqueue(CommandPause)
	d.Step()

	require.Len(t, got, 3)
	assert.Equal(t, last, got[0])
	assert.Equal(t, PhasePaused, got[2].Phase)
}

func TestSnapshotSharesNoStorage(t *testing.T) {
	d := startedDriver(t, config.DefaultRunnerConfig())

	snap := d.Step()
	require.Len(t, snap.Obstacles, 1)
	snap.Obstacles[0].X = -1

	assert.Equal(t, 800.0, d.Snapshot().Obstacles[0].X)

	s := d.Session()
	s.Field[0].X = -1
	assert.Equal(t, 800.0, d.Session().Field[0].X)
}

func variedConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.MaxWidth = 45
	cfg.Obstacles.MaxHeight = 70
	cfg.Obstacles.SpawnJitter = 150
	return cfg
}

// play runs a fixed script: start, jump every 37 ticks, restart on game over.
func play(t *testing.T, seed int64, ticks int) []Snapshot {
	t.Helper()
	d, err := NewDriver(variedConfig(), seed)
	require.NoError(t, err)

	out := make([]Snapshot, 0, ticks)
	d.Enqueue(CommandStart)
	for i := 0; i < ticks; i++ {
		if i%37 == 0 {
			d.Enqueue(CommandJump)
		}
		snap := d.Step()
		if snap.Phase == PhaseGameOver {
			d.Enqueue(CommandStart)
		}
		out = append(out, snap)
	}
	return out
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	a := play(t, 7, 3000)
	b := play(t, 7, 3000)
	assert.Equal(t, a, b)

	c := play(t, 8, 3000)
	assert.NotEqual(t, a, c)
}

func TestLongRunInvariants(t *testing.T) {
	cfg := variedConfig()
	snaps := play(t, 99, 20000)

	prev := Snapshot{Speed: cfg.Progression.BaseSpeed}
	best := 0
	for i, s := range snaps {
		require.LessOrEqual(t, s.Player.Y, cfg.Physics.GroundLevel, "tick %d", i)
		require.LessOrEqual(t, s.Speed, cfg.Progression.MaxSpeed, "tick %d", i)
		require.GreaterOrEqual(t, s.Best, best, "tick %d", i)
		best = s.Best

		if s.Phase == PhasePlaying && prev.Phase == PhasePlaying {
			require.GreaterOrEqual(t, s.Speed, prev.Speed, "tick %d", i)
			require.GreaterOrEqual(t, s.Score, prev.Score, "tick %d", i)
		}
		for j, o := range s.Obstacles {
			require.Greater(t, o.Right(), 0.0, "tick %d", i)
			if j > 0 {
				require.Greater(t, o.X, s.Obstacles[j-1].X, "tick %d", i)
			}
		}
		if s.Phase == PhaseGameOver {
			require.GreaterOrEqual(t, s.Best, s.Score)
		}
		prev = s
	}
}
