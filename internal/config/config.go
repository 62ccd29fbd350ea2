// Package config provides YAML-based tuning for the runner: the physics,
// obstacle, hitbox and progression constants, the character roster, and the
// difficulty presets that swap the speed constants.
package config

// RunnerConfig contains all configuration for the runner simulation.
// Distances are world units in the reference 800-wide viewport; velocities
// and accelerations are per nominal tick.
type RunnerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Player      PlayerConfig      `yaml:"player"`
	Progression ProgressionConfig `yaml:"progression"`
	Timing      TimingConfig      `yaml:"timing"`
	Roster      []Character       `yaml:"roster"`
}

// PhysicsConfig defines vertical motion of the runner.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // added to velocity per tick while airborne
	JumpImpulse    float64 `yaml:"jump_impulse"`    // upward speed set by a jump
	GroundLevel    float64 `yaml:"ground_level"`    // runner top edge when grounded
	GroundBaseline float64 `yaml:"ground_baseline"` // y where obstacles stand
}

// ObstacleConfig defines obstacle size and spawn cadence.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MaxWidth       float64 `yaml:"max_width"`  // 0 = always Width
	MaxHeight      float64 `yaml:"max_height"` // 0 = always Height
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnThreshold float64 `yaml:"spawn_threshold"`
	SpawnJitter    float64 `yaml:"spawn_jitter"` // extra random gap, 0 = fixed spacing
	ViewportWidth  float64 `yaml:"viewport_width"`
}

// PlayerConfig defines the runner hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProgressionConfig defines how score and speed derive from distance.
type ProgressionConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	SpeedRamp    float64 `yaml:"speed_ramp"`    // distance per +1 speed
	ScoreDivisor float64 `yaml:"score_divisor"` // distance per point
}

// TimingConfig defines how real elapsed time maps onto simulation ticks.
type TimingConfig struct {
	ReferenceTickRate int     `yaml:"reference_tick_rate"` // nominal ticks per second
	MaxCatchUp        float64 `yaml:"max_catch_up"`        // most nominal ticks one frame may cover
}

// Character is a cosmetic roster entry shown by the menu and HUD.
type Character struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Sprite   string         `yaml:"sprite"`
	Color    string         `yaml:"color"`
	Special  string         `yaml:"special"`
	Unlocked bool           `yaml:"unlocked"`
	Stats    CharacterStats `yaml:"stats"`
}

// CharacterStats are the 0-10 ratings displayed on the select screen.
type CharacterStats struct {
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
	Magic   int `yaml:"magic"`
}

// Character returns the roster entry with the given ID.
func (c RunnerConfig) Character(id string) (Character, bool) {
	for _, ch := range c.Roster {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// DifficultyPreset represents a named set of speed constants.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
