package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the reference tuning. It matches the embedded
// defaults/runner.yaml and is the base every loaded file is merged onto.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:        0.8,
			JumpImpulse:    12,
			GroundLevel:    240,
			GroundBaseline: 300,
		},
		Obstacles: ObstacleConfig{
			Width:          30,
			Height:         60,
			SpawnX:         800,
			SpawnThreshold: 600,
			ViewportWidth:  800,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Progression: ProgressionConfig{
			BaseSpeed:    3,
			MaxSpeed:     8,
			SpeedRamp:    1000,
			ScoreDivisor: 10,
		},
		Timing: TimingConfig{
			ReferenceTickRate: 60,
			MaxCatchUp:        5,
		},
		Roster: []Character{
			{
				ID: "ziggy", Name: "ZIGGY", Sprite: "@", Color: "blue",
				Special: "LIGHTNING DASH", Unlocked: true,
				Stats: CharacterStats{Attack: 8, Defense: 6, Speed: 9, Magic: 7},
			},
			{
				ID: "zoop", Name: "ZOOP", Sprite: "&", Color: "yellow",
				Special: "MEGA BOUNCE", Unlocked: true,
				Stats: CharacterStats{Attack: 7, Defense: 8, Speed: 6, Magic: 9},
			},
			{
				ID: "pinky", Name: "PINKY", Sprite: "*", Color: "pink",
				Special: "STAR BURST", Unlocked: false,
				Stats: CharacterStats{Attack: 9, Defense: 5, Speed: 8, Magic: 8},
			},
		},
	}
}

// DefaultYAML returns the embedded default runner.yaml.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
