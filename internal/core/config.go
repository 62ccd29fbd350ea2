package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduler ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score seen by this game instance
	Playing  bool // Simulation is advancing
	GameOver bool // The last run ended
	Paused   bool // The run is halted but resumable
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
