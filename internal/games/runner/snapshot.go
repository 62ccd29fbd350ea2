package runner

// Snapshot is the state of one completed tick, handed to the render layer.
// It shares no storage with the driver.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Player    Player
	Obstacles []Obstacle
	Score     int
	Distance  float64
	Speed     float64
	Best      int
}

// Grounded reports whether the player is standing on the ground.
func (s Snapshot) Grounded() bool {
	return !s.Player.Airborne
}
