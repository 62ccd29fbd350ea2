package runner

import "math"

// Progress is the distance travelled in the current run and the values
// derived from it.
type Progress struct {
	Distance float64 // world units; equals the tick count under a fixed tick
	Score    int
	Speed    float64 // obstacle speed in world units per tick
}

// ProgressionRules holds the constants of the score and speed formulas.
type ProgressionRules struct {
	BaseSpeed    float64
	MaxSpeed     float64
	SpeedRamp    float64 // distance per +1 speed
	ScoreDivisor float64 // distance per point
}

// At derives score and speed from distance alone:
// score = floor(distance/ScoreDivisor), speed = min(MaxSpeed, BaseSpeed + distance/SpeedRamp).
func (r ProgressionRules) At(distance float64) Progress {
	return Progress{
		Distance: distance,
		Score:    int(math.Floor(distance / r.ScoreDivisor)),
		Speed:    math.Min(r.MaxSpeed, r.BaseSpeed+distance/r.SpeedRamp),
	}
}

// Advance adds scale nominal ticks of distance.
func (r ProgressionRules) Advance(p Progress, scale float64) Progress {
	return r.At(p.Distance + scale)
}
