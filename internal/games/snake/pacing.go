package snake

import (
	"errors"
	"time"
)

// Pacing controls how fast the clock ticks as the score grows.
type Pacing struct {
	Base             time.Duration // Interval at zero points
	Min              time.Duration // Floor the interval never drops below
	DecreasePerPoint time.Duration // Reduction for every point scored
}

// DefaultPacing returns 100ms at zero points, 2ms faster per point, never
// below 50ms.
func DefaultPacing() Pacing {
	return Pacing{
		Base:             100 * time.Millisecond,
		Min:              50 * time.Millisecond,
		DecreasePerPoint: 2 * time.Millisecond,
	}
}

// Validate reports whether the pacing yields a positive interval for every score.
func (p Pacing) Validate() error {
	switch {
	case p.Min <= 0:
		return errors.New("snake: minimum interval must be positive")
	case p.Base < p.Min:
		return errors.New("snake: base interval must not be below the minimum")
	case p.DecreasePerPoint < 0:
		return errors.New("snake: interval decrease must not be negative")
	}
	return nil
}

// Interval returns the tick interval for the given score:
// max(Base - points*DecreasePerPoint, Min).
func Interval(points int, p Pacing) time.Duration {
	return max(p.Base-time.Duration(points)*p.DecreasePerPoint, p.Min)
}
