package game

import "time"

// Clock supplies the session's notion of now. Tests substitute a
// manual clock to drive ticks and effect expiry deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
