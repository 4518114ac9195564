// Package signals models the patient's exogenous daily rhythms: sleep,
// motion and location. Sleep and motion keep a rolling 24-sample history;
// location is derived from motion.
package signals

import (
	"github.com/talgya/nudge-sim/internal/entropy"
	"github.com/talgya/nudge-sim/internal/ring"
)

// HistoryLength is the number of hourly samples kept per signal.
const HistoryLength = 24

// Sleep is the patient's sleep state for an hour.
type Sleep uint8

const (
	Awake Sleep = iota
	Asleep
)

// Motion is the patient's movement state for an hour.
type Motion uint8

const (
	Stationary Motion = iota
	Walking
)

// Location is where the patient is. Home encodes as 1.
type Location uint8

const (
	Other Location = iota
	Home
)

func (s Sleep) String() string {
	if s == Asleep {
		return "asleep"
	}
	return "awake"
}

func (m Motion) String() string {
	if m == Walking {
		return "walking"
	}
	return "stationary"
}

func (l Location) String() string {
	if l == Home {
		return "home"
	}
	return "other"
}

// wakeProbability is the chance of being awake at each hour of the day.
var wakeProbability = [HistoryLength]float64{
	0.3, 0.2, 0.1, 0.1, 0.3, 0.4, 0.6, 0.7, 0.8, 0.8, 0.9, 0.95,
	0.95, 0.95, 0.9, 0.95, 0.8, 0.8, 0.8, 0.8, 0.7, 0.7, 0.5, 0.4,
}

// WakeProbability returns the awake probability for an hour of day.
func WakeProbability(hour int) float64 {
	return wakeProbability[((hour%HistoryLength)+HistoryLength)%HistoryLength]
}

// Priors used to fill the histories at episode start.
const (
	priorAsleep     = 0.2
	priorAwake      = 0.8
	priorStationary = 0.65
	priorWalking    = 0.35
	stillAtHome     = 0.8 // chance a stationary patient is at home
	sufficientSleep = 7   // asleep samples needed to count as rested
)

// SleepCount selects which sleep samples feed the "sufficient sleep" check.
type SleepCount uint8

const (
	// SleepCountLiteral counts asleep samples older than the most recent
	// HistoryLength. With a HistoryLength window that set is always empty, so
	// the check never passes.
	SleepCountLiteral SleepCount = iota
	// SleepCountLastDay counts asleep samples in the current window.
	SleepCountLastDay
)

func (m SleepCount) String() string {
	if m == SleepCountLastDay {
		return "last_day"
	}
	return "literal"
}

// Exogenous owns the sleep and motion histories and the current location.
type Exogenous struct {
	sleep    *ring.Window[Sleep]
	motion   *ring.Window[Motion]
	location Location
}

// NewExogenous creates empty histories. Call Seed before sampling.
func NewExogenous() *Exogenous {
	return &Exogenous{
		sleep:  ring.NewWindow[Sleep](HistoryLength),
		motion: ring.NewWindow[Motion](HistoryLength),
	}
}

// Seed refills both histories from the fixed priors and picks a starting
// location for the given hour: home in the small hours, a coin flip otherwise.
func (e *Exogenous) Seed(src *entropy.Source, hour int) {
	e.motion.Clear()
	for i := 0; i < HistoryLength; i++ {
		e.motion.Push(Motion(src.Weighted(priorStationary, priorWalking)))
	}
	e.sleep.Clear()
	for i := 0; i < HistoryLength; i++ {
		if src.Weighted(priorAsleep, priorAwake) == 0 {
			e.sleep.Push(Asleep)
		} else {
			e.sleep.Push(Awake)
		}
	}
	if hour > 1 && hour < 7 {
		e.location = Home
	} else {
		e.location = Location(src.Intn(2))
	}
}

// ResampleSleep draws this hour's sleep state from the hourly wake table.
func (e *Exogenous) ResampleSleep(src *entropy.Source, hour int) Sleep {
	s := Asleep
	if src.Chance(WakeProbability(hour)) {
		s = Awake
	}
	e.sleep.Push(s)
	return s
}

// ResampleMotion draws this hour's motion. A behavior just performed forces
// walking; otherwise the weights are the stationary/walking frequencies over
// the current history.
func (e *Exogenous) ResampleMotion(src *entropy.Source, justPerformed bool) Motion {
	var m Motion
	switch {
	case justPerformed:
		m = Motion(src.Weighted(0, 1))
	default:
		n := float64(e.motion.Len())
		st := float64(e.motion.Count(Stationary)) / n
		wk := float64(e.motion.Count(Walking)) / n
		m = Motion(src.Weighted(st, wk))
	}
	e.motion.Push(m)
	return m
}

// ResampleLocation derives location from the latest motion sample.
func (e *Exogenous) ResampleLocation(src *entropy.Source) Location {
	if e.Motion() == Walking {
		e.location = Other
		return e.location
	}
	if src.Weighted(stillAtHome, 1-stillAtHome) == 0 {
		e.location = Home
	} else {
		e.location = Other
	}
	return e.location
}

// ForceAsleep applies the sleeping override: at home, not moving.
func (e *Exogenous) ForceAsleep() {
	e.location = Home
	e.motion.Push(Stationary)
}

// Sleep returns the latest sleep sample.
func (e *Exogenous) Sleep() Sleep {
	s, _ := e.sleep.Last()
	return s
}

// Motion returns the latest motion sample.
func (e *Exogenous) Motion() Motion {
	m, _ := e.motion.Last()
	return m
}

// Location returns the current location.
func (e *Exogenous) Location() Location {
	return e.location
}

// Asleep reports whether the latest sleep sample is asleep.
func (e *Exogenous) Asleep() bool {
	return e.Sleep() == Asleep
}

// HoursSlept counts asleep samples under the given counting mode.
func (e *Exogenous) HoursSlept(mode SleepCount) int {
	if mode == SleepCountLastDay {
		return e.sleep.Count(Asleep)
	}
	n := 0
	for _, s := range e.sleep.Older(HistoryLength) {
		if s == Asleep {
			n++
		}
	}
	return n
}

// SufficientSleep reports whether more than seven hours were slept.
func (e *Exogenous) SufficientSleep(mode SleepCount) bool {
	return e.HoursSlept(mode) > sufficientSleep
}
