// Package calendar provides the patient's cyclic hour/weekday clock.
// One step is one hour; a day wraps into the next weekday, Sunday into Monday.
package calendar

import (
	"fmt"

	"github.com/talgya/nudge-sim/internal/entropy"
	"github.com/talgya/nudge-sim/internal/ring"
)

const (
	HoursPerDay = 24
	DaysPerWeek = 7
)

// TimeBucket is the coarse time-of-day band used by the observation.
type TimeBucket uint8

const (
	Morning TimeBucket = iota // [6, 10)
	Midday                    // [11, 16)
	Evening                   // [16, 22)
	Night                     // everything else, including hour 10
)

// NumTimeBuckets is the size of the time-of-day axis.
const NumTimeBuckets = 4

// DayBucket separates working days from the weekend.
type DayBucket uint8

const (
	Weekday DayBucket = iota
	Weekend
)

// NumDayBuckets is the size of the weekday axis.
const NumDayBuckets = 2

var timeBucketNames = [NumTimeBuckets]string{"morning", "midday", "evening", "night"}

func (b TimeBucket) String() string {
	if int(b) < len(timeBucketNames) {
		return timeBucketNames[b]
	}
	return "unknown"
}

func (b DayBucket) String() string {
	switch b {
	case Weekday:
		return "weekday"
	case Weekend:
		return "weekend"
	default:
		return "unknown"
	}
}

// BucketForHour maps an hour of day to its time bucket.
func BucketForHour(hour int) TimeBucket {
	switch {
	case hour >= 6 && hour < 10:
		return Morning
	case hour >= 11 && hour < 16:
		return Midday
	case hour >= 16 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// BucketForWeekday maps a weekday (1=Monday .. 7=Sunday) to its bucket.
func BucketForWeekday(day int) DayBucket {
	if day < 6 {
		return Weekday
	}
	return Weekend
}

// Clock holds the hour and weekday rotors. The current time is the head of
// each rotor.
type Clock struct {
	hours *ring.Rotor[int]
	days  *ring.Rotor[int]
}

// NewClock creates a clock at Monday 00:00.
func NewClock() *Clock {
	hours := make([]int, HoursPerDay)
	for h := range hours {
		hours[h] = h
	}
	days := make([]int, DaysPerWeek)
	for d := range days {
		days[d] = d + 1
	}
	return &Clock{
		hours: ring.NewRotor(hours...),
		days:  ring.NewRotor(days...),
	}
}

// Randomize moves the clock to a uniformly random weekday and hour, one
// rotation at a time. Weekday is drawn first. The hour rotation does not roll
// the weekday over.
func (c *Clock) Randomize(src *entropy.Source) {
	for i := src.Intn(c.days.Len()); i > 0; i-- {
		c.days.Rotate()
	}
	for i := src.Intn(c.hours.Len()); i > 0; i-- {
		c.hours.Rotate()
	}
}

// Advance moves the clock forward one hour, rolling the weekday at midnight.
func (c *Clock) Advance() {
	if c.hours.Rotate() == 0 {
		c.days.Rotate()
	}
}

// Hour returns the current hour of day, 0–23.
func (c *Clock) Hour() int {
	return c.hours.Head()
}

// Weekday returns the current weekday, 1 (Monday) to 7 (Sunday).
func (c *Clock) Weekday() int {
	return c.days.Head()
}

// TimeBucket returns the current time-of-day bucket.
func (c *Clock) TimeBucket() TimeBucket {
	return BucketForHour(c.Hour())
}

// DayBucket returns the current weekday bucket.
func (c *Clock) DayBucket() DayBucket {
	return BucketForWeekday(c.Weekday())
}

var dayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// String renders the clock as e.g. "Tue 14:00".
func (c *Clock) String() string {
	return fmt.Sprintf("%s %02d:00", dayNames[c.Weekday()-1], c.Hour())
}
