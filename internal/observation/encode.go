// Package observation maps the patient's nine categorical state axes to a
// single discrete state index and back.
package observation

import (
	"errors"
	"fmt"

	"github.com/talgya/nudge-sim/internal/calendar"
	"github.com/talgya/nudge-sim/internal/patient"
	"github.com/talgya/nudge-sim/internal/signals"
)

// Shape is the size of each axis, in encoding order.
var Shape = [9]int{calendar.NumTimeBuckets, calendar.NumDayBuckets, 2, 2, 2, 2, 2, 2, 2}

// NumStates is the size of the discrete observation space.
const NumStates = 1024

// ErrOutOfRange is returned for an axis value or index outside the space.
var ErrOutOfRange = errors.New("observation out of range")

// Observation is the patient state as the agent sees it.
type Observation struct {
	TimeOfDay    calendar.TimeBucket
	Day          calendar.DayBucket
	LastActivity int
	Location     signals.Location
	Sleep        signals.Sleep
	Valence      patient.Valence
	Arousal      patient.Arousal
	Motion       signals.Motion
	Load         patient.CognitiveLoad
}

func (o Observation) axes() [9]int {
	return [9]int{
		int(o.TimeOfDay), int(o.Day), o.LastActivity, int(o.Location),
		int(o.Sleep), int(o.Valence), int(o.Arousal), int(o.Motion), int(o.Load),
	}
}

var axisNames = [9]string{
	"time_of_day", "day", "last_activity", "location",
	"sleep", "valence", "arousal", "motion", "cognitive_load",
}

// Encode returns the row-major index of o over Shape.
func Encode(o Observation) (int, error) {
	idx := 0
	for i, v := range o.axes() {
		if v < 0 || v >= Shape[i] {
			return 0, fmt.Errorf("%w: %s=%d", ErrOutOfRange, axisNames[i], v)
		}
		idx = idx*Shape[i] + v
	}
	return idx, nil
}

// Decode inverts Encode.
func Decode(idx int) (Observation, error) {
	if idx < 0 || idx >= NumStates {
		return Observation{}, fmt.Errorf("%w: index %d", ErrOutOfRange, idx)
	}
	var axes [9]int
	for i := len(Shape) - 1; i >= 0; i-- {
		axes[i] = idx % Shape[i]
		idx /= Shape[i]
	}
	return Observation{
		TimeOfDay:    calendar.TimeBucket(axes[0]),
		Day:          calendar.DayBucket(axes[1]),
		LastActivity: axes[2],
		Location:     signals.Location(axes[3]),
		Sleep:        signals.Sleep(axes[4]),
		Valence:      patient.Valence(axes[5]),
		Arousal:      patient.Arousal(axes[6]),
		Motion:       signals.Motion(axes[7]),
		Load:         patient.CognitiveLoad(axes[8]),
	}, nil
}
