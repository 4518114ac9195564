package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/nudge-sim/internal/calendar"
	"github.com/talgya/nudge-sim/internal/signals"
)

// idealSnapshot maxes out every factor.
func idealSnapshot() Snapshot {
	return Snapshot{
		Valence:      Positive,
		Arousal:      ArousalHigh,
		Load:         LoadLow,
		LastActivity: 1,
		RestedEnough: true,
		Confidence:   1,
		Day:          calendar.Weekday,
		TimeOfDay:    calendar.Midday,
		Location:     signals.Home,
		Motion:       signals.Stationary,
	}
}

func TestMotivation(t *testing.T) {
	s := idealSnapshot()
	assert.Equal(t, 4, Motivation(Profile{HasFamily: true}, s))
	assert.Equal(t, 3, Motivation(Profile{HasFamily: false}, s))

	s.Valence = Negative
	s.LastActivity = 0
	s.RestedEnough = false
	assert.Equal(t, 0, Motivation(Profile{}, s))
}

func TestAbility(t *testing.T) {
	s := idealSnapshot()
	s.Confidence = 0.5

	assert.InDelta(t, 2.5, Ability(s, Action{Prompt: true, TaskLength: 0}), 1e-9)
	assert.InDelta(t, 1.5, Ability(s, Action{Prompt: true, TaskLength: 1}), 1e-9)

	s.Load = LoadHigh
	s.LastPerformed = 2
	assert.InDelta(t, 2.5, Ability(s, Action{Prompt: true, TaskLength: 0}), 1e-9)

	s.LastPerformed = 1
	assert.InDelta(t, 1.5, Ability(s, Action{Prompt: true, TaskLength: 0}), 1e-9)
}

func TestTrigger(t *testing.T) {
	s := idealSnapshot()
	assert.Equal(t, 5, Trigger(s))

	s.Day = calendar.Weekend
	s.TimeOfDay = calendar.Evening
	s.Location = signals.Other
	s.Motion = signals.Walking
	s.Arousal = ArousalLow
	assert.Equal(t, 0, Trigger(s))
}

func TestTrigger_AsleepIsZero(t *testing.T) {
	s := idealSnapshot()
	s.Asleep = true
	assert.Equal(t, 0, Trigger(s))
}

func TestResolve_NoPrompt(t *testing.T) {
	for _, length := range []int{0, 1} {
		o := Resolve(Profile{BehaviorThreshold: -100}, idealSnapshot(), Action{TaskLength: length})
		assert.Equal(t, Outcome{}, o)
	}
}

func TestResolve_PerformedRewardsTaskLength(t *testing.T) {
	p := Profile{BehaviorThreshold: 1, HasFamily: true}
	for _, length := range []int{0, 1} {
		o := Resolve(p, idealSnapshot(), Action{Prompt: true, TaskLength: length})
		assert.True(t, o.Done)
		assert.Equal(t, 10+length, o.Reward)
		assert.Equal(t, 1, o.Suggested)
		assert.Equal(t, 1+length, o.Performed)
	}
}

func TestResolve_NotPerformed(t *testing.T) {
	p := Profile{BehaviorThreshold: 1000, HasFamily: true}
	o := Resolve(p, idealSnapshot(), Action{Prompt: true})

	assert.False(t, o.Done)
	assert.Equal(t, -1, o.Reward)
	assert.Equal(t, 1, o.Suggested)
	assert.Equal(t, 0, o.Performed)
}

func TestResolve_ZeroFactorGates(t *testing.T) {
	// Everything else is ideal, but a sleeping patient cannot be triggered.
	s := idealSnapshot()
	s.Asleep = true
	o := Resolve(Profile{BehaviorThreshold: 0, HasFamily: true}, s, Action{Prompt: true})

	assert.Equal(t, 0.0, o.Factors.Score())
	assert.Equal(t, -1, o.Reward)
}

func TestPerforms_StrictlyAboveThreshold(t *testing.T) {
	f := Factors{Motivation: 2, Ability: 1.5, Trigger: 2} // 6
	assert.False(t, Profile{BehaviorThreshold: 6}.Performs(f))
	assert.True(t, Profile{BehaviorThreshold: 5.99}.Performs(f))
}
