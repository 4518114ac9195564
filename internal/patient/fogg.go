package patient

import (
	"github.com/talgya/nudge-sim/internal/calendar"
	"github.com/talgya/nudge-sim/internal/signals"
)

// Snapshot is everything the decision reads about the patient at the moment a
// prompt arrives.
type Snapshot struct {
	Valence       Valence
	Arousal       Arousal
	Load          CognitiveLoad
	LastActivity  int  // 0 or 1
	RestedEnough  bool // more than seven hours slept
	Confidence    float64
	LastPerformed int // latest ledger performed entry
	Asleep        bool
	Day           calendar.DayBucket
	TimeOfDay     calendar.TimeBucket
	Location      signals.Location
	Motion        signals.Motion
}

// Factors are the three Fogg components for one prompt.
type Factors struct {
	Motivation int
	Ability    float64
	Trigger    int
}

// Score is the conjunctive product; any zero factor gives zero.
func (f Factors) Score() float64 {
	return float64(f.Motivation) * f.Ability * float64(f.Trigger)
}

// Motivation sums positive valence, family support, a good last activity and
// sufficient sleep.
func Motivation(p Profile, s Snapshot) int {
	return int(s.Valence) + b2i(p.HasFamily) + s.LastActivity + b2i(s.RestedEnough)
}

// Ability sums confidence, low cognitive load, having just done a long task,
// and being asked for the short task.
func Ability(s Snapshot, a Action) float64 {
	tired := b2i(s.LastPerformed > 1)
	load := b2i(s.Load == LoadLow)
	length := b2i(a.Short())
	return s.Confidence + float64(load+tired+length)
}

// Trigger scores how noticeable a prompt is now. A sleeping patient never
// notices one.
func Trigger(s Snapshot) int {
	if s.Asleep {
		return 0
	}
	goodDay := b2i(s.Day == calendar.Weekday)
	goodTime := b2i(s.TimeOfDay == calendar.Midday)
	goodLocation := b2i(s.Location == signals.Home)
	goodMotion := b2i(s.Motion == signals.Stationary)
	return int(s.Arousal) + goodDay + goodTime + goodLocation + goodMotion
}

// Evaluate computes the three factors for a prompt.
func Evaluate(p Profile, s Snapshot, a Action) Factors {
	return Factors{
		Motivation: Motivation(p, s),
		Ability:    Ability(s, a),
		Trigger:    Trigger(s),
	}
}

// Performs reports whether the factors clear the patient's threshold.
func (p Profile) Performs(f Factors) bool {
	return f.Score() > p.BehaviorThreshold
}

// Outcome is the result of resolving one action.
type Outcome struct {
	Reward    int
	Suggested int // ledger entry
	Performed int // ledger entry: 0, or 1 + task length
	Done      bool
	Factors   Factors // zero when no prompt was sent
}

// Resolve decides what the patient does with an action. Without a prompt the
// factors are not evaluated and the reward is 0.
func Resolve(p Profile, s Snapshot, a Action) Outcome {
	if !a.Prompt {
		return Outcome{}
	}
	f := Evaluate(p, s, a)
	if !p.Performs(f) {
		return Outcome{Reward: -1, Suggested: 1, Factors: f}
	}
	return Outcome{
		Reward:    10 + a.TaskLength,
		Suggested: 1,
		Performed: 1 + a.TaskLength,
		Done:      true,
		Factors:   f,
	}
}
