// Package patient models the simulated patient's latent affect and the Fogg
// behavior decision: motivation × ability × trigger against a threshold.
package patient

// Valence is the pleasantness of the patient's affect.
type Valence uint8

const (
	Negative Valence = iota
	Positive
)

// Arousal is the activation intensity of the patient's affect.
type Arousal uint8

const (
	ArousalLow Arousal = iota
	ArousalHigh
)

// CognitiveLoad is how mentally occupied the patient is.
type CognitiveLoad uint8

const (
	LoadLow CognitiveLoad = iota
	LoadHigh
)

func (v Valence) String() string {
	if v == Positive {
		return "positive"
	}
	return "negative"
}

func (a Arousal) String() string {
	if a == ArousalHigh {
		return "high"
	}
	return "low"
}

func (c CognitiveLoad) String() string {
	if c == LoadHigh {
		return "high"
	}
	return "low"
}

// Profile is the fixed per-patient configuration.
type Profile struct {
	BehaviorThreshold float64
	HasFamily         bool
}

// Action is a resolved agent action: whether to prompt, and which task length
// to suggest (0 short, 1 long).
type Action struct {
	Prompt     bool
	TaskLength int
}

// Short reports whether the suggested task is the shorter option.
func (a Action) Short() bool {
	return a.TaskLength == 0
}

// Moment is what a latent model may condition on.
type Moment struct {
	Hour    int // 0–23
	Weekday int // 1 (Monday) to 7
	Step    int // steps taken in this episode
	Episode int // episodes started since initialization
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
