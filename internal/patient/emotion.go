package patient

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/nudge-sim/internal/entropy"
)

// ValenceModel decides the patient's valence for a moment.
type ValenceModel interface {
	Valence(m Moment, src *entropy.Source) Valence
}

// ArousalModel decides the patient's arousal for a moment.
type ArousalModel interface {
	Arousal(m Moment, src *entropy.Source) Arousal
}

// CognitiveLoadModel decides the patient's cognitive load for a moment.
type CognitiveLoadModel interface {
	CognitiveLoad(m Moment, src *entropy.Source) CognitiveLoad
}

// FittedValence draws positive valence with a probability that follows a
// sinusoid-plus-quadratic curve over the hour of day, fitted on MMASH data.
// p = A·sin(B − hour) + C·hour² + D
type FittedValence struct {
	A, B, C, D float64
}

// DefaultValence returns the fitted curve.
func DefaultValence() FittedValence {
	return FittedValence{
		A: -5.34749718e-02,
		B: 8.77359961e+00,
		C: -1.65367766e-04,
		D: 8.75844092e-01,
	}
}

// PositiveProbability returns the chance of positive valence at hour.
func (f FittedValence) PositiveProbability(hour int) float64 {
	x := float64(hour)
	return f.A*math.Sin(f.B-x) + f.C*x*x + f.D
}

func (f FittedValence) Valence(m Moment, src *entropy.Source) Valence {
	if src.Chance(f.PositiveProbability(m.Hour)) {
		return Positive
	}
	return Negative
}

// UniformArousal is a fair coin between low and high arousal.
type UniformArousal struct{}

func (UniformArousal) Arousal(_ Moment, src *entropy.Source) Arousal {
	return Arousal(src.Intn(2))
}

// UniformLoad is a fair coin between low and high cognitive load.
type UniformLoad struct{}

func (UniformLoad) CognitiveLoad(_ Moment, src *entropy.Source) CognitiveLoad {
	return CognitiveLoad(src.Intn(2))
}

// NoiseLevel thresholds a smooth simplex field over (step, episode), so
// neighbouring hours tend to share a level. It serves as either an arousal or
// a cognitive-load model and consumes nothing from the random source. One
// instance yields the same level for both, so give arousal and load separate
// instances with different seeds.
type NoiseLevel struct {
	noise     opensimplex.Noise
	Frequency float64 // field units per step
	Threshold float64 // values at or above are high
}

// NewNoiseLevel creates a noise model. Different seeds give independent fields.
func NewNoiseLevel(seed int64) *NoiseLevel {
	return &NoiseLevel{
		noise:     opensimplex.NewNormalized(seed),
		Frequency: 0.15,
		Threshold: 0.5,
	}
}

// Level returns the raw field value in [0, 1) for m.
func (n *NoiseLevel) Level(m Moment) float64 {
	return n.noise.Eval2(float64(m.Step)*n.Frequency, float64(m.Episode)*7.3)
}

func (n *NoiseLevel) high(m Moment) bool {
	return n.Level(m) >= n.Threshold
}

func (n *NoiseLevel) Arousal(m Moment, _ *entropy.Source) Arousal {
	if n.high(m) {
		return ArousalHigh
	}
	return ArousalLow
}

func (n *NoiseLevel) CognitiveLoad(m Moment, _ *entropy.Source) CognitiveLoad {
	if n.high(m) {
		return LoadHigh
	}
	return LoadLow
}

// EmotionalState holds the patient's current affect and the models that
// resample it each step.
type EmotionalState struct {
	Valence Valence
	Arousal Arousal
	Load    CognitiveLoad

	valence ValenceModel
	arousal ArousalModel
	load    CognitiveLoadModel
}

// NewEmotionalState creates a state using the given models. Nil models fall
// back to the fitted valence curve and uniform arousal/load.
func NewEmotionalState(v ValenceModel, a ArousalModel, l CognitiveLoadModel) *EmotionalState {
	if v == nil {
		v = DefaultValence()
	}
	if a == nil {
		a = UniformArousal{}
	}
	if l == nil {
		l = UniformLoad{}
	}
	return &EmotionalState{valence: v, arousal: a, load: l}
}

// Resample draws valence, arousal and cognitive load, in that order.
func (e *EmotionalState) Resample(m Moment, src *entropy.Source) {
	e.Valence = e.valence.Valence(m, src)
	e.Arousal = e.arousal.Arousal(m, src)
	e.Load = e.load.CognitiveLoad(m, src)
}

// Settle applies the sleeping override. Valence carries over.
func (e *EmotionalState) Settle() {
	e.Arousal = ArousalLow
	e.Load = LoadLow
}
