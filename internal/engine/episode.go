// Package engine runs one simulated patient day as a fixed sequence of
// hourly steps for an external decision agent.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/nudge-sim/internal/calendar"
	"github.com/talgya/nudge-sim/internal/entropy"
	"github.com/talgya/nudge-sim/internal/observation"
	"github.com/talgya/nudge-sim/internal/patient"
	"github.com/talgya/nudge-sim/internal/signals"
)

// StepsPerEpisode is one day of hourly steps.
const StepsPerEpisode = 24

// Phase is the episode lifecycle state.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseReady
	PhaseRunning
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// StepResult is what the agent gets back from a step.
type StepResult struct {
	Reward      int
	Observation int
	Terminal    bool
	Performed   bool
}

// EpisodeStats tracks totals for the current episode.
type EpisodeStats struct {
	Prompts     int `json:"prompts"`
	Performed   int `json:"performed"`
	Declined    int `json:"declined"`
	AsleepSteps int `json:"asleep_steps"`
	TotalReward int `json:"total_reward"`
}

// Episode holds the complete patient state and wires the components together.
// It is not safe for concurrent use.
type Episode struct {
	ID           uuid.UUID
	Profile      patient.Profile
	Clock        *calendar.Clock
	Signals      *signals.Exogenous
	Emotions     *patient.EmotionalState
	Ledger       *patient.Ledger
	LastActivity int // 0 or 1, resampled only when a behavior is performed
	Steps        int // steps taken this episode
	Episodes     int // resets since Initialize
	Stats        EpisodeStats

	phase      Phase
	sleepCount signals.SleepCount
	src        *entropy.Source
	logger     *slog.Logger

	valenceModel patient.ValenceModel
	arousalModel patient.ArousalModel
	loadModel    patient.CognitiveLoadModel
}

// Option customizes an Episode.
type Option func(*Episode)

// WithSeed fixes the random seed. Seed 0 draws one from crypto/rand.
func WithSeed(seed int64) Option {
	return func(e *Episode) { e.src = entropy.NewSource(seed) }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Episode) { e.logger = l }
}

// WithValenceModel replaces the fitted valence curve.
func WithValenceModel(m patient.ValenceModel) Option {
	return func(e *Episode) { e.valenceModel = m }
}

// WithArousalModel replaces uniform arousal.
func WithArousalModel(m patient.ArousalModel) Option {
	return func(e *Episode) { e.arousalModel = m }
}

// WithCognitiveLoadModel replaces uniform cognitive load.
func WithCognitiveLoadModel(m patient.CognitiveLoadModel) Option {
	return func(e *Episode) { e.loadModel = m }
}

// NewEpisode creates an uninitialized episode.
func NewEpisode(opts ...Option) *Episode {
	e := &Episode{}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = entropy.NewSource(0)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Phase returns the current lifecycle phase.
func (e *Episode) Phase() Phase {
	return e.phase
}

// Seed returns the seed driving this episode's randomness.
func (e *Episode) Seed() int64 {
	return e.src.Seed()
}

// Initialize validates cfg, builds fresh components and resets.
func (e *Episode) Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode, _ := cfg.sleepCount()

	e.Profile = cfg.Profile()
	e.sleepCount = mode
	e.Clock = calendar.NewClock()
	e.Signals = signals.NewExogenous()
	e.Emotions = patient.NewEmotionalState(e.valenceModel, e.arousalModel, e.loadModel)
	e.Episodes = 0
	e.phase = PhaseReady

	e.logger.Info("patient initialized",
		"behavior_threshold", e.Profile.BehaviorThreshold,
		"has_family", e.Profile.HasFamily,
		"sleep_count", mode.String(),
		"seed", e.Seed(),
	)
	return e.Reset()
}

// Reset starts a new day at a random weekday and hour.
func (e *Episode) Reset() error {
	if e.phase == PhaseUninitialized {
		return fmt.Errorf("%w: reset before initialize", ErrInvalidState)
	}

	e.Clock.Randomize(e.src)
	e.Signals.Seed(e.src, e.Clock.Hour())
	e.Ledger = patient.NewLedger()
	e.LastActivity = e.src.Intn(2)
	e.Steps = 0
	e.Episodes++
	e.Emotions.Resample(e.moment(), e.src)
	e.Stats = EpisodeStats{}
	e.ID = e.src.NewID()
	e.phase = PhaseRunning

	e.logger.Debug("episode reset",
		"episode_id", e.ID,
		"episode", e.Episodes,
		"time", e.Clock.String(),
		"location", e.Signals.Location().String(),
	)
	return nil
}

// Start resets and returns the first observation index.
func (e *Episode) Start() (int, error) {
	if err := e.Reset(); err != nil {
		return 0, err
	}
	return e.encode()
}

// Step applies one agent action and advances the day by an hour.
func (e *Episode) Step(actionID int) (StepResult, error) {
	if e.phase != PhaseRunning {
		return StepResult{}, fmt.Errorf("%w: step while %s", ErrInvalidState, e.phase)
	}
	action, err := DecodeAction(actionID)
	if err != nil {
		return StepResult{}, err
	}

	outcome := e.resolve(action)
	e.advance(outcome.Done)
	e.Steps++

	obs, err := e.encode()
	if err != nil {
		return StepResult{}, err
	}

	res := StepResult{
		Reward:      outcome.Reward,
		Observation: obs,
		Terminal:    e.Steps >= StepsPerEpisode,
		Performed:   outcome.Done,
	}

	e.logger.Debug("step",
		"episode_id", e.ID,
		"step", e.Steps,
		"action", actionID,
		"reward", res.Reward,
		"motivation", outcome.Factors.Motivation,
		"ability", outcome.Factors.Ability,
		"trigger", outcome.Factors.Trigger,
		"time", e.Clock.String(),
		"observation", obs,
	)

	if res.Terminal {
		e.phase = PhaseTerminal
		e.report()
	}
	return res, nil
}

// resolve runs the Fogg decision for action and records it in the ledger.
func (e *Episode) resolve(action patient.Action) patient.Outcome {
	var outcome patient.Outcome
	if action.Prompt {
		outcome = patient.Resolve(e.Profile, e.snapshot(), action)
	}
	e.Ledger.Record(outcome.Suggested, outcome.Performed)

	if action.Prompt {
		e.Stats.Prompts++
		if outcome.Done {
			e.Stats.Performed++
			e.LastActivity = e.src.Intn(2)
		} else {
			e.Stats.Declined++
		}
	}
	e.Stats.TotalReward += outcome.Reward
	return outcome
}

// advance moves the clock and resamples the exogenous and latent state.
// Sleep overrides everything else for the hour.
func (e *Episode) advance(justPerformed bool) {
	e.Clock.Advance()
	if e.Signals.ResampleSleep(e.src, e.Clock.Hour()) == signals.Asleep {
		e.Signals.ForceAsleep()
		e.Emotions.Settle()
		e.Stats.AsleepSteps++
		return
	}
	e.Signals.ResampleMotion(e.src, justPerformed)
	e.Signals.ResampleLocation(e.src)
	e.Emotions.Resample(e.moment(), e.src)
}

// snapshot captures the state a prompt is judged against. The prompt being
// resolved already counts toward confidence.
func (e *Episode) snapshot() patient.Snapshot {
	return patient.Snapshot{
		Valence:       e.Emotions.Valence,
		Arousal:       e.Emotions.Arousal,
		Load:          e.Emotions.Load,
		LastActivity:  e.LastActivity,
		RestedEnough:  e.Signals.SufficientSleep(e.sleepCount),
		Confidence:    e.Ledger.ProspectiveConfidence(),
		LastPerformed: e.Ledger.LastPerformed(),
		Asleep:        e.Signals.Asleep(),
		Day:           e.Clock.DayBucket(),
		TimeOfDay:     e.Clock.TimeBucket(),
		Location:      e.Signals.Location(),
		Motion:        e.Signals.Motion(),
	}
}

func (e *Episode) moment() patient.Moment {
	return patient.Moment{
		Hour:    e.Clock.Hour(),
		Weekday: e.Clock.Weekday(),
		Step:    e.Steps,
		Episode: e.Episodes,
	}
}

// Observation returns the current observation.
func (e *Episode) Observation() observation.Observation {
	return observation.Observation{
		TimeOfDay:    e.Clock.TimeBucket(),
		Day:          e.Clock.DayBucket(),
		LastActivity: e.LastActivity,
		Location:     e.Signals.Location(),
		Sleep:        e.Signals.Sleep(),
		Valence:      e.Emotions.Valence,
		Arousal:      e.Emotions.Arousal,
		Motion:       e.Signals.Motion(),
		Load:         e.Emotions.Load,
	}
}

func (e *Episode) encode() (int, error) {
	idx, err := observation.Encode(e.Observation())
	if err != nil {
		return 0, fmt.Errorf("encode observation: %w", err)
	}
	return idx, nil
}

func (e *Episode) report() {
	e.logger.Info("episode complete",
		"episode_id", e.ID,
		"episode", e.Episodes,
		"steps", e.Steps,
		"prompts", e.Stats.Prompts,
		"performed", e.Stats.Performed,
		"declined", e.Stats.Declined,
		"asleep_steps", e.Stats.AsleepSteps,
		"total_reward", e.Stats.TotalReward,
		"suggested_weight", e.Ledger.Suggestions(),
		"confidence", fmt.Sprintf("%.3f", e.Ledger.Confidence()),
	)
}
