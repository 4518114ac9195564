package engine

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/talgya/nudge-sim/internal/patient"
	"github.com/talgya/nudge-sim/internal/signals"
)

// Config is the per-patient setup passed to Initialize. The two patient
// fields are pointers so that a missing key is distinguishable from a zero.
type Config struct {
	BehaviorThreshold *float64 `yaml:"behavior_threshold" json:"behavior_threshold"`
	HasFamily         *bool    `yaml:"has_family" json:"has_family"`

	// SleepCount selects the sufficient-sleep window: "literal" (default,
	// never sufficient) or "last_day".
	SleepCount string `yaml:"sleep_count,omitempty" json:"sleep_count,omitempty"`
}

// NewConfig builds a complete config with the default sleep count.
func NewConfig(threshold float64, hasFamily bool) Config {
	return Config{BehaviorThreshold: &threshold, HasFamily: &hasFamily}
}

// ParseConfig decodes a YAML config and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromMap builds a config from loosely typed key/value settings, such
// as an environment-info dictionary handed over by an agent harness.
func ConfigFromMap(m map[string]any) (Config, error) {
	var cfg Config
	if v, ok := m["behavior_threshold"]; ok {
		f, err := toFloat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: behavior_threshold: %v", ErrConfiguration, err)
		}
		cfg.BehaviorThreshold = &f
	}
	if v, ok := m["has_family"]; ok {
		b, err := toBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: has_family: %v", ErrConfiguration, err)
		}
		cfg.HasFamily = &b
	}
	if v, ok := m["sleep_count"]; ok {
		s, isString := v.(string)
		if !isString {
			return Config{}, fmt.Errorf("%w: sleep_count: want string, got %T", ErrConfiguration, v)
		}
		cfg.SleepCount = s
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the required keys are present.
func (c Config) Validate() error {
	if c.BehaviorThreshold == nil {
		return fmt.Errorf("%w: missing behavior_threshold", ErrConfiguration)
	}
	if c.HasFamily == nil {
		return fmt.Errorf("%w: missing has_family", ErrConfiguration)
	}
	if _, err := c.sleepCount(); err != nil {
		return err
	}
	return nil
}

// Profile returns the patient profile. Call Validate first.
func (c Config) Profile() patient.Profile {
	return patient.Profile{
		BehaviorThreshold: *c.BehaviorThreshold,
		HasFamily:         *c.HasFamily,
	}
}

func (c Config) sleepCount() (signals.SleepCount, error) {
	switch c.SleepCount {
	case "", "literal":
		return signals.SleepCountLiteral, nil
	case "last_day":
		return signals.SleepCountLastDay, nil
	default:
		return 0, fmt.Errorf("%w: unknown sleep_count %q", ErrConfiguration, c.SleepCount)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("want number, got %T", v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		return b != 0, nil
	default:
		return false, fmt.Errorf("want bool, got %T", v)
	}
}
