package engine

import "errors"

var (
	// ErrConfiguration means a required patient setting is missing or invalid.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidAction means an action id outside [0, NumActions).
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState means the call is not allowed in the episode's phase.
	ErrInvalidState = errors.New("invalid episode state")
)
