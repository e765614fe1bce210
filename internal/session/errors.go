package session

import (
	"errors"
	"fmt"
)

var (
	ErrNoMount  = errors.New("no mount target")
	ErrZeroSize = errors.New("mount target has zero size")
	ErrNoDevice = errors.New("no render device")
	ErrNoLoop   = errors.New("no frame loop")
)

// ConfigurationError is returned by New when a session cannot be built.
type ConfigurationError struct {
	Kind string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuring %s session: %v", e.Kind, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
