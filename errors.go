package undofsm

import "fmt"

// ErrConfig is returned when a configuration is missing, cannot be decoded,
// or fails validation. No FSM is produced when New returns it.
type ErrConfig struct {
	// Reason describes what is wrong with the configuration.
	Reason string
	// Err is the underlying error, if any (e.g. a YAML syntax error).
	Err error
}

func (e *ErrConfig) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("undofsm: invalid config: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("undofsm: invalid config: %s", e.Reason)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrConfig) Unwrap() error { return e.Err }

// ErrInvalidState is returned when changing to a state that is not declared
// in the configuration. The FSM is left untouched.
type ErrInvalidState struct {
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("undofsm: unknown state %q", e.State)
}

// ErrInvalidEvent is returned when the current state defines no transition
// for the given event.
type ErrInvalidEvent struct {
	From  State
	Event Event
}

func (e *ErrInvalidEvent) Error() string {
	return fmt.Sprintf("undofsm: no transition for event %q from state %q", e.Event, e.From)
}
