package undofsm

import "log/slog"

// MachineOption configures an FSM at construction time.
type MachineOption func(*FSM)

// WithLogger sets the logger for the machine. Records are emitted at Debug level.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(f *FSM) {
		if logger != nil {
			f.logger = logger
		}
	}
}
