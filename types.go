package undofsm

import (
	"log/slog"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Transitions maps an event to the state it leads to.
	Transitions = g.Map[Event, State]

	// StateConfig describes a single state and its outgoing transitions.
	StateConfig struct {
		Name        State
		Transitions Transitions
	}

	// Config is the declarative description of a state machine.
	// States keeps declaration order.
	Config struct {
		Initial State
		States  g.Slice[StateConfig]
	}

	// operation tags every entry of the operation log.
	operation int

	// mode selects how a state change is recorded in the operation log.
	mode int

	// FSM is the main state machine struct.
	FSM struct {
		config  Config
		index   g.Map[State, int]
		current State
		history g.Slice[State]
		ops     g.Slice[operation]
		undos   int

		logger *slog.Logger
	}
)

const (
	opNormal operation = iota
	opUndoMark
	opReset
)

const (
	modeNormal mode = iota
	modeUndo
	modeRedo
)

func (m mode) String() string {
	switch m {
	case modeUndo:
		return "undo"
	case modeRedo:
		return "redo"
	default:
		return "normal"
	}
}
