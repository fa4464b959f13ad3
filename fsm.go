// Package undofsm provides a finite state machine driven by a declarative
// configuration of states and event-triggered transitions. Every state change
// is recorded in a history that supports undo and redo. It is built with types
// and utilities from the github.com/enetx/g library.
//
// An FSM is not safe for concurrent use.
package undofsm

import (
	"log/slog"

	"github.com/enetx/g"
)

// New creates an FSM from cfg. The FSM keeps its own shallow copy of cfg, so
// later changes to cfg's Initial or States do not affect it. Transition maps
// are shared and must not be modified while the FSM is in use.
//
// Only a nil cfg is rejected; use Config.Validate for stricter checks.
func New(cfg *Config, opts ...MachineOption) (*FSM, error) {
	if cfg == nil {
		return nil, &ErrConfig{Reason: "config is nil"}
	}

	f := &FSM{
		config: *cfg.Clone(),
		logger: slog.New(slog.DiscardHandler),
	}

	f.index = g.NewMap[State, int]()
	for i, sc := range f.config.States {
		if !f.index.Contains(sc.Name) {
			f.index[sc.Name] = i
		}
	}

	for _, opt := range opts {
		opt(f)
	}

	f.init()

	return f, nil
}

func (f *FSM) init() {
	f.current = f.config.Initial
	f.history = g.Slice[State]{f.config.Initial}
	f.ops = nil
	f.undos = 0
}

// Clone creates a new FSM instance with the same configuration but a fresh history.
func (f *FSM) Clone() *FSM {
	clone := &FSM{
		config: f.config,
		index:  f.index,
		logger: f.logger,
	}

	clone.init()

	return clone
}

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.current }

// Initial returns the state the FSM was configured to start in.
func (f *FSM) Initial() State { return f.config.Initial }

// History returns a copy of the recorded states, oldest first.
// Undo and redo append to the history rather than rewinding it.
func (f *FSM) History() g.Slice[State] { return f.history.Clone() }

// States returns the declared states in declaration order.
// Given an event, it returns only the states that define a transition for it.
func (f *FSM) States(event ...Event) g.Slice[State] {
	states := g.Slice[State]{}

	for i, sc := range f.config.States {
		if f.index[sc.Name] != i {
			continue
		}

		if len(event) > 0 && !sc.Transitions.Contains(event[0]) {
			continue
		}

		states.Push(sc.Name)
	}

	return states
}

// ChangeState moves the FSM to state and records it in the history.
// It returns *ErrInvalidState, leaving the FSM untouched, if state is not declared.
func (f *FSM) ChangeState(state State) error {
	return f.changeState(state, modeNormal)
}

// changeState is the only place where current, history and the operation log
// are modified on a transition.
func (f *FSM) changeState(state State, m mode) error {
	if !f.index.Contains(state) {
		err := &ErrInvalidState{State: state}
		f.logger.Debug("state change rejected", "state", state, "mode", m, "error", err)
		return err
	}

	from := f.current

	f.current = state
	f.history.Push(state)

	switch m {
	case modeUndo:
		f.ops.Push(opUndoMark)
	case modeRedo:
	default:
		f.ops.Push(opNormal)
	}

	f.logger.Debug("state changed", "from", from, "to", state, "mode", m)

	return nil
}

// Trigger moves the FSM along the transition defined for event on the current state.
// It returns *ErrInvalidEvent if there is none, or *ErrInvalidState if the
// transition targets an undeclared state.
func (f *FSM) Trigger(event Event) error {
	to := f.target(event)
	if to.IsNone() {
		err := &ErrInvalidEvent{From: f.current, Event: event}
		f.logger.Debug("event rejected", "event", event, "state", f.current, "error", err)
		return err
	}

	return f.changeState(to.Some(), modeNormal)
}

func (f *FSM) target(event Event) g.Option[State] {
	i, ok := f.index[f.current]
	if !ok {
		return g.None[State]()
	}

	to, ok := f.config.States[i].Transitions[event]
	if !ok {
		return g.None[State]()
	}

	return g.Some(to)
}

// Reset moves the FSM back to its initial state without validation and without
// recording a history entry. The reset is noted in the operation log, which
// keeps Redo available afterwards.
func (f *FSM) Reset() {
	from := f.current

	f.current = f.config.Initial
	f.ops.Push(opReset)

	f.logger.Debug("reset", "from", from, "to", f.current)
}

// CanUndo reports whether Undo would succeed.
func (f *FSM) CanUndo() bool {
	n := len(f.history)
	return n-f.undos*2 != 1 && n >= 2
}

// Undo re-enters the state recorded before the latest history entry. The
// history grows by one entry; the number of undos performed is tracked
// separately. It returns false and does nothing when no undo is available.
func (f *FSM) Undo() bool {
	if !f.CanUndo() {
		return false
	}

	if f.changeState(f.history[len(f.history)-2], modeUndo) != nil {
		return false
	}

	f.undos++
	f.logger.Debug("undo", "state", f.current, "undos", f.undos)

	return true
}

// CanRedo reports whether Redo would succeed.
func (f *FSM) CanRedo() bool {
	if len(f.history) < 2 {
		return false
	}

	last := f.lastOp()

	return last.IsNone() || last.Some() != opNormal
}

// Redo re-enters the state recorded before the latest history entry, reverting
// a preceding Undo. It returns false and does nothing when no redo is available.
func (f *FSM) Redo() bool {
	if !f.CanRedo() {
		return false
	}

	last := f.lastOp()
	marked := last.IsSome() && last.Some() == opUndoMark

	if f.changeState(f.history[len(f.history)-2], modeRedo) != nil {
		return false
	}

	if marked {
		f.ops = f.ops[:len(f.ops)-1]
	}

	f.logger.Debug("redo", "state", f.current)

	return true
}

func (f *FSM) lastOp() g.Option[operation] {
	if len(f.ops) == 0 {
		return g.None[operation]()
	}

	return g.Some(f.ops[len(f.ops)-1])
}

// ClearHistory drops every history entry except the first one. The current
// state, the undo count and the operation log are kept.
func (f *FSM) ClearHistory() {
	f.history = f.history[:1]
	f.logger.Debug("history cleared", "state", f.current)
}
