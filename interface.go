package undofsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*FSM)(nil)

type StateMachine interface {
	Current() State
	Initial() State
	States(...Event) g.Slice[State]
	History() g.Slice[State]
	ChangeState(State) error
	Trigger(Event) error
	Reset()
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	ClearHistory()
	Clone() *FSM
	ToDOT() g.String
}
