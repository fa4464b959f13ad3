package undofsm

import "github.com/enetx/g"

// NewConfig creates an empty configuration starting in the given state.
// The initial state is not declared; use State or Transition for that.
func NewConfig(initial State) *Config {
	return &Config{Initial: initial}
}

// State declares a state without transitions. Declaring an existing state is a no-op.
func (c *Config) State(name State) *Config {
	c.declare(name)
	return c
}

// Transition adds from -> event -> to, declaring both states if needed.
// A second transition for the same event on the same state replaces the first.
func (c *Config) Transition(from State, event Event, to State) *Config {
	i := c.declare(from)
	c.declare(to)

	if c.States[i].Transitions == nil {
		c.States[i].Transitions = g.NewMap[Event, State]()
	}

	c.States[i].Transitions[event] = to

	return c
}

// Lookup returns the descriptor of the first state declared with the given name.
func (c *Config) Lookup(name State) g.Option[StateConfig] {
	if i := c.position(name); i >= 0 {
		return g.Some(c.States[i])
	}

	return g.None[StateConfig]()
}

// Clone returns a shallow copy: the states slice is independent,
// transition maps are shared.
func (c *Config) Clone() *Config {
	return &Config{
		Initial: c.Initial,
		States:  c.States.Clone(),
	}
}

// Validate checks the invariants New does not enforce: a declared initial state,
// unique state names and transition targets that name declared states.
func (c *Config) Validate() error {
	if c.Initial == "" {
		return &ErrConfig{Reason: "initial state is empty"}
	}

	seen := g.NewSet[State]()
	for _, sc := range c.States {
		if seen.Contains(sc.Name) {
			return &ErrConfig{Reason: string(g.Format("state {} declared more than once", sc.Name))}
		}

		seen.Insert(sc.Name)
	}

	if !seen.Contains(c.Initial) {
		return &ErrConfig{Reason: string(g.Format("initial state {} is not declared", c.Initial))}
	}

	for _, sc := range c.States {
		for event, to := range sc.Transitions {
			if !seen.Contains(to) {
				return &ErrConfig{
					Reason: string(g.Format("transition {} from {} targets undeclared state {}", event, sc.Name, to)),
				}
			}
		}
	}

	return nil
}

func (c *Config) position(name State) int {
	for i, sc := range c.States {
		if sc.Name == name {
			return i
		}
	}

	return -1
}

func (c *Config) declare(name State) int {
	if i := c.position(name); i >= 0 {
		return i
	}

	c.States.Push(StateConfig{Name: name})

	return len(c.States) - 1
}
