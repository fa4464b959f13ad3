package undofsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the FSM for visualization.
// States appear in declaration order, edges sharing endpoints are merged into one
// labelled edge.
func (f *FSM) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.config.Initial))

	type edge struct{ from, to State }

	var order g.Slice[edge]
	labels := g.NewMap[edge, g.Slice[g.String]]()

	states := f.States()

	for state := range states.Iter() {
		transitions := f.config.States[f.index[state]].Transitions

		var events g.Slice[Event]
		for event := range transitions {
			events.Push(event)
		}

		events.SortBy(cmp.Cmp)

		for event := range events.Iter() {
			key := edge{from: state, to: transitions[event]}
			if !labels.Contains(key) {
				order.Push(key)
			}

			labels[key] = append(labels[key], g.String(event))
		}
	}

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case len(f.config.States[f.index[state]].Transitions) == 0:
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for e := range order.Iter() {
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", e.from, e.to, labels[e].Join("\\n")))
	}

	b.WriteString("}\n")

	return b.String()
}
