package graph

import (
	"fmt"
	"io"
	"reflect"

	"github.com/cerocss/fxdi/internal/reflection"
)

// Visualizer renders a plan for humans or Graphviz.
type Visualizer struct {
	plan *Plan
}

// NewVisualizer creates a new plan visualizer
func NewVisualizer(plan *Plan) *Visualizer {
	return &Visualizer{plan: plan}
}

// WriteDOT writes the plan's parameter graph in Graphviz DOT format.
func (v *Visualizer) WriteDOT(w io.Writer) error {
	nodeIDs := make(map[reflect.Type]string)
	nodeID := func(t reflect.Type) string {
		if id, ok := nodeIDs[t]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(nodeIDs))
		nodeIDs[t] = id
		return id
	}

	// The first failed write sticks and later ones are skipped
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("digraph dependencies {\n")
	printf("  rankdir=LR;\n")
	printf("  node [shape=box];\n")

	printf("  %s [label=\"%s\", fillcolor=\"lightblue\", style=filled];\n",
		nodeID(v.plan.Root), reflection.TypeName(v.plan.Root))

	for _, edge := range v.plan.Edges {
		if _, seen := nodeIDs[edge.To]; !seen {
			printf("  %s [label=\"%s\"];\n", nodeID(edge.To), reflection.TypeName(edge.To))
		}
	}

	seen := make(map[Edge]bool)
	for _, edge := range v.plan.Edges {
		if seen[edge] {
			continue
		}
		seen[edge] = true
		printf("  %s -> %s;\n", nodeID(edge.From), nodeID(edge.To))
	}

	printf("}\n")
	return err
}

// WriteText writes the construction order, one step per line.
func (v *Visualizer) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Construction plan for %s:\n", reflection.TypeName(v.plan.Root)); err != nil {
		return err
	}

	steps := v.plan.Steps()
	for i, t := range steps {
		marker := ""
		if i == len(steps)-1 {
			marker = " (requested)"
		}
		if _, err := fmt.Fprintf(w, "  %d. %s%s\n", i+1, reflection.TypeName(t), marker); err != nil {
			return err
		}
	}

	return nil
}
