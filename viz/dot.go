package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/scalargrad/scalar"
)

// ErrNilRoot indicates that a nil terminal node was passed to Dot.
var ErrNilRoot = errors.New("viz: root node is nil")

// Option configures optional behavior of Dot.
type Option func(*options)

// options holds the rendering settings.
type options struct {
	name     string // digraph name
	withGrad bool   // include the grad field in record labels
}

// defaultOptions returns the defaults: digraph "scalargrad", grads shown.
func defaultOptions() options {
	return options{name: "scalargrad", withGrad: true}
}

// WithName returns an Option that sets the digraph name. The name is
// emitted verbatim and should be a valid DOT identifier.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithoutGrad returns an Option that omits the grad field from node labels,
// useful when rendering a graph before any backward pass.
func WithoutGrad() Option {
	return func(o *options) {
		o.withGrad = false
	}
}

// Dot renders the graph reachable from root as Graphviz DOT text.
//
// Every Scalar becomes a record node labeled with its value (and gradient
// unless WithoutGrad is set); every interior Scalar additionally gets a
// junction node labeled with its operation symbol, wired as
// operand → junction → result. Node numbering follows root.Walk(), so
// operands always carry lower numbers than their consumers.
func Dot(root *scalar.Scalar, opts ...Option) (string, error) {
	// 1. Validate input and apply settings.
	if root == nil {
		return "", ErrNilRoot
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Stable numbering from the post-order walk.
	order := root.Walk()
	id := make(map[*scalar.Scalar]int, len(order))
	for i, n := range order {
		id[n] = i
	}

	// 3. Emit nodes, junctions, and edges.
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", o.name)
	b.WriteString("\trankdir=LR;\n")
	for i, n := range order {
		if o.withGrad {
			fmt.Fprintf(&b, "\tn%d [shape=record, label=\"{ value %.4f | grad %.4f }\"];\n", i, n.Value(), n.Grad())
		} else {
			fmt.Fprintf(&b, "\tn%d [shape=record, label=\"{ value %.4f }\"];\n", i, n.Value())
		}
		if n.OpKind() == scalar.OpLeaf {
			continue
		}
		fmt.Fprintf(&b, "\tn%dop [label=%q];\n", i, n.OpKind().String())
		fmt.Fprintf(&b, "\tn%dop -> n%d;\n", i, i)
		for _, src := range n.Operands() {
			fmt.Fprintf(&b, "\tn%d -> n%dop;\n", id[src], i)
		}
	}
	b.WriteString("}\n")

	return b.String(), nil
}
