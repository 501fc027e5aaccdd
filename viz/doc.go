// Package viz renders a computation graph as Graphviz DOT text for
// inspection and debugging.
//
// Overview:
//
//   - Dot walks every node reachable from a terminal *scalar.Scalar and
//     emits a left-to-right DOT digraph: one record node per Scalar
//     (showing value and, by default, gradient) and one junction node per
//     operation, with edges from each operand through the junction to the
//     produced node.
//   - Output is deterministic: nodes are numbered by the engine's
//     post-order walk, so the same graph always renders the same text.
//   - This is a one-way rendering for human eyes; the text cannot be
//     parsed back into a graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) plus the rendered text
//
// Errors:
//
//   - ErrNilRoot — a nil terminal node was supplied.
//
// Example usage:
//
//	c := scalar.New(3.0).Div(scalar.New(4.0))
//	c.Backward()
//	text, err := viz.Dot(c, viz.WithName("division"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("graph.dot", []byte(text), 0o644)
package viz
