// Backward-pass engine: explicit-stack post-order traversal producing a
// reverse-topological ordering of the reachable graph, then chain-rule
// dispatch over that ordering in reverse.
//
// Complexity:
//
//   - Time:   O(V + E)  (each reachable node and operand edge handled once)
//   - Memory: O(V)      (visited set, traversal stack, recorded ordering)
package scalar

import "math"

// walkFrame tracks one node on the explicit traversal stack together with
// the index of the next operand to descend into.
type walkFrame struct {
	node *Scalar
	next int
}

// Walk returns every node reachable from s via operand edges, in post-order:
// each node appears only after all of its operands. The terminal node s is
// always last. Nodes shared by multiple paths appear exactly once, keyed by
// pointer identity.
//
// The traversal is iterative, so graphs built from arbitrarily long
// expression chains do not risk exhausting the call stack.
func (s *Scalar) Walk() []*Scalar {
	// 1. Seed the stack with the terminal node, marked visited on push so
	//    that diamond-shaped sharing is descended into only once.
	visited := map[*Scalar]struct{}{s: {}}
	stack := []walkFrame{{node: s}}
	order := make([]*Scalar, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 2. Descend into the next unvisited operand, if any remains.
		pushed := false
		for top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if child == nil {
				continue // leaf slot
			}
			if _, seen := visited[child]; seen {
				continue // shared ancestor already handled or in progress
			}
			visited[child] = struct{}{}
			stack = append(stack, walkFrame{node: child})
			pushed = true
			break
		}
		if pushed {
			continue
		}

		// 3. All operands finished: record the node post-order and backtrack.
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Backward populates the gradient of every node reachable from s with the
// total derivative of s's value with respect to that node.
//
// The terminal node's own gradient is seeded to 1 (override with WithSeed),
// then each node's backward rule fires exactly once, in an order where every
// downstream consumer of a node has already propagated before the node
// itself does. Gradients are accumulated additively, so a node feeding
// multiple consumers — or one consumer through several paths — collects the
// sum of all contributions.
//
// Backward does not reset gradients: successive passes over the same graph
// keep accumulating. Call ZeroGrad between passes for fresh gradients.
func (s *Scalar) Backward(opts ...BackwardOption) {
	// 1. Apply optional settings.
	o := defaultBackwardOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Post-order: operands before consumers, terminal node last.
	order := s.Walk()

	// 3. Seed d(s)/d(s), then propagate in reverse post-order so that a
	//    node's gradient is complete before it distributes to its operands.
	s.grad = o.seed
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// ZeroGrad resets the gradient of s and of every node reachable from it to
// zero, allowing the same graph to run further backward passes without
// contributions left over from earlier ones.
func (s *Scalar) ZeroGrad() {
	for _, n := range s.Walk() {
		n.grad = 0
	}
}

// propagate applies the chain rule for the operation that produced s,
// adding the local partial derivative scaled by s.grad into each operand's
// gradient. Addition (never assignment) keeps the accumulation invariant
// for nodes consumed by multiple downstream expressions.
func (s *Scalar) propagate() {
	a, b := s.operands[0], s.operands[1]
	switch s.op {
	case OpLeaf:
		// no operands, nothing to distribute
	case OpAdd:
		a.grad += s.grad
		b.grad += s.grad
	case OpSub:
		a.grad += s.grad
		b.grad -= s.grad
	case OpMul:
		a.grad += s.grad * b.val
		b.grad += s.grad * a.val
	case OpDiv:
		a.grad += s.grad * (1 / b.val)
		b.grad += s.grad * (-a.val / (b.val * b.val))
	case OpPow:
		// d(a**b)/da = b * a**(b-1); d(a**b)/db = a**b * ln(a).
		// ln(a) is taken unconditionally; non-positive bases yield NaN/-Inf
		// on the exponent branch per Go float semantics (see Pow).
		a.grad += s.grad * b.val * math.Pow(a.val, b.val-1)
		b.grad += s.grad * math.Pow(a.val, b.val) * math.Log(a.val)
	}
}
