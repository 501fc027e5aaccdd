// Package scalargrad is a minimal playground for reverse-mode automatic
// differentiation over scalar values.
//
// 🚀 What is scalargrad?
//
//	A small, pure-Go autodiff engine that grows a computation graph as you
//	write arithmetic, then fills in every gradient with one backward pass:
//		• Scalar nodes: immutable values, accumulated gradients
//		• Operations: Add, Sub, Mul, Div, Pow, Neg, Tanh — mix nodes and raw numbers freely
//		• Backward engine: explicit-stack topological ordering + chain-rule dispatch
//		• Graph tooling: DOT rendering for inspection, bigram corpus statistics for demos
//
// ✨ Why choose scalargrad?
//
//   - Beginner-friendly – the whole engine is a handful of readable files
//   - Introspectable – backward rules are tagged operations, not hidden closures
//   - Pure Go core – no cgo, no hidden deps
//   - Deep-graph safe – iterative traversal, no recursion limits
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/ — the Scalar node, operation builders & the backward engine
//	viz/    — Graphviz DOT rendering of computation graphs
//	bigram/ — word-list loading & character-bigram frequency tables
//
// Quick taste:
//
//	a := scalar.New(3.0)
//	b := scalar.New(4.0)
//	c := a.Div(b)     // c.Value() == 0.75
//	c.Backward()      // a.Grad() == 0.25, b.Grad() == -0.1875
//
// Dive into each package's doc.go for algorithms, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/scalargrad
package scalargrad
