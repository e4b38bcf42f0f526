// Package viterbi provides two Viterbi search engines over a trellis of
// time-ordered candidate columns, plus a backward path iterator shared by
// both.
//
// What
//
//   - A trellis is a layered DAG: column t holds the candidate states at
//     time t, and edges exist only between consecutive columns.
//   - The caller pushes states one column at a time via PushState and asks
//     for the winner — the state at time t on the best path of length t+1 —
//     via SearchWinner.
//   - Costs come from three caller-supplied hooks (Costs):
//   - Emission(s): per-state cost
//   - Transition(l, r): cost of the edge l→r between consecutive columns
//   - Combine(prev, transition, emission): accumulation rule (default sum)
//   - Naive — dense dynamic programming, column by column. Works with any
//     finite costs and supports both minimization (NewNaiveMin) and
//     maximization (NewNaiveMax). Its invalid-cost sentinel is +Inf when
//     minimizing and -Inf when maximizing.
//   - Sparse — best-first uniform-cost search (NewSparse). Requires all
//     costs to be non-negative; any negative cost is the invalid sentinel
//     and prunes the edge or state silently. Repeated SearchWinner calls
//     with growing targets reuse all prior work, so columns may be appended
//     between calls.
//   - PathIterator — walks the winning path backwards from time t to 0.
//     When a column was bridged by a breakage (no valid edge from the
//     previous column), the predecessor link is absent and the iterator
//     steps sideways to the winner of the previous time instead.
//
// Why
//
//	Hidden-Markov-model decoding, map matching, segmentation — anything
//	that picks one candidate per step under per-step and per-edge costs.
//	The naive engine is the reference oracle; the sparse engine is the one
//	to run online, since it prunes dominated candidates and extends
//	incrementally as observations arrive.
//
// Determinism
//
//	For a fixed trellis and fixed hooks, SearchWinner is deterministic.
//	Ties are broken stably: the naive engine keeps the first best label in
//	column order, the sparse engine keeps the first state popped.
//
// Complexity (columns of size ≤ K, target time T)
//
//   - Naive:  O(T·K²) time, O(T·K) memory (full per-column label history)
//   - Sparse: O(E log N) time with N pushed labels and E relaxed edges,
//     O(N) memory; exhausted columns advance a pruning frontier that
//     discards stale labels in O(1)
//
// Usage
//
//	type obs struct{ name string; weight float64 }
//
//	vs := viterbi.NewSparse(viterbi.Costs[obs]{
//	    Emission:   func(s *viterbi.State[obs]) float64 { return s.Value.weight },
//	    Transition: func(l, r *viterbi.State[obs]) float64 { return 1 },
//	})
//	vs.PushState(0, obs{"A", 1})
//	vs.PushState(1, obs{"C", 1})
//	winner := vs.SearchWinner(1)
//	for it := vs.SearchPath(1); it.Valid(); it.Next() {
//	    // it.Time() descends t, t-1, …, 0; it.State() may be nil across a gap
//	}
//
// Errors
//
//	Unreachable targets, missing columns and an empty trellis are data, not
//	errors: SearchWinner returns InvalidStateID. Contract violations panic
//	with a package sentinel error:
//	  - ErrNilCostHook         constructing an engine without both hooks
//	  - ErrColumnOrder         pushing a state into a non-open column
//	  - ErrOptimalityViolated  scanning the same StateID twice (sparse)
//	  - ErrFutureTime          a winner gap in the sparse column ordering
//	  - ErrStateNotInColumn, ErrNotScanned, ErrNoSuccessorColumn
//	    internal structure checks of the sparse engine
package viterbi
