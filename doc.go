// Package trellis is a Viterbi search toolkit for trellis-structured
// optimization: pick one candidate state per time step so that the chain of
// emission and transition costs is optimal end to end.
//
// 🚀 What is trellis?
//
//	A small, focused library that brings together:
//		• viterbi  — the search core: a dense (naive) engine for signed costs
//		  with a maximize/minimize switch, and a sparse best-first engine for
//		  non-negative costs with incremental extension and pruning
//		• mapmatch — a reference hidden-Markov-model map matcher built on the
//		  sparse engine, with an R-tree candidate index and a road network
//		  route-distance oracle
//
// ✨ Why choose trellis?
//
//   - Caller-owned semantics – emission, transition and accumulation costs
//     are plain functions you supply; the engines never interpret your domain
//   - Incremental – feed columns as observations arrive; the sparse engine
//     resumes from its last winner instead of starting over
//   - Breakage-tolerant – when no edge connects two columns, the search
//     restarts and the path iterator bridges the gap through per-time winners
//   - Pure Go core – the viterbi package has zero third-party dependencies
//
// Quick ASCII example of a trellis with three columns:
//
//	t=0     t=1     t=2
//	 A ────▶ C ────▶ E
//	 B ────▶ D ────▶ F
//
// Exactly one state is chosen per column; edges exist only between
// consecutive columns.
//
// Dive into viterbi/doc.go and mapmatch/doc.go for full usage, complexity
// notes and error contracts.
//
//	go get github.com/katalvlaran/trellis
package trellis
