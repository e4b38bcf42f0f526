// Package mapmatch matches a sequence of GPS observations onto a road
// network with a hidden Markov model decoded by the sparse Viterbi engine.
//
// What
//
//   - A RoadNetwork holds road segments with WGS84 geometry, indexed
//     spatially by an R-tree for candidate lookup and joined into a
//     junction graph for route distances.
//   - For every observation, the candidates are the segments within
//     MaxCandidateDist meters, each snapped to its closest geometry point.
//   - Candidates form one trellis column per observation. Costs follow the
//     classic HMM map-matching formulation:
//   - emission:   d² / (2·σz²), d the snap distance — GPS noise
//   - transition: |route − greatcircle| / β — detour implausibility,
//     invalid when no route connects the two candidates within
//     MaxRouteDistance
//   - The sparse engine picks the jointly most plausible candidate chain;
//     the backward path iterator reads it out. Where no route connects two
//     consecutive columns the chain restarts and the match is flagged as a
//     new leg.
//
// Why
//
//	Raw GPS tracks wobble off the road they were driven on. Snapping each
//	point independently picks the nearest segment; map matching picks the
//	nearest *consistent* sequence of segments, which survives parallel
//	roads, junctions and noisy fixes.
//
// Complexity (n observations, k candidates each, V junctions, E arcs)
//
//   - Candidate lookup: O(log |segments| + k) per observation
//   - Each transition runs a bounded Dijkstra: O((V + E) log V) worst
//     case, cut off at MaxRouteDistance
//   - Decoding: the sparse engine's O(n·k² log) over the surviving labels
//
// Usage
//
//	rn := mapmatch.NewRoadNetwork()
//	_ = rn.AddSegment(mapmatch.Segment{ID: 1, From: 10, To: 11, Geometry: ls})
//
//	m, err := mapmatch.NewMatcher(rn, mapmatch.DefaultOptions())
//	if err != nil { ... }
//	res, err := m.Match(track)
//	for _, match := range res.Matches {
//	    // match.SegmentID, match.Point (snapped), match.NewLeg
//	}
//
// Errors
//
//   - ErrNilNetwork        Matcher constructed without a network
//   - ErrNonPositiveOption an option ≤ 0
//   - ErrNoObservations    Match called with an empty track
//   - ErrEmptyGeometry     segment with fewer than two geometry points
//   - ErrDuplicateSegment  segment id added twice
package mapmatch
