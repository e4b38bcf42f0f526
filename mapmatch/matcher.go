package mapmatch

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/trellis/viterbi"
)

// matchState is the trellis payload: one candidate of one observation.
type matchState struct {
	candidate   Candidate
	observation orb.Point
	index       int // observation index in the input track
}

// Matcher decodes GPS tracks against a road network. A Matcher is
// reusable; each Match call starts from a cleared trellis. Not safe for
// concurrent use.
type Matcher struct {
	network *RoadNetwork
	opts    Options
	engine  *viterbi.Sparse[matchState]
}

// NewMatcher returns a matcher over network with the given options.
// Returns ErrNilNetwork or ErrNonPositiveOption on invalid input.
func NewMatcher(network *RoadNetwork, opts Options) (*Matcher, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	m := &Matcher{network: network, opts: opts}
	m.engine = viterbi.NewSparse(viterbi.Costs[matchState]{
		Emission:   m.emissionCost,
		Transition: m.transitionCost,
	})

	return m, nil
}

// emissionCost scores how far a candidate strays from its observation:
// d²/(2σz²), never negative.
func (m *Matcher) emissionCost(s *viterbi.State[matchState]) float64 {
	d := s.Value.candidate.Distance

	return d * d / (2 * m.opts.SigmaZ * m.opts.SigmaZ)
}

// transitionCost scores how much the network route between two candidates
// detours from the straight line between their observations:
// |route − greatcircle|/β. Candidate pairs with no route within
// MaxRouteDistance return the negative invalid sentinel and prune the
// edge.
func (m *Matcher) transitionCost(l, r *viterbi.State[matchState]) float64 {
	route := m.network.routeDistance(l.Value.candidate, r.Value.candidate, m.opts.MaxRouteDistance)
	if route < 0 {
		return -1
	}
	gc := geo.Distance(l.Value.observation, r.Value.observation)

	return math.Abs(route-gc) / m.opts.Beta
}

// Match decodes observations into the most plausible candidate chain.
// Observations with no candidate in reach are reported in Result.Skipped
// and occupy no trellis column; a routing gap between two columns starts
// a new leg instead of failing the match. Returns ErrNoObservations for
// an empty track.
func (m *Matcher) Match(observations []orb.Point) (Result, error) {
	if len(observations) == 0 {
		return Result{}, ErrNoObservations
	}

	m.engine.Clear()

	var res Result
	next := viterbi.Time(0)
	for i, p := range observations {
		candidates := m.network.Nearby(p, m.opts.MaxCandidateDist)
		if len(candidates) == 0 {
			res.Skipped = append(res.Skipped, i)

			continue
		}
		for _, c := range candidates {
			m.engine.PushState(next, matchState{candidate: c, observation: p, index: i})
		}
		// Resolve each column as it arrives; later columns reuse this work.
		m.engine.SearchWinner(next)
		next++
	}
	if next == 0 {
		return res, nil
	}

	// Read the chain backwards from the last column, then reverse.
	matches := make([]Match, 0, int(next))
	for it := m.engine.SearchPath(next - 1); it.Valid(); it.Next() {
		s := it.State()
		if s == nil {
			continue
		}
		matches = append(matches, Match{
			Observation: s.Value.index,
			SegmentID:   s.Value.candidate.Segment.ID,
			Point:       s.Value.candidate.Snap,
			Distance:    s.Value.candidate.Distance,
			NewLeg:      it.Time() > 0 && m.engine.Predecessor(it.ID()) == viterbi.InvalidStateID,
		})
	}
	for l, r := 0, len(matches)-1; l < r; l, r = l+1, r-1 {
		matches[l], matches[r] = matches[r], matches[l]
	}
	res.Matches = matches

	return res, nil
}
