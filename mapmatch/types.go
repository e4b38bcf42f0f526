// Package mapmatch defines the road-network types, matcher options, and
// sentinel errors.
package mapmatch

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by the map matcher.
var (
	// ErrNilNetwork indicates a Matcher was constructed without a road
	// network.
	ErrNilNetwork = errors.New("mapmatch: road network is nil")

	// ErrNonPositiveOption indicates an option value that must be
	// positive was zero or negative.
	ErrNonPositiveOption = errors.New("mapmatch: options must be positive")

	// ErrNoObservations indicates Match was called with an empty track.
	ErrNoObservations = errors.New("mapmatch: no observations to match")

	// ErrEmptyGeometry indicates a segment carries fewer than two
	// geometry points.
	ErrEmptyGeometry = errors.New("mapmatch: segment geometry needs at least two points")

	// ErrDuplicateSegment indicates a segment id was added twice.
	ErrDuplicateSegment = errors.New("mapmatch: segment id already present")
)

// Segment is one road segment of the network: a polyline in WGS84
// lon/lat with a junction node id at each end. Segments sharing a
// junction id are routable across it, in both directions.
type Segment struct {
	ID       int64
	From, To int64
	Geometry orb.LineString
}

// Candidate is a segment within reach of an observation, snapped to its
// closest geometry point.
type Candidate struct {
	Segment *Segment

	// Snap is the closest point of the segment geometry.
	Snap orb.Point

	// Distance is the great-circle distance from the observation to Snap
	// in meters.
	Distance float64
}

// Options configures the hidden Markov model.
//
//   - SigmaZ           — GPS measurement noise in meters; scales the
//     emission cost. Typical value 4.07.
//   - Beta             — tolerated detour in meters; scales the
//     transition cost. Typical value 3.0.
//   - MaxCandidateDist — candidate search radius in meters around each
//     observation.
//   - MaxRouteDistance — cap on the route search between consecutive
//     candidates; pairs farther apart on the network are treated as
//     unconnected.
//
// All four must be positive.
type Options struct {
	SigmaZ           float64
	Beta             float64
	MaxCandidateDist float64
	MaxRouteDistance float64
}

// DefaultOptions returns the conventional HMM map-matching parameters.
func DefaultOptions() Options {
	return Options{
		SigmaZ:           4.07,
		Beta:             3.0,
		MaxCandidateDist: 35.0,
		MaxRouteDistance: 2000.0,
	}
}

// validate checks every option is positive.
func (o Options) validate() error {
	if o.SigmaZ <= 0 || o.Beta <= 0 || o.MaxCandidateDist <= 0 || o.MaxRouteDistance <= 0 {
		return ErrNonPositiveOption
	}

	return nil
}

// Match is one observation resolved onto the network.
type Match struct {
	// Observation indexes the input track.
	Observation int

	// SegmentID is the matched road segment.
	SegmentID int64

	// Point is the snapped position on the segment.
	Point orb.Point

	// Distance is the snap distance in meters.
	Distance float64

	// NewLeg marks a match with no routable connection to the previous
	// one: the matched route restarts here.
	NewLeg bool
}

// Result is the outcome of matching a track.
type Result struct {
	// Matches holds one entry per matched observation, in track order.
	Matches []Match

	// Skipped lists the observation indices with no candidate within
	// MaxCandidateDist; they occupy no trellis column.
	Skipped []int
}
