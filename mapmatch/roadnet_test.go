package mapmatch

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

// Coordinates sit at the equator, where one degree is ~111.32 km in both
// axes; deg converts meters to degrees there.
func deg(meters float64) float64 { return meters / 111319.49 }

// lShapedNetwork builds two segments joined at junction 11:
//
//	10 ──(1)── 11
//	            │
//	           (2)
//	            │
//	           12
func lShapedNetwork(t *testing.T) *RoadNetwork {
	t.Helper()
	rn := NewRoadNetwork()
	require.NoError(t, rn.AddSegment(Segment{
		ID: 1, From: 10, To: 11,
		Geometry: orb.LineString{{0, 0}, {deg(100), 0}},
	}))
	require.NoError(t, rn.AddSegment(Segment{
		ID: 2, From: 11, To: 12,
		Geometry: orb.LineString{{deg(100), 0}, {deg(100), deg(100)}},
	}))

	return rn
}

func TestRoadNetwork_AddSegmentValidation(t *testing.T) {
	rn := NewRoadNetwork()

	err := rn.AddSegment(Segment{ID: 1, Geometry: orb.LineString{{0, 0}}})
	require.ErrorIs(t, err, ErrEmptyGeometry)

	require.NoError(t, rn.AddSegment(Segment{
		ID: 1, From: 10, To: 11,
		Geometry: orb.LineString{{0, 0}, {deg(10), 0}},
	}))
	err = rn.AddSegment(Segment{
		ID: 1, From: 11, To: 12,
		Geometry: orb.LineString{{deg(10), 0}, {deg(20), 0}},
	})
	require.ErrorIs(t, err, ErrDuplicateSegment)
	require.Equal(t, 1, rn.Len())
}

func TestRoadNetwork_NearbySnapsAndFilters(t *testing.T) {
	rn := lShapedNetwork(t)

	// 10 m north of the middle of segment 1.
	obs := orb.Point{deg(50), deg(10)}
	cands := rn.Nearby(obs, 35)
	require.Len(t, cands, 1)
	require.Equal(t, int64(1), cands[0].Segment.ID)
	require.InDelta(t, 10, cands[0].Distance, 0.5)
	require.InDelta(t, deg(50), cands[0].Snap[0], deg(1))
	require.InDelta(t, 0.0, cands[0].Snap[1], deg(1))

	// Beyond the radius: nothing.
	require.Empty(t, rn.Nearby(orb.Point{deg(50), deg(50)}, 35))

	// Near the shared junction both segments answer, closest first.
	corner := rn.Nearby(orb.Point{deg(95), deg(3)}, 35)
	require.Len(t, corner, 2)
	require.LessOrEqual(t, corner[0].Distance, corner[1].Distance)
}

func TestRoadNetwork_RouteDistanceSameSegment(t *testing.T) {
	rn := lShapedNetwork(t)

	a := rn.Nearby(orb.Point{deg(20), deg(2)}, 35)[0]
	b := rn.Nearby(orb.Point{deg(80), deg(2)}, 35)[0]
	require.Equal(t, a.Segment.ID, b.Segment.ID)

	route := rn.routeDistance(a, b, 2000)
	require.InDelta(t, 60, route, 1.0)
}

func TestRoadNetwork_RouteDistanceAcrossJunction(t *testing.T) {
	rn := lShapedNetwork(t)

	a := rn.Nearby(orb.Point{deg(50), deg(2)}, 35)[0]  // middle of segment 1
	b := rn.Nearby(orb.Point{deg(98), deg(50)}, 35)[0] // middle of segment 2
	require.Equal(t, int64(1), a.Segment.ID)
	require.Equal(t, int64(2), b.Segment.ID)

	// snap→junction 11 (~50 m) plus junction 11→snap (~50 m).
	route := rn.routeDistance(a, b, 2000)
	require.InDelta(t, 100, route, 2.0)
}

func TestRoadNetwork_RouteDistanceUnreachable(t *testing.T) {
	rn := lShapedNetwork(t)
	// A disconnected island segment.
	require.NoError(t, rn.AddSegment(Segment{
		ID: 3, From: 20, To: 21,
		Geometry: orb.LineString{{deg(5000), 0}, {deg(5100), 0}},
	}))

	a := rn.Nearby(orb.Point{deg(50), 0}, 35)[0]
	c := rn.Nearby(orb.Point{deg(5050), 0}, 35)[0]
	require.Equal(t, int64(3), c.Segment.ID)

	require.Equal(t, -1.0, rn.routeDistance(a, c, 2000))

	// Connected but over the cap is unreachable too.
	b := rn.Nearby(orb.Point{deg(98), deg(50)}, 35)[0]
	require.Equal(t, -1.0, rn.routeDistance(a, b, 60))
}

func TestNearestOnLine_ClampsToEndpoints(t *testing.T) {
	ls := orb.LineString{{0, 0}, {deg(100), 0}}

	// Past the western end: snaps to the endpoint itself.
	snap, dist := nearestOnLine(ls, orb.Point{deg(-30), deg(4)})
	require.Equal(t, ls[0], snap)
	require.InDelta(t, 30.3, dist, 0.5)

	// On the line: zero distance.
	_, dist = nearestOnLine(ls, orb.Point{deg(42), 0})
	require.InDelta(t, 0, dist, 1e-6)
}
