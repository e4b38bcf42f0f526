package mapmatch

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"
)

// RoadNetwork owns the segments of the drivable network. Segments are
// indexed spatially for candidate lookup and joined into an undirected
// junction graph for route distances.
type RoadNetwork struct {
	segments  map[int64]*Segment
	index     rtree.RTreeG[*Segment]
	adjacency map[int64][]arc
}

// arc is one traversal of a segment between its two junctions.
type arc struct {
	to     int64
	length float64
}

// NewRoadNetwork returns an empty network.
func NewRoadNetwork() *RoadNetwork {
	return &RoadNetwork{
		segments:  make(map[int64]*Segment),
		adjacency: make(map[int64][]arc),
	}
}

// AddSegment registers seg, indexes its bounding box, and connects its
// junctions in both directions. The segment id must be fresh and the
// geometry must hold at least two points.
func (rn *RoadNetwork) AddSegment(seg Segment) error {
	if len(seg.Geometry) < 2 {
		return fmt.Errorf("%w: segment %d", ErrEmptyGeometry, seg.ID)
	}
	if _, dup := rn.segments[seg.ID]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateSegment, seg.ID)
	}

	s := &seg
	rn.segments[seg.ID] = s

	b := seg.Geometry.Bound()
	rn.index.Insert([2]float64{b.Min[0], b.Min[1]}, [2]float64{b.Max[0], b.Max[1]}, s)

	length := lineLength(seg.Geometry)
	rn.adjacency[seg.From] = append(rn.adjacency[seg.From], arc{to: seg.To, length: length})
	rn.adjacency[seg.To] = append(rn.adjacency[seg.To], arc{to: seg.From, length: length})

	return nil
}

// Segment returns the segment with the given id, or nil.
func (rn *RoadNetwork) Segment(id int64) *Segment { return rn.segments[id] }

// Len returns the number of registered segments.
func (rn *RoadNetwork) Len() int { return len(rn.segments) }

// Nearby returns the candidates within radius meters of p, each snapped
// to its segment, ordered by snap distance (segment id breaking ties) so
// candidate columns are deterministic.
func (rn *RoadNetwork) Nearby(p orb.Point, radius float64) []Candidate {
	b := geo.NewBoundAroundPoint(p, radius)

	var out []Candidate
	rn.index.Search(
		[2]float64{b.Min[0], b.Min[1]},
		[2]float64{b.Max[0], b.Max[1]},
		func(min, max [2]float64, seg *Segment) bool {
			snap, dist := nearestOnLine(seg.Geometry, p)
			if dist <= radius {
				out = append(out, Candidate{Segment: seg, Snap: snap, Distance: dist})
			}

			return true
		},
	)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Segment.ID < out[j].Segment.ID
	})

	return out
}

// routeDistance estimates the network distance in meters between two
// candidate snap points, or -1 when no route exists within maxDist.
// Same-segment pairs take the great-circle distance between their two snap
// points (not the length along a curved polyline); otherwise the route runs
// snap → own junction → Dijkstra over the junction graph → other snap.
func (rn *RoadNetwork) routeDistance(from, to Candidate, maxDist float64) float64 {
	if from.Segment.ID == to.Segment.ID {
		d := geo.Distance(from.Snap, to.Snap)
		if d > maxDist {
			return -1
		}

		return d
	}

	dist := rn.junctionDistances(from.seeds(), maxDist)

	best := -1.0
	for _, seed := range to.seeds() {
		reached, ok := dist[seed.node]
		if !ok {
			continue
		}
		if total := reached + seed.cost; best < 0 || total < best {
			best = total
		}
	}
	if best > maxDist {
		return -1
	}

	return best
}

// seed is a junction with the cost of reaching it from a snap point.
type seed struct {
	node int64
	cost float64
}

// seeds returns the candidate's two junctions with the great-circle cost
// from the snap point to each segment end.
func (c Candidate) seeds() [2]seed {
	g := c.Segment.Geometry

	return [2]seed{
		{node: c.Segment.From, cost: geo.Distance(c.Snap, g[0])},
		{node: c.Segment.To, cost: geo.Distance(c.Snap, g[len(g)-1])},
	}
}

// junctionDistances runs a multi-source Dijkstra over the junction graph,
// returning the minimum distance from any seed to every junction within
// maxDist. Lazy decrease-key: duplicates stay in the heap and are skipped
// once their junction is finalized.
func (rn *RoadNetwork) junctionDistances(seeds [2]seed, maxDist float64) map[int64]float64 {
	dist := make(map[int64]float64, len(rn.adjacency))
	visited := make(map[int64]bool, len(rn.adjacency))

	pq := make(nodePQ, 0, len(seeds))
	heap.Init(&pq)
	for _, s := range seeds {
		if s.cost > maxDist {
			continue
		}
		if d, ok := dist[s.node]; !ok || s.cost < d {
			dist[s.node] = s.cost
			heap.Push(&pq, &nodeItem{id: s.node, dist: s.cost})
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		if item.dist > maxDist {
			break
		}
		visited[u] = true

		for _, a := range rn.adjacency[u] {
			next := dist[u] + a.length
			if next > maxDist {
				continue
			}
			if d, ok := dist[a.to]; ok && next >= d {
				continue
			}
			dist[a.to] = next
			heap.Push(&pq, &nodeItem{id: a.to, dist: next})
		}
	}

	return dist
}

// nodeItem pairs a junction with its tentative distance for the heap.
type nodeItem struct {
	id   int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// lineLength sums the great-circle lengths of a polyline's chords.
func lineLength(ls orb.LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += geo.Distance(ls[i-1], ls[i])
	}

	return total
}

// nearestOnLine snaps p onto the closest chord of ls and returns the
// snapped point with its great-circle distance to p. Projection runs in a
// local equirectangular frame, accurate at chord scale.
func nearestOnLine(ls orb.LineString, p orb.Point) (orb.Point, float64) {
	bestDist := math.Inf(1)
	best := ls[0]
	for i := 1; i < len(ls); i++ {
		snap := projectOnChord(ls[i-1], ls[i], p)
		if d := geo.Distance(p, snap); d < bestDist {
			bestDist = d
			best = snap
		}
	}

	return best, bestDist
}

// projectOnChord projects p onto the chord a—b, clamped to the endpoints.
func projectOnChord(a, b, p orb.Point) orb.Point {
	cosLat := math.Cos(a[1] * math.Pi / 180)

	ax, ay := a[0]*cosLat, a[1]
	bx, by := b[0]*cosLat, b[1]
	px, py := p[0]*cosLat, p[1]

	dx, dy := bx-ax, by-ay
	if dx == 0 && dy == 0 {
		return a
	}

	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return orb.Point{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}
