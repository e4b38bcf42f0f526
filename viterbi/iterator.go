package viterbi

// Engine is the query surface shared by the naive and sparse search
// variants. Both *Naive[V] and *Sparse[V] satisfy it; the path iterator
// works through this interface and nothing else.
type Engine[V any] interface {
	// SearchWinner extends the search to time t if needed and returns the
	// winning state's id, or InvalidStateID when t is out of range or no
	// path reaches it.
	SearchWinner(t Time) StateID

	// Predecessor returns the id of the state preceding id on its best
	// path, or InvalidStateID when there is none.
	Predecessor(id StateID) StateID

	// State returns the state with the given id, or nil when id is
	// InvalidStateID or out of range.
	State(id StateID) *State[V]

	// AccumulatedCost returns the cost accumulated along the best path
	// ending at id, or the engine's invalid-cost sentinel when unknown.
	AccumulatedCost(id StateID) float64
}

// PathIterator walks a winning path backwards in time: it starts at the
// winner of some time t and each Next moves to the predecessor at t-1.
// When the predecessor link is absent but time remains — the search
// bridged a breakage — the cursor steps sideways to the winner of the
// previous time, so a path stays defined across disconnected columns.
//
// The iterator borrows from the engine; Clear or further PushState calls
// on the engine invalidate it.
type PathIterator[V any] struct {
	engine Engine[V]
	id     StateID
	time   Time
}

// SearchPath positions a cursor on the winner at time t of engine e. The
// cursor starts invalid when no winner exists at t.
func SearchPath[V any](e Engine[V], t Time) *PathIterator[V] {
	return &PathIterator[V]{engine: e, id: e.SearchWinner(t), time: t}
}

// PathEnd returns the canonical past-the-end cursor of engine e: both the
// id and the time sit at their sentinels.
func PathEnd[V any](e Engine[V]) *PathIterator[V] {
	return &PathIterator[V]{engine: e, id: InvalidStateID, time: InvalidTime}
}

// Valid reports whether the cursor still points into the path. A cursor
// may be valid while ID() is InvalidStateID: that is a time with no
// winner, observable only across a breakage.
func (it *PathIterator[V]) Valid() bool {
	return it.id != InvalidStateID || it.time != InvalidTime
}

// ID returns the state id at the cursor, or InvalidStateID.
func (it *PathIterator[V]) ID() StateID { return it.id }

// Time returns the time index at the cursor, or InvalidTime past the end.
func (it *PathIterator[V]) Time() Time { return it.time }

// State dereferences the cursor, returning nil when no state is present.
// When non-nil, State().Time() == Time() holds.
func (it *PathIterator[V]) State() *State[V] {
	if it.id == InvalidStateID {
		return nil
	}

	return it.engine.State(it.id)
}

// Next moves one step back in time: to the predecessor of the current
// state, or — when the predecessor is absent but time remains — sideways
// to the winner of the previous time. Past time 0 the cursor becomes the
// canonical end; Next on the end cursor is a no-op.
func (it *PathIterator[V]) Next() {
	if !it.Valid() {
		return
	}
	if it.time == 0 {
		it.id = InvalidStateID
		it.time = InvalidTime

		return
	}

	it.id = it.engine.Predecessor(it.id)
	it.time--
	if it.id == InvalidStateID {
		it.id = it.engine.SearchWinner(it.time)
	}
}
