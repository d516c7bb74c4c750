package core

import "github.com/zyedidia/generic/mapset"

// FillBeginTile fills the source. Calls after the first are no-ops.
func (m *Map) FillBeginTile() {
	if m.started {
		return
	}
	m.Source().fill()
	m.started = true
	m.frontier = mapset.New[Coordinate]()
	m.frontier.Put(m.source)
}

// FillTiles advances the water until it has travelled distance tiles past the
// source. Each unit of distance not yet applied moves the flow one tile out of
// every tile filled by the previous step. Calling it again with a distance
// already reached changes nothing.
//
// Water leaving a tile in direction d enters the neighbour only if that
// neighbour holds an unfilled pipe open towards -d, or is the sink pointing
// towards -d.
func (m *Map) FillTiles(distance int) {
	if !m.started {
		return
	}
	for m.applied < distance {
		m.expand()
		m.applied++
	}
}

// expand runs one propagation step and reports whether any tile was filled.
func (m *Map) expand() bool {
	next := mapset.New[Coordinate]()
	m.frontier.Each(func(c Coordinate) {
		for _, d := range m.outlets(c) {
			n := c.Step(d)
			if m.accepts(n, d) {
				m.fillAt(n)
				next.Put(n)
			}
		}
	})
	m.frontier = next
	return next.Size() > 0
}

// outlets lists the directions water leaves tile c in.
func (m *Map) outlets(c Coordinate) []Direction {
	switch v := m.At(c).(type) {
	case *TerminationCell:
		if v.kind == KindSource {
			return []Direction{v.pointingTo}
		}
	case *FillableCell:
		if v.pipe != nil {
			return v.pipe.shape.Openings()
		}
	}
	return nil
}

// accepts reports whether unfilled tile n takes water arriving while moving in d.
func (m *Map) accepts(n Coordinate, d Direction) bool {
	from := d.Opposite()
	switch v := m.At(n).(type) {
	case *FillableCell:
		return v.pipe != nil && !v.pipe.filled && v.pipe.HasOpening(from)
	case *TerminationCell:
		return v.kind == KindSink && !v.filled && v.pointingTo == from
	}
	return false
}

func (m *Map) fillAt(c Coordinate) {
	switch v := m.At(c).(type) {
	case *FillableCell:
		v.pipe.fill()
	case *TerminationCell:
		v.fill()
	}
}

// CheckPath reports whether water has reached the sink.
func (m *Map) CheckPath() bool {
	return m.Sink().filled
}

// HasLost reports whether the flow has moved at least one tile past the
// source, the sink is still dry, and the latest step filled nothing.
func (m *Map) HasLost() bool {
	return m.started && m.applied > 0 && !m.CheckPath() && m.frontier.Size() == 0
}

// FillAll fills every pipe connected to the source. The sink and the flow
// frontier are left untouched so the outcome of the game cannot change.
func (m *Map) FillAll() {
	if !m.started {
		return
	}

	visited := mapset.New[Coordinate]()
	queue := []Coordinate{m.source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, d := range m.outlets(current) {
			n := current.Step(d)
			if visited.Has(n) {
				continue
			}
			cell, ok := m.At(n).(*FillableCell)
			if !ok || cell.pipe == nil || !cell.pipe.HasOpening(d.Opposite()) {
				continue
			}
			cell.pipe.fill()
			queue = append(queue, n)
		}
	}
}
