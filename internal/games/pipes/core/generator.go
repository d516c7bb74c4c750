package core

import "math/rand/v2"

// Generate builds a random playable map with a rows x cols interior inside a
// wall border. The source sits inside facing another interior tile when one
// exists; the sink sits on a non-corner border tile facing inwards, never
// right next to the source.
func Generate(rows, cols, delay int, rng *rand.Rand) Properties {
	rows, cols = max(rows, 1), max(cols, 1)
	e := NewEditor(rows+2, cols+2, delay)

	src := C(1+rng.IntN(rows), 1+rng.IntN(cols))
	var open []Direction
	for _, d := range Directions {
		n := src.Step(d)
		if !onBorder(n, rows+2, cols+2) {
			open = append(open, d)
		}
	}

	e.SetTile(TileTermination, src)
	if len(open) == 0 {
		// A single interior tile: the sink must be where the source points.
		e.SetTile(TileTermination, src.Step(DirUp))
		return e.Properties()
	}

	dir := open[rng.IntN(len(open))]
	for d := DirUp; d != dir; d = d.RotateCW() {
		e.ToggleSourceRotation()
	}

	var candidates []Coordinate
	for r := range rows + 2 {
		for c := range cols + 2 {
			coord := C(r, c)
			if !onBorder(coord, rows+2, cols+2) || onCorner(coord, rows+2, cols+2) {
				continue
			}
			inside := coord.Step(inwardDirection(coord, rows+2, cols+2))
			if inside == src {
				continue
			}
			candidates = append(candidates, coord)
		}
	}
	e.SetTile(TileTermination, candidates[rng.IntN(len(candidates))])
	return e.Properties()
}
