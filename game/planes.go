package game

// Planes encodes the position as (n+4) planes of n×n cells for an external
// evaluator. Planes 0..n-1 hold the piece code at each height level; the
// last four are broadcast-filled with the remaining supplies: first side's
// flats (normalized by the starting allotment) and capstones, then the
// second side's. Callers feeding a player-relative consumer should encode
// CanonicalView().
func (gs *GameState) Planes() [][][]float32 {
	n := gs.Size()
	a := AllotmentFor(n)
	planes := make([][][]float32, n+4)
	for p := range planes {
		planes[p] = make([][]float32, n)
		for r := range planes[p] {
			planes[p][r] = make([]float32, n)
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			for h, piece := range gs.At(row, col) {
				planes[h][row][col] = float32(piece.code())
			}
		}
	}

	fill := func(p int, v float32) {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				planes[p][r][c] = v
			}
		}
	}
	fill(n, float32(gs.Flats[0])/float32(a.Flats))
	fill(n+1, float32(gs.Capstones[0]))
	fill(n+2, float32(gs.Flats[1])/float32(a.Flats))
	fill(n+3, float32(gs.Capstones[1]))
	return planes
}
