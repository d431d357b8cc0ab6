package game

// CanonicalView returns a fresh state in which the side to move always plays
// the role of the first side: when the second side is to move, piece
// ownership and supply counters are swapped. The result never aliases the
// receiver, so search branches may canonicalize the same state repeatedly.
func (gs *GameState) CanonicalView() *GameState {
	view := gs.Copy()
	if gs.ToMove != Second {
		return view
	}
	for _, stack := range view.Stacks {
		for i := range stack {
			stack[i].Side = stack[i].Side.Other()
		}
	}
	view.Flats[0], view.Flats[1] = view.Flats[1], view.Flats[0]
	view.Capstones[0], view.Capstones[1] = view.Capstones[1], view.Capstones[0]
	view.ToMove = First
	return view
}

// Key returns a fixed-format byte fingerprint of the position: board size,
// side to move, both supplies, then n*n*n stack cells (piece codes, zero
// padded above each stack). States that differ in any stack, supply, or the
// side to move produce different keys.
func (gs *GameState) Key() []byte {
	n := gs.Size()
	key := make([]byte, 0, 6+n*n*n)
	key = append(key,
		byte(n),
		byte(gs.ToMove),
		byte(gs.Flats[0]), byte(gs.Capstones[0]),
		byte(gs.Flats[1]), byte(gs.Capstones[1]),
	)
	for _, stack := range gs.Stacks {
		for _, p := range stack {
			key = append(key, p.code())
		}
		for h := len(stack); h < n; h++ {
			key = append(key, 0)
		}
	}
	return key
}
