package game

import "fmt"

// LegalMoves enumerates every legal move for the side to move. It returns
// nil once the game is decided, which is how search drivers detect terminal
// states. LegalMoves is the sole source of truth for what Play accepts.
func (gs *GameState) LegalMoves() []Move {
	if gs.decided() {
		return nil
	}
	n := gs.Size()
	var moves []Move

	// Placements. During the opening plies only flats may be placed, and the
	// piece comes out of the opponent's supply.
	kinds := []Kind{Flat, Standing, Capstone}
	if gs.opening() {
		kinds = kinds[:1]
	}
	placer := gs.placer()
	for _, kind := range kinds {
		if !gs.hasSupply(placer, kind) {
			continue
		}
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if gs.Height(row, col) == 0 {
					moves = append(moves, Placement{Kind: kind, Row: row, Col: col})
				}
			}
		}
	}
	if gs.opening() {
		return moves
	}

	// Slides. Only stacks topped by the mover's piece can move.
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			stack := gs.At(row, col)
			top, ok := stack.Top()
			if !ok || top.Side != gs.ToMove {
				continue
			}
			maxPickup := len(stack)
			if maxPickup > n {
				maxPickup = n
			}
			for _, p := range gs.Codec.Patterns() {
				if p.Pickup > maxPickup {
					continue
				}
				for dir := Up; dir <= Right; dir++ {
					s := Slide{Row: row, Col: col, Dir: dir, Pickup: p.Pickup, Drops: p.Drops}
					if gs.validateSlide(s) == nil {
						moves = append(moves, s)
					}
				}
			}
		}
	}
	return moves
}

func (gs *GameState) hasSupply(side Side, kind Kind) bool {
	if kind == Capstone {
		return gs.Capstones[side-1] > 0
	}
	return gs.Flats[side-1] > 0
}

// Apply executes a move and returns the successor state with the turn
// flipped. An illegal move yields an error and leaves gs untouched; no
// partial mutation ever leaks.
func (gs *GameState) Apply(m Move) (*GameState, error) {
	if gs.decided() {
		return nil, fmt.Errorf("apply: game is already decided")
	}
	switch mv := m.(type) {
	case Placement:
		return gs.applyPlacement(mv)
	case Slide:
		return gs.applySlide(mv)
	}
	return nil, fmt.Errorf("apply: unknown move type %T", m)
}

func (gs *GameState) applyPlacement(m Placement) (*GameState, error) {
	n := gs.Size()
	if m.Row < 0 || m.Row >= n || m.Col < 0 || m.Col >= n {
		return nil, fmt.Errorf("place: square (%d,%d) outside %dx%d board", m.Row, m.Col, n, n)
	}
	if gs.Height(m.Row, m.Col) != 0 {
		return nil, fmt.Errorf("place: square (%d,%d) is occupied", m.Row, m.Col)
	}
	if gs.opening() && m.Kind != Flat {
		return nil, fmt.Errorf("place: opening placements must be flats, got %s", m.Kind)
	}
	placer := gs.placer()
	if !gs.hasSupply(placer, m.Kind) {
		return nil, fmt.Errorf("place: %s has no %s supply left", placer, m.Kind)
	}

	next := gs.Copy()
	idx := m.Row*n + m.Col
	next.Stacks[idx] = append(next.Stacks[idx], Piece{Side: placer, Kind: m.Kind})
	if m.Kind == Capstone {
		next.Capstones[placer-1]--
	} else {
		next.Flats[placer-1]--
	}
	next.Placed++
	next.ToMove = gs.ToMove.Other()
	return next, nil
}

// validateSlide checks every rule a slide must satisfy: pickup bounds, top
// ownership, staying on the board, blocking by standing stones and
// capstones, the capstone-flattening exception on the final drop, and the
// stack height cap.
func (gs *GameState) validateSlide(m Slide) error {
	n := gs.Size()
	if m.Row < 0 || m.Row >= n || m.Col < 0 || m.Col >= n {
		return fmt.Errorf("slide: square (%d,%d) outside %dx%d board", m.Row, m.Col, n, n)
	}
	if m.Dir > Right {
		return fmt.Errorf("slide: unknown direction %d", m.Dir)
	}
	if m.Pickup < 1 || m.Pickup > n {
		return fmt.Errorf("slide: pickup %d outside 1..%d", m.Pickup, n)
	}
	if len(m.Drops) == 0 || len(m.Drops) > n {
		return fmt.Errorf("slide: drop pattern %v has bad length", m.Drops)
	}
	sum := 0
	for _, d := range m.Drops {
		if d < 1 {
			return fmt.Errorf("slide: drop pattern %v has non-positive drop", m.Drops)
		}
		sum += d
	}
	if sum != m.Pickup {
		return fmt.Errorf("slide: drops %v sum to %d, pickup is %d", m.Drops, sum, m.Pickup)
	}

	stack := gs.At(m.Row, m.Col)
	if len(stack) < m.Pickup {
		return fmt.Errorf("slide: stack height %d at (%d,%d) below pickup %d", len(stack), m.Row, m.Col, m.Pickup)
	}
	top, _ := stack.Top()
	if top.Side != gs.ToMove {
		return fmt.Errorf("slide: %s does not own the top of (%d,%d)", gs.ToMove, m.Row, m.Col)
	}

	carried := stack[len(stack)-m.Pickup:]
	lastCarried := carried[len(carried)-1]
	dr, dc := m.Dir.Offsets()
	row, col := m.Row, m.Col
	for i, drop := range m.Drops {
		row += dr
		col += dc
		if row < 0 || row >= n || col < 0 || col >= n {
			return fmt.Errorf("slide: path leaves the board at (%d,%d)", row, col)
		}
		target := gs.At(row, col)
		if tp, ok := target.Top(); ok {
			final := i == len(m.Drops)-1
			switch tp.Kind {
			case Capstone:
				return fmt.Errorf("slide: (%d,%d) is capped", row, col)
			case Standing:
				// Only a capstone arriving as the very last dropped piece may
				// land on a wall, flattening it.
				if !final || lastCarried.Kind != Capstone {
					return fmt.Errorf("slide: (%d,%d) is blocked by a standing stone", row, col)
				}
			}
		}
		if len(target)+drop > n {
			return fmt.Errorf("slide: dropping %d at (%d,%d) exceeds max height %d", drop, row, col, n)
		}
	}
	return nil
}

func (gs *GameState) applySlide(m Slide) (*GameState, error) {
	if err := gs.validateSlide(m); err != nil {
		return nil, err
	}
	n := gs.Size()
	next := gs.Copy()

	src := m.Row*n + m.Col
	stack := next.Stacks[src]
	carried := append(Stack(nil), stack[len(stack)-m.Pickup:]...)
	if rest := stack[:len(stack)-m.Pickup]; len(rest) > 0 {
		next.Stacks[src] = rest
	} else {
		next.Stacks[src] = nil
	}

	dr, dc := m.Dir.Offsets()
	row, col := m.Row, m.Col
	dropped := 0
	for i, drop := range m.Drops {
		row += dr
		col += dc
		idx := row*n + col
		target := next.Stacks[idx]
		if i == len(m.Drops)-1 {
			if tp, ok := target.Top(); ok && tp.Kind == Standing {
				// Capstone flattens the wall; ownership is unchanged and the
				// flattened piece stays captured under the dropped stack.
				target[len(target)-1].Kind = Flat
			}
		}
		next.Stacks[idx] = append(target, carried[dropped:dropped+drop]...)
		dropped += drop
	}

	next.ToMove = gs.ToMove.Other()
	return next, nil
}
