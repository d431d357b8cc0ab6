package game

// EvaluateFlats tallies each side's flat-topped squares to produce a score
// between -1 and 1 from the perspective of the side to move. This is the
// flat-count tiebreak as a heuristic: it says nothing about road threats.
func EvaluateFlats(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return normalize(float64(gs.flatCount(gs.ToMove)), float64(gs.flatCount(gs.ToMove.Other())))
}

// EvaluateRoadReach scores how far each side's best connected group spans
// toward completing a road, in addition to flat counts.
func EvaluateRoadReach(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	flatScore := normalize(float64(gs.flatCount(gs.ToMove)), float64(gs.flatCount(gs.ToMove.Other())))
	reachScore := normalize(gs.roadReach(gs.ToMove), gs.roadReach(gs.ToMove.Other()))
	return (flatScore + reachScore) / 2
}

// roadReach returns the widest edge-to-edge span (in rows or columns, on an
// n scale) covered by one 4-connected group of the side's road pieces.
func (gs *GameState) roadReach(side Side) float64 {
	n := gs.Size()
	visited := make([]bool, n*n)
	best := 0
	for start := range gs.Stacks {
		if visited[start] {
			continue
		}
		top, ok := gs.Stacks[start].Top()
		if !ok || top.Side != side || !top.roadPiece() {
			continue
		}
		minR, maxR := start/n, start/n
		minC, maxC := start%n, start%n
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			row, col := cur/n, cur%n
			minR, maxR = min(minR, row), max(maxR, row)
			minC, maxC = min(minC, col), max(maxC, col)
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := row+d[0], col+d[1]
				if nr < 0 || nr >= n || nc < 0 || nc >= n || visited[nr*n+nc] {
					continue
				}
				t, ok := gs.At(nr, nc).Top()
				if ok && t.Side == side && t.roadPiece() {
					visited[nr*n+nc] = true
					queue = append(queue, nr*n+nc)
				}
			}
		}
		span := max(maxR-minR+1, maxC-minC+1)
		best = max(best, span)
	}
	return float64(best) / float64(n)
}

// normalize converts two tallies into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
