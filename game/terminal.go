package game

// Result is the game outcome from one side's perspective.
type Result int

const (
	Ongoing Result = iota
	Win
	Loss
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// Result reports the outcome from the given perspective. The perspective's
// own road is tested before the opponent's, so when a single move completes
// roads for both sides the mover who just played is credited.
func (gs *GameState) Result(perspective Side) Result {
	if gs.hasRoad(perspective) {
		return Win
	}
	if gs.hasRoad(perspective.Other()) {
		return Loss
	}
	if !gs.boardFull() {
		return Ongoing
	}
	mine := gs.flatCount(perspective)
	theirs := gs.flatCount(perspective.Other())
	switch {
	case mine > theirs:
		return Win
	case mine < theirs:
		return Loss
	}
	return Draw
}

// DrawnGame is the Winner value of a drawn full board.
const DrawnGame = "Draw"

// Winner returns "" while the game is ongoing, DrawnGame on a drawn full
// board, and otherwise the winning side's player string. The side that just
// moved is credited when both sides have a road.
func (gs *GameState) Winner() string {
	mover := gs.ToMove.Other()
	switch gs.Result(mover) {
	case Win:
		return mover.String()
	case Loss:
		return mover.Other().String()
	case Draw:
		return DrawnGame
	}
	return ""
}

func (gs *GameState) decided() bool {
	return gs.Result(gs.ToMove) != Ongoing
}

// hasRoad reports whether side owns an edge-to-edge 4-connected path of
// flats and capstones along either axis.
func (gs *GameState) hasRoad(side Side) bool {
	n := gs.Size()
	tops := func(row, col int) bool {
		top, ok := gs.At(row, col).Top()
		return ok && top.Side == side && top.roadPiece()
	}

	// BFS seeded from every road square on the low edge of the axis; a road
	// need not pass through a corner.
	search := func(seedRow bool) bool {
		visited := make([]bool, n*n)
		var queue []int
		for i := 0; i < n; i++ {
			row, col := 0, i
			if !seedRow {
				row, col = i, 0
			}
			if tops(row, col) {
				visited[row*n+col] = true
				queue = append(queue, row*n+col)
			}
		}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			row, col := cur/n, cur%n
			if (seedRow && row == n-1) || (!seedRow && col == n-1) {
				return true
			}
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nr, nc := row+d[0], col+d[1]
				if nr < 0 || nr >= n || nc < 0 || nc >= n || visited[nr*n+nc] {
					continue
				}
				if tops(nr, nc) {
					visited[nr*n+nc] = true
					queue = append(queue, nr*n+nc)
				}
			}
		}
		return false
	}
	return search(true) || search(false)
}

func (gs *GameState) boardFull() bool {
	for _, s := range gs.Stacks {
		if len(s) == 0 {
			return false
		}
	}
	return true
}

// flatCount tallies squares topped by the side's flats or capstones.
func (gs *GameState) flatCount(side Side) int {
	count := 0
	for _, s := range gs.Stacks {
		if top, ok := s.Top(); ok && top.Side == side && top.roadPiece() {
			count++
		}
	}
	return count
}
