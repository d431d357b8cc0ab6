package game

import "hash/fnv"

// GameState is the full game position: stack contents per square, remaining
// supplies, and the side to move. The Codec is static and shared; everything
// else is value state. Transitions never mutate a GameState in place.
type GameState struct {
	Codec     *Codec  // Shared read-only action codec for this board size
	Stacks    []Stack // Row-major n*n squares, each bottom-to-top
	Flats     [2]int  // Remaining flat/standing supply, indexed by Side-1
	Capstones [2]int  // Remaining capstone supply, indexed by Side-1
	ToMove    Side    // Side whose turn it is
	Placed    int     // Total placements so far, for the opening rule
}

// NewGameState returns the initial position: empty board, full standard
// allotments, first player to move.
func NewGameState(codec *Codec) *GameState {
	n := codec.Size()
	a := AllotmentFor(n)
	return &GameState{
		Codec:     codec,
		Stacks:    make([]Stack, n*n),
		Flats:     [2]int{a.Flats, a.Flats},
		Capstones: [2]int{a.Capstones, a.Capstones},
		ToMove:    First,
	}
}

// Size returns the board dimension n.
func (gs *GameState) Size() int { return gs.Codec.Size() }

// At returns the stack at (row, col).
func (gs *GameState) At(row, col int) Stack {
	return gs.Stacks[row*gs.Size()+col]
}

// Height returns the stack height at (row, col).
func (gs *GameState) Height(row, col int) int {
	return len(gs.At(row, col))
}

// Copy returns a deep copy sharing only the immutable Codec.
func (gs *GameState) Copy() *GameState {
	stacks := make([]Stack, len(gs.Stacks))
	for i, s := range gs.Stacks {
		if len(s) > 0 {
			stacks[i] = append(Stack(nil), s...)
		}
	}
	return &GameState{
		Codec:     gs.Codec,
		Stacks:    stacks,
		Flats:     gs.Flats,
		Capstones: gs.Capstones,
		ToMove:    gs.ToMove,
		Placed:    gs.Placed,
	}
}

// Player returns the identifier of the side to move.
func (gs *GameState) Player() string {
	return gs.ToMove.String()
}

// opening reports whether the next placement falls under the opening rule:
// the first two placements put down the opponent's flat.
func (gs *GameState) opening() bool {
	return gs.Placed < 2
}

// placer returns the side whose piece (and supply) the next placement uses.
func (gs *GameState) placer() Side {
	if gs.opening() {
		return gs.ToMove.Other()
	}
	return gs.ToMove
}

// Play applies a move and returns the successor state. The move must come
// from LegalMoves; an illegal move is a programming error and panics.
func (gs *GameState) Play(m Move) State {
	next, err := gs.Apply(m)
	if err != nil {
		panic(err)
	}
	return next
}

// Hash returns a 64-bit transposition fingerprint of the full position.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()
	h.Write(gs.Key())
	return StateHash(h.Sum64())
}
