package game

// Side identifies one of the two players. First is the side that moves first.
type Side uint8

const (
	NoSide Side = iota
	First
	Second
)

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case First:
		return "Player1"
	case Second:
		return "Player2"
	}
	return "None"
}

// Kind is the closed set of piece kinds.
type Kind uint8

const (
	Flat Kind = iota
	Standing
	Capstone
)

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case Standing:
		return "standing"
	case Capstone:
		return "capstone"
	}
	return "unknown"
}

// Piece is a single stone: who owns it and what kind it is.
type Piece struct {
	Side Side
	Kind Kind
}

// code maps a piece to the numeric cell value used by Key and Planes:
// 1/2 flat, 3/4 standing, 5/6 capstone, first/second respectively.
func (p Piece) code() uint8 {
	return uint8(p.Kind)*2 + uint8(p.Side)
}

// roadPiece reports whether the piece counts toward a road: flats and
// capstones do, standing stones do not.
func (p Piece) roadPiece() bool {
	return p.Kind != Standing
}

// Stack is the contents of one square, ordered bottom to top.
type Stack []Piece

// Top returns the topmost piece. ok is false for an empty square.
func (s Stack) Top() (Piece, bool) {
	if len(s) == 0 {
		return Piece{}, false
	}
	return s[len(s)-1], true
}
