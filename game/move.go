package game

import "fmt"

// Direction of a stack slide. The numeric order (up, down, left, right) is
// part of the action-index wire contract.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offsets returns the row/column deltas of one step in the direction.
func (d Direction) Offsets() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Move is either a Placement or a Slide.
type Move interface {
	String() string
}

// Placement puts a new piece on an empty square.
type Placement struct {
	Kind Kind
	Row  int
	Col  int
}

func (p Placement) String() string {
	return fmt.Sprintf("place %s at (%d,%d)", p.Kind, p.Row, p.Col)
}

// Slide picks up the top Pickup pieces at (Row,Col) and drops them along
// Dir according to Drops, one group per successive square. Drops is
// non-empty, all entries are positive, and they sum to Pickup.
type Slide struct {
	Row    int
	Col    int
	Dir    Direction
	Pickup int
	Drops  []int
}

func (s Slide) String() string {
	return fmt.Sprintf("slide %d from (%d,%d) %s drops %v", s.Pickup, s.Row, s.Col, s.Dir, s.Drops)
}

// MovesEqual reports whether two moves describe the same action.
func MovesEqual(a, b Move) bool {
	switch am := a.(type) {
	case Placement:
		bm, ok := b.(Placement)
		return ok && am == bm
	case Slide:
		bm, ok := b.(Slide)
		if !ok || am.Row != bm.Row || am.Col != bm.Col || am.Dir != bm.Dir ||
			am.Pickup != bm.Pickup || len(am.Drops) != len(bm.Drops) {
			return false
		}
		for i := range am.Drops {
			if am.Drops[i] != bm.Drops[i] {
				return false
			}
		}
		return true
	}
	return false
}
