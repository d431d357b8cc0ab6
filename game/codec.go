package game

import "fmt"

// Pattern is one entry of the movement catalogue: pick up Pickup pieces and
// drop them in the listed groups on successive squares.
type Pattern struct {
	Pickup int
	Drops  []int
}

// Codec is the single authoritative mapping between dense action indices and
// semantic moves for one board size. Placement indices occupy [0, 3n²),
// partitioned by piece kind then row-major square. Movement indices occupy
// [3n², 3n² + 4n²P), partitioned by pattern, then direction, then row-major
// start square. Build one per board size and share it read-only; the index
// layout is a wire contract for external policy consumers.
type Codec struct {
	n          int
	patterns   []Pattern
	patternIdx map[string]int
}

// NewCodec builds the codec for an n×n board, enumerating the full
// drop-pattern catalogue once.
func NewCodec(n int) *Codec {
	if n < 3 {
		panic(fmt.Sprintf("board size %d too small", n))
	}
	c := &Codec{n: n, patternIdx: make(map[string]int)}
	for pickup := 1; pickup <= n; pickup++ {
		enumerateDrops(pickup, nil, func(drops []int) {
			p := Pattern{Pickup: pickup, Drops: append([]int(nil), drops...)}
			c.patternIdx[dropsKey(p.Drops)] = len(c.patterns)
			c.patterns = append(c.patterns, p)
		})
	}
	return c
}

// enumerateDrops emits every ordered composition of remaining into positive
// parts, smallest first part first. The emission order is part of the index
// contract.
func enumerateDrops(remaining int, prefix []int, emit func([]int)) {
	if remaining == 0 {
		emit(prefix)
		return
	}
	for drop := 1; drop <= remaining; drop++ {
		enumerateDrops(remaining-drop, append(prefix, drop), emit)
	}
}

func dropsKey(drops []int) string {
	b := make([]byte, len(drops))
	for i, d := range drops {
		b[i] = byte(d)
	}
	return string(b)
}

// Size returns the board size the codec was built for.
func (c *Codec) Size() int { return c.n }

// Patterns returns the movement-pattern catalogue in index order.
func (c *Codec) Patterns() []Pattern { return c.patterns }

// PlacementCount is the number of placement actions, 3n².
func (c *Codec) PlacementCount() int { return 3 * c.n * c.n }

// ActionCount is the total size of the action index space.
func (c *Codec) ActionCount() int {
	return c.PlacementCount() + c.n*c.n*4*len(c.patterns)
}

// Encode maps a move to its action index. A move that is not structurally
// valid for this board size is a caller error.
func (c *Codec) Encode(m Move) (int, error) {
	n := c.n
	switch mv := m.(type) {
	case Placement:
		if mv.Row < 0 || mv.Row >= n || mv.Col < 0 || mv.Col >= n {
			return 0, fmt.Errorf("encode: square (%d,%d) outside %dx%d board", mv.Row, mv.Col, n, n)
		}
		if mv.Kind > Capstone {
			return 0, fmt.Errorf("encode: unknown piece kind %d", mv.Kind)
		}
		return int(mv.Kind)*n*n + mv.Row*n + mv.Col, nil
	case Slide:
		if mv.Row < 0 || mv.Row >= n || mv.Col < 0 || mv.Col >= n {
			return 0, fmt.Errorf("encode: square (%d,%d) outside %dx%d board", mv.Row, mv.Col, n, n)
		}
		if mv.Dir > Right {
			return 0, fmt.Errorf("encode: unknown direction %d", mv.Dir)
		}
		idx, ok := c.patternIdx[dropsKey(mv.Drops)]
		if !ok {
			return 0, fmt.Errorf("encode: drop pattern %v not in catalogue", mv.Drops)
		}
		if c.patterns[idx].Pickup != mv.Pickup {
			return 0, fmt.Errorf("encode: pickup %d does not match drop pattern %v", mv.Pickup, mv.Drops)
		}
		return c.PlacementCount() + idx*4*n*n + int(mv.Dir)*n*n + mv.Row*n + mv.Col, nil
	}
	return 0, fmt.Errorf("encode: unknown move type %T", m)
}

// Decode maps an action index back to the move it encodes. An out-of-range
// index is a caller contract violation and fails loudly.
func (c *Codec) Decode(index int) (Move, error) {
	if index < 0 || index >= c.ActionCount() {
		return nil, fmt.Errorf("decode: index %d outside [0,%d)", index, c.ActionCount())
	}
	n := c.n
	if index < c.PlacementCount() {
		kind := Kind(index / (n * n))
		pos := index % (n * n)
		return Placement{Kind: kind, Row: pos / n, Col: pos % n}, nil
	}
	offset := index - c.PlacementCount()
	pIdx := offset / (4 * n * n)
	rem := offset % (4 * n * n)
	dir := Direction(rem / (n * n))
	pos := rem % (n * n)
	p := c.patterns[pIdx]
	return Slide{
		Row:    pos / n,
		Col:    pos % n,
		Dir:    dir,
		Pickup: p.Pickup,
		Drops:  append([]int(nil), p.Drops...),
	}, nil
}
