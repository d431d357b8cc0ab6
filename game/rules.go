package game

// Allotment is the per-side piece supply for a board size.
type Allotment struct {
	Flats     int
	Capstones int
}

// Standard tournament allotments. Sizes without an entry fall back to a
// deterministic default instead of failing.
var standardAllotments = map[int]Allotment{
	3: {Flats: 10, Capstones: 0},
	4: {Flats: 15, Capstones: 0},
	5: {Flats: 21, Capstones: 1},
	6: {Flats: 30, Capstones: 1},
	7: {Flats: 40, Capstones: 1},
	8: {Flats: 50, Capstones: 1},
}

// AllotmentFor returns the starting supply for a board of size n.
func AllotmentFor(n int) Allotment {
	if a, ok := standardAllotments[n]; ok {
		return a
	}
	caps := 0
	if n >= 5 {
		caps = 1
	}
	return Allotment{Flats: n * n, Capstones: caps}
}
