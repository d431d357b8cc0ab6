package game

// StateHash is a 64-bit fingerprint used for transposition lookups.
type StateHash uint64

// State is the contract between the rules engine and any search driver.
// States are immutable: Play always returns a new copy, so independent
// search branches never alias each other's successors.
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a non-terminal state between -1 and 1 from the
// perspective of the player to move (positive is favorable).
type Evaluate func(State) float64
