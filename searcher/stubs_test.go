package searcher

import (
	"fmt"

	"tak/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move%d", m.id)
}

// mockState is a scripted game.State: Play records the moves taken so tests
// can assert which branches the tree walked.
type mockState struct {
	player string
	moves  []game.Move
	winner string
	played []game.Move
}

func (s mockState) Player() string          { return s.player }
func (s mockState) LegalMoves() []game.Move { return s.moves }
func (s mockState) Hash() game.StateHash    { return 0 }
func (s mockState) Winner() string          { return s.winner }

func (s mockState) Play(m game.Move) game.State {
	next := s
	next.played = append(append([]game.Move(nil), s.played...), m)
	return next
}
