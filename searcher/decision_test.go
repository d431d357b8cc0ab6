package searcher

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tak/game"
)

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("expanding adds a child for the next unexplored move", func(t *testing.T) {
		node := newDecision(nil, mockState{player: "Player1", moves: []game.Move{mockMove{id: 0}, mockMove{id: 1}}})
		state := mockState{moves: []game.Move{mockMove{id: 9}}}

		child, childState, expanded := node.SelectOrExpand(state)

		require.True(t, expanded, "node should expand")
		require.Len(t, node.children, 1)
		require.Same(t, node.children[0], child)
		require.Equal(t, []game.Move{mockMove{id: 0}}, childState.(mockState).played,
			"the child state should follow the first unexplored move")
		require.Equal(t, Loss, child.rewards, "child should carry a virtual loss")
		require.Equal(t, 1.0, child.visits, "child should carry a virtual loss")
	})

	t.Run("selecting a fully expanded node picks the max UCB1 child", func(t *testing.T) {
		maxChild := &decision{player: "Player1", rewards: 1, visits: 1}
		otherChild := &decision{player: "Player1", rewards: 0, visits: 1}
		node := &decision{
			player:   "Player1",
			moves:    []game.Move{mockMove{id: 0}, mockMove{id: 1}},
			children: []*decision{otherChild, maxChild},
			rewards:  1,
			visits:   2,
		}
		state := mockState{}

		child, childState, expanded := node.SelectOrExpand(state)

		require.False(t, expanded, "node should select, not expand")
		require.Same(t, maxChild, child)
		require.Equal(t, []game.Move{mockMove{id: 1}}, childState.(mockState).played,
			"the state should advance by the selected move")
		require.Equal(t, 1+Loss, child.rewards, "child should carry a virtual loss")
		require.Equal(t, 2.0, child.visits)
		require.Equal(t, 1.0, node.rewards, "the node's own stats should not change")
		require.Equal(t, 2.0, node.visits)
	})

	t.Run("a terminal node returns itself", func(t *testing.T) {
		node := newDecision(nil, mockState{player: "Player1", winner: "Player1"})
		state := mockState{winner: "Player1"}

		child, childState, expanded := node.SelectOrExpand(state)

		require.Same(t, node, child)
		require.False(t, expanded)
		require.Empty(t, childState.(mockState).played)
	})
}

func TestDecisionBackup(t *testing.T) {
	t.Run("a non-root node reverses its virtual loss and scores for the mover", func(t *testing.T) {
		root := &decision{player: "Player1"}
		node := &decision{parent: root, player: "Player2"}
		node.applyLoss()

		parent := node.Backup("Player1", Win)

		require.Same(t, root, parent)
		require.Equal(t, Win, node.rewards,
			"rewards are from the perspective of the player who moved into the node")
		require.Equal(t, 1.0, node.visits)

		sibling := &decision{parent: root, player: "Player2"}
		sibling.applyLoss()
		sibling.Backup("Player2", Win)
		require.Equal(t, Loss, sibling.rewards, "an opponent win scores nothing for the mover")
	})

	t.Run("the root accumulates without loss reversal", func(t *testing.T) {
		root := &decision{player: "Player1"}

		parent := root.Backup("Player1", Win)

		require.Nil(t, parent)
		require.Equal(t, Win, root.rewards)
		require.Equal(t, 1.0, root.visits)
	})

	t.Run("a draw scores half for both sides", func(t *testing.T) {
		a := &decision{parent: &decision{player: "Player1"}, player: "Player2"}
		b := &decision{parent: &decision{player: "Player2"}, player: "Player1"}
		a.applyLoss()
		b.applyLoss()

		a.Backup("Player1", Draw)
		b.Backup("Player1", Draw)

		require.Equal(t, Draw, a.rewards)
		require.Equal(t, Draw, b.rewards)
	})
}

func TestDecisionFindBestMove(t *testing.T) {
	node := &decision{
		moves: []game.Move{mockMove{id: 0}, mockMove{id: 1}, mockMove{id: 2}},
		children: []*decision{
			{visits: 3},
			{visits: 9},
			{visits: 5},
		},
	}
	require.Equal(t, mockMove{id: 1}, node.findBestMove())
}

func TestDecisionConcurrentBackup(t *testing.T) {
	node := &decision{player: "Player1"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			node.Backup("Player1", Win)
		}()
	}
	wg.Wait()

	require.Equal(t, 64.0, node.visits)
	require.Equal(t, 64*Win, node.rewards)
}
