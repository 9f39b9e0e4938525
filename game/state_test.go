package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/game"
)

func newPlayers(names ...string) []*game.Player {
	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		players = append(players, game.NewPlayer(name, false))
	}
	return players
}

func TestStateAdvanceTurn(t *testing.T) {
	state := game.NewState(newPlayers("A", "B", "C"))
	require.Equal(t, "A", state.CurrentPlayer().Name())
	require.Equal(t, "B", state.NextPlayer().Name())

	state.AdvanceTurn()
	require.Equal(t, "B", state.CurrentPlayer().Name())
	state.AdvanceTurn()
	require.Equal(t, "C", state.CurrentPlayer().Name())
	state.AdvanceTurn()
	require.Equal(t, "A", state.CurrentPlayer().Name())
}

func TestStateReverseDirection(t *testing.T) {
	t.Run("flips_turn_order_with_more_than_two_players", func(t *testing.T) {
		state := game.NewState(newPlayers("A", "B", "C"))
		require.True(t, state.Clockwise())

		state.ReverseDirection()
		require.False(t, state.Clockwise())
		require.Equal(t, "A", state.CurrentPlayer().Name())
		require.Equal(t, "C", state.NextPlayer().Name())

		state.AdvanceTurn()
		require.Equal(t, "C", state.CurrentPlayer().Name())
	})

	t.Run("double_reverse_restores_the_original_order", func(t *testing.T) {
		state := game.NewState(newPlayers("A", "B", "C", "D"))
		state.ReverseDirection()
		state.ReverseDirection()
		require.True(t, state.Clockwise())
		require.Equal(t, "A", state.CurrentPlayer().Name())
		require.Equal(t, "B", state.NextPlayer().Name())
	})

	t.Run("acts_as_a_skip_with_exactly_two_players", func(t *testing.T) {
		state := game.NewState(newPlayers("A", "B"))
		state.ReverseDirection()
		// Direction flipped and the turn advanced once, as a plain
		// AdvanceTurn would have done.
		require.Equal(t, "B", state.CurrentPlayer().Name())
		require.False(t, state.Clockwise())
	})
}

func TestStateObservers(t *testing.T) {
	state := game.NewState(newPlayers("A", "B", "C"))

	var firstCalls, secondCalls int
	firstHandle := state.AddObserver(func(s *game.State) {
		firstCalls++
	})
	state.AddObserver(func(s *game.State) {
		secondCalls++
	})

	state.AdvanceTurn()
	require.Equal(t, 1, firstCalls)
	require.Equal(t, 1, secondCalls)

	state.SetTopCard(card.NewNumberCard(color.Red, 5))
	require.Equal(t, 2, firstCalls)

	state.RemoveObserver(firstHandle)
	state.AdvanceTurn()
	require.Equal(t, 2, firstCalls)
	require.Equal(t, 3, secondCalls)
}

func TestStateObserverSeesConsistentState(t *testing.T) {
	state := game.NewState(newPlayers("A", "B"))
	top := card.NewNumberCard(color.Green, 3)

	var observed *card.Card
	state.AddObserver(func(s *game.State) {
		observed = s.TopCard()
	})

	state.SetTopCard(top)
	require.Equal(t, top, observed)
}

func TestStatePlainFieldMutations(t *testing.T) {
	state := game.NewState(newPlayers("A", "B"))

	var calls int
	state.AddObserver(func(s *game.State) {
		calls++
	})

	// Pending-draw and color-pending mutations do not notify.
	state.SetPendingDrawCount(2)
	state.SetColorChangeNeeded(true)
	require.Equal(t, 0, calls)
	require.Equal(t, 2, state.PendingDrawCount())
	require.True(t, state.ColorChangeNeeded())
}

func TestStateRestore(t *testing.T) {
	state := game.NewState(newPlayers("A", "B", "C"))

	var calls int
	state.AddObserver(func(s *game.State) {
		calls++
	})

	state.Restore(2, false, 4)
	require.Equal(t, "C", state.CurrentPlayer().Name())
	require.False(t, state.Clockwise())
	require.Equal(t, 4, state.PendingDrawCount())
	require.Equal(t, 1, calls)

	// An out-of-range index is ignored rather than applied.
	state.Restore(7, true, 0)
	require.Equal(t, "C", state.CurrentPlayer().Name())
}

func TestStateDirectionSymbol(t *testing.T) {
	state := game.NewState(newPlayers("A", "B", "C"))
	require.Equal(t, "->", state.DirectionSymbol())
	state.ReverseDirection()
	require.Equal(t, "<-", state.DirectionSymbol())
}
