package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/game"
)

func TestRandomStrategy(t *testing.T) {
	strategy := game.NewRandomStrategy(rand.New(rand.NewSource(1)))
	hand := []*card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Blue, 2),
		card.NewNumberCard(color.Green, 3),
	}
	validIndices := []int{0, 2}

	for i := 0; i < 50; i++ {
		require.Contains(t, validIndices, strategy.ChooseCard(validIndices, hand))
	}

	for i := 0; i < 50; i++ {
		require.NotEqual(t, color.Wild, strategy.PickColor(hand))
	}
}

func TestGreedyStrategyChooseCard(t *testing.T) {
	strategy := game.NewGreedyStrategy()

	// The blue five keeps two follow-up plays alive, the lone green
	// eight keeps none.
	hand := []*card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Blue, 9),
		card.NewDrawTwoCard(color.Blue),
	}
	chosen := strategy.ChooseCard([]int{0, 1}, hand)
	require.Equal(t, 0, chosen)
}

func TestGreedyStrategyPickColor(t *testing.T) {
	strategy := game.NewGreedyStrategy()

	t.Run("picks_the_most_frequent_hand_color", func(t *testing.T) {
		hand := []*card.Card{
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Green, 2),
			card.NewSkipCard(color.Green),
			card.NewNumberCard(color.Red, 3),
		}
		require.Equal(t, color.Green, strategy.PickColor(hand))
	})

	t.Run("falls_back_to_blue_for_an_empty_hand", func(t *testing.T) {
		require.Equal(t, color.Blue, strategy.PickColor(nil))
	})
}
