package game

import (
	"math/rand"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
)

// Strategy decides an AI seat's moves. ChooseCard receives the legal
// hand indices (never empty) and returns the one to play; PickColor
// resolves a wild card the strategy just played.
type Strategy interface {
	ChooseCard(validIndices []int, hand []*card.Card) int
	PickColor(hand []*card.Card) color.Color
}

// RandomStrategy plays uniformly at random among the legal cards and
// picks wild colors uniformly among the four playable colors.
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) ChooseCard(validIndices []int, hand []*card.Card) int {
	return validIndices[s.rng.Intn(len(validIndices))]
}

func (s *RandomStrategy) PickColor(hand []*card.Card) color.Color {
	return color.Playable[s.rng.Intn(len(color.Playable))]
}

// GreedyStrategy favors the playable card that keeps the most follow-up
// plays alive, and resolves wilds to the hand's most frequent color.
type GreedyStrategy struct{}

func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

func (s *GreedyStrategy) ChooseCard(validIndices []int, hand []*card.Card) int {
	bestIndex := validIndices[0]
	maxSpareCards := 0

	for _, candidateIndex := range validIndices {
		candidate := hand[candidateIndex]
		spareCards := 0
		for handIndex, handCard := range hand {
			if handIndex == candidateIndex {
				continue
			}
			if handCard.CanPlayOn(candidate) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			bestIndex = candidateIndex
		}
	}

	return bestIndex
}

func (s *GreedyStrategy) PickColor(hand []*card.Card) color.Color {
	if len(hand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color() == color.Wild {
			for _, playableColor := range color.Playable {
				colorCounts[playableColor]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, candidate := range color.Playable {
		if colorCounts[candidate] > mostFrequentColorAmount {
			mostFrequentColorAmount = colorCounts[candidate]
			mostFrequentColor = candidate
		}
	}

	return mostFrequentColor
}
