package game

import (
	"github.com/feel-easy/unogame/card"
)

// applyEffect resolves a played card's effect against the state. The
// switch is exhaustive over card.Kind; Number cards resolve to nothing.
//
// Skip advances the turn here, inside the effect, so the caller must
// suppress its own post-play advance for Skip plays. DrawTwo and
// WildDrawFour only record the penalty; the cards are drawn when the
// penalized player's turn begins.
func applyEffect(played *card.Card, state *State) {
	switch played.Kind() {
	case card.Skip:
		state.AdvanceTurn()
	case card.Reverse:
		state.ReverseDirection()
	case card.DrawTwo:
		state.SetPendingDrawCount(2)
	case card.WildDrawFour:
		state.SetPendingDrawCount(4)
		state.SetColorChangeNeeded(true)
	case card.Wild:
		state.SetColorChangeNeeded(true)
	case card.Number:
	}
}
