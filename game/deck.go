package game

import (
	"math/rand"
	"time"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/consts"
)

// Deck owns the draw pile and the discard pile. The top of the discard
// pile is always the most recently played card; it never returns to the
// draw pile until every card below it has been reshuffled away.
type Deck struct {
	drawPile    []*card.Card
	discardPile []*card.Card
	rng         *rand.Rand
}

func NewDeck() *Deck {
	return NewSeededDeck(time.Now().UnixNano())
}

// NewSeededDeck builds a deck with a deterministic shuffle source.
func NewSeededDeck(seed int64) *Deck {
	deck := &Deck{rng: rand.New(rand.NewSource(seed))}
	deck.Reset()
	return deck
}

// Reset rebuilds the full 108-card composition and shuffles it.
func (d *Deck) Reset() {
	d.drawPile = d.drawPile[:0]
	d.discardPile = d.discardPile[:0]

	d.drawPile = append(d.drawPile, createWildCards()...)
	for _, cardColor := range color.Playable {
		d.drawPile = append(d.drawPile, createColorCards(cardColor)...)
	}

	d.shuffle()
}

func createColorCards(cardColor color.Color) []*card.Card {
	cards := []*card.Card{
		card.NewNumberCard(cardColor, 0),
		card.NewSkipCard(cardColor), card.NewSkipCard(cardColor),
		card.NewReverseCard(cardColor), card.NewReverseCard(cardColor),
		card.NewDrawTwoCard(cardColor), card.NewDrawTwoCard(cardColor),
	}

	for rank := 1; rank <= 9; rank++ {
		cards = append(cards, card.NewNumberCard(cardColor, rank), card.NewNumberCard(cardColor, rank))
	}

	return cards
}

func createWildCards() []*card.Card {
	cards := make([]*card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

// Draw pops the top card of the draw pile. An empty draw pile is
// refilled by reshuffling the discard pile minus its top card; when that
// leaves nothing to draw the deck is exhausted and the game cannot
// continue.
func (d *Deck) Draw() (*card.Card, error) {
	if len(d.drawPile) == 0 {
		d.reshuffleDiscardPile()
	}
	if len(d.drawPile) == 0 {
		return nil, consts.ErrorsDeckExhausted
	}
	drawn := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return drawn, nil
}

func (d *Deck) AddToDiscard(played *card.Card) {
	d.discardPile = append(d.discardPile, played)
}

// TopCard peeks at the discard top without removing it. It is nil only
// before the first discard exists.
func (d *Deck) TopCard() *card.Card {
	if len(d.discardPile) == 0 {
		return nil
	}
	return d.discardPile[len(d.discardPile)-1]
}

func (d *Deck) reshuffleDiscardPile() {
	if len(d.discardPile) <= 1 {
		return
	}
	top := d.discardPile[len(d.discardPile)-1]
	d.drawPile = append(d.drawPile, d.discardPile[:len(d.discardPile)-1]...)
	d.discardPile = d.discardPile[:0]
	d.discardPile = append(d.discardPile, top)
	d.shuffle()
}

func (d *Deck) DrawPileSize() int {
	return len(d.drawPile)
}

func (d *Deck) DiscardPileSize() int {
	return len(d.discardPile)
}
