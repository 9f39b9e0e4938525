package game

import (
	"fmt"

	"github.com/feel-easy/unogame/card"
)

// Player is one seat at the table. Seats are created at setup and never
// destroyed mid-game.
type Player struct {
	name  string
	human bool
	hand  *Hand
}

func NewPlayer(name string, human bool) *Player {
	return &Player{name: name, human: human, hand: NewHand()}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsHuman() bool {
	return p.human
}

func (p *Player) DrawCard(drawn *card.Card) {
	p.hand.AddCard(drawn)
}

// PlayCard removes and returns the hand card at index.
func (p *Player) PlayCard(index int) (*card.Card, error) {
	return p.hand.RemoveAt(index)
}

// CardAt peeks at the hand card at index without removing it.
func (p *Player) CardAt(index int) (*card.Card, error) {
	return p.hand.Card(index)
}

func (p *Player) ValidIndices(top *card.Card) []int {
	return p.hand.ValidIndices(top)
}

func (p *Player) HasValidCard(top *card.Card) bool {
	return len(p.hand.ValidIndices(top)) > 0
}

func (p *Player) HasWon() bool {
	return p.hand.Empty()
}

func (p *Player) Hand() []*card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d card(s))", p.name, p.hand.Size())
}
