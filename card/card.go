package card

import (
	"fmt"

	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/consts"
)

// Kind tags a card with its rule behavior. Effects are resolved by a
// single dispatch on the kind rather than by per-type virtual calls.
type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// Card is a single UNO card. A card is immutable after creation, with
// one exception: a wild card's color is reassigned once, when the color
// picked for it resolves.
type Card struct {
	kind  Kind
	color color.Color
	rank  int
}

const noRank = -1

func NewNumberCard(cardColor color.Color, rank int) *Card {
	return &Card{kind: Number, color: cardColor, rank: rank}
}

func NewSkipCard(cardColor color.Color) *Card {
	return &Card{kind: Skip, color: cardColor, rank: noRank}
}

func NewReverseCard(cardColor color.Color) *Card {
	return &Card{kind: Reverse, color: cardColor, rank: noRank}
}

func NewDrawTwoCard(cardColor color.Color) *Card {
	return &Card{kind: DrawTwo, color: cardColor, rank: noRank}
}

func NewWildCard() *Card {
	return &Card{kind: Wild, color: color.Wild, rank: noRank}
}

func NewWildDrawFourCard() *Card {
	return &Card{kind: WildDrawFour, color: color.Wild, rank: noRank}
}

func (c *Card) Kind() Kind {
	return c.kind
}

func (c *Card) Color() color.Color {
	return c.color
}

// Rank is meaningful only for Number cards.
func (c *Card) Rank() int {
	return c.rank
}

// IsWild reports whether the card carries the Wild color sentinel at
// creation time, i.e. is a Wild or WildDrawFour.
func (c *Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

// CanPlayOn reports whether the card may legally be played on top.
// Wild cards are always playable. A number card matches on color, or on
// rank when the top is also a number card. An action card matches on
// color or on kind.
func (c *Card) CanPlayOn(top *Card) bool {
	switch c.kind {
	case Wild, WildDrawFour:
		return true
	case Number:
		if c.color == top.color {
			return true
		}
		return top.kind == Number && c.rank == top.rank
	default:
		return c.color == top.color || c.kind == top.kind
	}
}

// SetColor resolves a wild card to a picked color. The Wild sentinel is
// never a valid pick, whatever the caller's UI offered.
func (c *Card) SetColor(cardColor color.Color) error {
	if cardColor == color.Wild {
		return consts.ErrorsInvalidColor
	}
	c.color = cardColor
	return nil
}

func (c *Card) Equal(other *Card) bool {
	return c.kind == other.kind && c.color == other.color && c.rank == other.rank
}

func (c *Card) String() string {
	switch c.kind {
	case Number:
		return c.color.Paintf("[%d]", c.rank) + fmt.Sprintf("(%s)", c.color.Name())
	case Skip:
		return c.color.Paint("(/)") + fmt.Sprintf("(%s)", c.color.Name())
	case Reverse:
		return c.color.Paint("<=>") + fmt.Sprintf("(%s)", c.color.Name())
	case DrawTwo:
		return c.color.Paint("+2!") + fmt.Sprintf("(%s)", c.color.Name())
	case Wild:
		if c.color == color.Wild {
			return "(*)"
		}
		return c.color.Paint("(*)") + fmt.Sprintf("(%s)", c.color.Name())
	case WildDrawFour:
		if c.color == color.Wild {
			return "+4!"
		}
		return c.color.Paint("+4!") + fmt.Sprintf("(%s)", c.color.Name())
	default:
		return "?"
	}
}
