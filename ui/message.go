package ui

import (
	"fmt"
	"strings"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/event"
	"github.com/feel-easy/unogame/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(firstCard *card.Card) {
	Printfln("First card is %s", firstCard)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played *card.Card) {
	Printfln("%s played %s!", playerName, played)
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) {
	Printfln("%s picked color %s!", playerName, picked)
}

func (m MessageWriter) PlayerPassed(playerName string) {
	Printfln("%s drew a card and passed!", playerName)
}

func (m MessageWriter) PlayerWon(playerName string) {
	Printfln("%s wins!", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PenaltyAbsorbed(playerName string, amount int) {
	Printfln("%s draws %d penalty card(s) and loses the turn!", playerName, amount)
}

// TableState renders the shared table view: discard top, direction and
// every seat's card count.
func (m MessageWriter) TableState(state *game.State) {
	var seats []string
	for _, player := range state.Players() {
		label := player.String()
		if player == state.CurrentPlayer() {
			label = "*" + label
		}
		seats = append(seats, label)
	}
	Printfln("Top card: %s", state.TopCard())
	Printfln("Turn order %s: %s", state.DirectionSymbol(), strings.Join(seats, ", "))
}

// Hand renders a player's cards with their selection numbers.
func (m MessageWriter) Hand(player *game.Player) {
	var entries []string
	for index, handCard := range player.Hand() {
		entries = append(entries, fmt.Sprintf("%d:%s", index+1, handCard))
	}
	Printfln("Your hand: %s", strings.Join(entries, " "))
}

// ConsoleListener prints game events as they happen. It implements the
// event listener interfaces.
type ConsoleListener struct{}

func (l ConsoleListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Message.FirstCardPlayed(payload.Card)
}

func (l ConsoleListener) OnCardPlayed(payload event.CardPlayedPayload) {
	Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (l ConsoleListener) OnColorPicked(payload event.ColorPickedPayload) {
	Message.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (l ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerPassed(payload.PlayerName)
}

func (l ConsoleListener) OnGameWon(payload event.GameWonPayload) {
	Message.PlayerWon(payload.PlayerName)
}
