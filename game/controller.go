package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/feel-easy/unogame/card"
	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/consts"
	"github.com/feel-easy/unogame/event"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
)

// Controller orchestrates turns for one game instance: it validates
// plays, applies effects, advances the turn pointer, detects the win and
// drives AI choices. One controller owns one deck and one state; nothing
// here is process-wide.
type Controller struct {
	state    *State
	deck     *Deck
	phase    Phase
	winner   *Player
	strategy Strategy
	rng      *rand.Rand

	lastActor *Player
}

// New sets up a game: seats (humans first, then bots), a fresh shuffled
// deck, seven cards per seat and a non-wild initial discard top. Wild
// cards flipped while looking for the initial top leave the game; they
// are not returned to the deck.
func New(playerCount, humanCount int) (*Controller, error) {
	return NewSeeded(playerCount, humanCount, time.Now().UnixNano())
}

// NewSeeded is New with a deterministic shuffle and AI random source.
func NewSeeded(playerCount, humanCount int, seed int64) (*Controller, error) {
	if playerCount < consts.MinPlayers || playerCount > consts.MaxPlayers {
		return nil, consts.ErrorsInvalidConfiguration
	}
	if humanCount < 1 || humanCount > playerCount {
		return nil, consts.ErrorsInvalidConfiguration
	}

	players := make([]*Player, 0, playerCount)
	for i := 0; i < humanCount; i++ {
		players = append(players, NewPlayer(fmt.Sprintf("Player %d", i+1), true))
	}
	for i := humanCount; i < playerCount; i++ {
		players = append(players, NewPlayer(fmt.Sprintf("AI %d", i-humanCount+1), false))
	}

	rng := rand.New(rand.NewSource(seed))
	c := &Controller{
		state:    NewState(players),
		deck:     NewSeededDeck(seed),
		strategy: NewRandomStrategy(rng),
		rng:      rng,
	}

	for _, player := range players {
		for i := 0; i < consts.StartingHandSize; i++ {
			drawn, err := c.deck.Draw()
			if err != nil {
				return nil, err
			}
			player.DrawCard(drawn)
		}
	}

	initial, err := c.flipInitialCard()
	if err != nil {
		return nil, err
	}
	c.deck.AddToDiscard(initial)
	c.state.SetTopCard(initial)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: initial})

	return c, nil
}

func (c *Controller) flipInitialCard() (*card.Card, error) {
	for {
		flipped, err := c.deck.Draw()
		if err != nil {
			return nil, err
		}
		if !flipped.IsWild() {
			return flipped, nil
		}
	}
}

// Start moves the game into its running phase and pushes the initial
// state to observers.
func (c *Controller) Start() {
	if c.phase != PhaseNotStarted {
		return
	}
	c.phase = PhaseRunning
	c.state.Notify()
}

// PlayTurn processes one full turn for the current player. choice is a
// hand index, or consts.DrawChoice to draw a card instead.
//
// A player entering the turn with a pending draw penalty absorbs it and
// loses the turn, whatever they asked for. Drawing a card never grants a
// play this turn, even when the drawn card would have been legal.
func (c *Controller) PlayTurn(choice int) error {
	if c.phase != PhaseRunning {
		return consts.ErrorsGameNotActive
	}

	currentPlayer := c.state.CurrentPlayer()

	if c.state.PendingDrawCount() > 0 {
		for i := 0; i < c.state.PendingDrawCount(); i++ {
			drawn, err := c.deck.Draw()
			if err != nil {
				return err
			}
			currentPlayer.DrawCard(drawn)
		}
		c.state.SetPendingDrawCount(0)
		c.state.AdvanceTurn()
		return nil
	}

	if choice == consts.DrawChoice {
		drawn, err := c.deck.Draw()
		if err != nil {
			return err
		}
		currentPlayer.DrawCard(drawn)
		event.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: currentPlayer.Name()})
		c.state.AdvanceTurn()
		return nil
	}

	candidate, err := currentPlayer.CardAt(choice)
	if err != nil {
		return consts.ErrorsInvalidPlay
	}
	if !candidate.CanPlayOn(c.state.TopCard()) {
		return consts.ErrorsInvalidPlay
	}

	played, err := currentPlayer.PlayCard(choice)
	if err != nil {
		return consts.ErrorsInvalidPlay
	}
	c.lastActor = currentPlayer
	c.deck.AddToDiscard(played)
	c.state.SetTopCard(played)
	event.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: currentPlayer.Name(), Card: played})

	applyEffect(played, c.state)

	if currentPlayer.HasWon() {
		c.winner = currentPlayer
		c.phase = PhaseFinished
		event.GameWon.Emit(event.GameWonPayload{PlayerName: currentPlayer.Name()})
		c.state.Notify()
		return nil
	}

	// Skip already advanced the turn inside its effect; advancing here
	// again would skip two players.
	if played.Kind() != card.Skip {
		c.state.AdvanceTurn()
	}

	return nil
}

// SelectColor resolves the pending color choice left by a wild card.
func (c *Controller) SelectColor(chosen color.Color) error {
	if chosen == color.Wild {
		return consts.ErrorsInvalidColor
	}
	top := c.state.TopCard()
	if top == nil {
		return consts.ErrorsInvalidColor
	}
	if err := top.SetColor(chosen); err != nil {
		return err
	}
	c.state.SetColorChangeNeeded(false)
	if c.lastActor != nil {
		event.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: c.lastActor.Name(), Color: chosen})
	}
	c.state.Notify()
	return nil
}

// MakeAIMove plays one turn for the current (AI) player: absorb a
// pending penalty, play a legal card chosen by the seat strategy, or
// draw when no card is legal. A pending color choice is resolved before
// returning, so an AI turn never leaves the game waiting.
func (c *Controller) MakeAIMove() (int, error) {
	if c.phase != PhaseRunning {
		return consts.DrawChoice, consts.ErrorsGameNotActive
	}

	currentPlayer := c.state.CurrentPlayer()

	if c.state.PendingDrawCount() > 0 {
		return consts.DrawChoice, c.PlayTurn(consts.DrawChoice)
	}

	validIndices := currentPlayer.ValidIndices(c.state.TopCard())
	if len(validIndices) == 0 {
		return consts.DrawChoice, c.PlayTurn(consts.DrawChoice)
	}

	chosenIndex := c.strategy.ChooseCard(validIndices, currentPlayer.Hand())
	if err := c.PlayTurn(chosenIndex); err != nil {
		return chosenIndex, err
	}

	if c.state.ColorChangeNeeded() && c.phase == PhaseRunning {
		if err := c.SelectColor(c.strategy.PickColor(currentPlayer.Hand())); err != nil {
			return chosenIndex, err
		}
	}

	return chosenIndex, nil
}

// SetStrategy replaces the AI policy for this game.
func (c *Controller) SetStrategy(strategy Strategy) {
	c.strategy = strategy
}

func (c *Controller) IsRunning() bool {
	return c.phase == PhaseRunning
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) Winner() *Player {
	return c.winner
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) Deck() *Deck {
	return c.deck
}
