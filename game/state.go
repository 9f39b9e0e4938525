package game

import (
	"github.com/feel-easy/unogame/card"
)

// ObserverFunc receives the state after every change. The callback is
// synchronous and review-only: it must not mutate the state it is given.
type ObserverFunc func(*State)

type observerEntry struct {
	handle int
	fn     ObserverFunc
}

// State is the observable game state: seats, turn pointer, direction,
// pending penalties and the discard top.
type State struct {
	players           []*Player
	currentPlayer     int
	clockwise         bool
	pendingDrawCount  int
	colorChangeNeeded bool
	topCard           *card.Card

	observers  []observerEntry
	nextHandle int
}

func NewState(players []*Player) *State {
	return &State{
		players:   players,
		clockwise: true,
	}
}

// AddObserver registers a callback and returns its removal handle.
func (s *State) AddObserver(fn ObserverFunc) int {
	s.nextHandle++
	s.observers = append(s.observers, observerEntry{handle: s.nextHandle, fn: fn})
	return s.nextHandle
}

func (s *State) RemoveObserver(handle int) {
	for index, entry := range s.observers {
		if entry.handle == handle {
			s.observers = append(s.observers[:index], s.observers[index+1:]...)
			return
		}
	}
}

// Notify synchronously invokes every observer in registration order.
func (s *State) Notify() {
	for _, entry := range s.observers {
		entry.fn(s)
	}
}

// AdvanceTurn moves the turn pointer one seat along the current
// direction and notifies observers.
func (s *State) AdvanceTurn() {
	s.currentPlayer = s.nextIndex()
	s.Notify()
}

// ReverseDirection flips the play direction. With exactly two players a
// reverse behaves as a skip, so the turn additionally advances once.
func (s *State) ReverseDirection() {
	s.clockwise = !s.clockwise
	if len(s.players) == 2 {
		s.AdvanceTurn()
	}
}

func (s *State) nextIndex() int {
	playerCount := len(s.players)
	if s.clockwise {
		return (s.currentPlayer + 1) % playerCount
	}
	return (s.currentPlayer - 1 + playerCount) % playerCount
}

func (s *State) Players() []*Player {
	return s.players
}

func (s *State) CurrentPlayer() *Player {
	return s.players[s.currentPlayer]
}

func (s *State) NextPlayer() *Player {
	return s.players[s.nextIndex()]
}

func (s *State) CurrentPlayerIndex() int {
	return s.currentPlayer
}

func (s *State) Clockwise() bool {
	return s.clockwise
}

func (s *State) TopCard() *card.Card {
	return s.topCard
}

// SetTopCard replaces the discard top reference and notifies observers.
func (s *State) SetTopCard(top *card.Card) {
	s.topCard = top
	s.Notify()
}

func (s *State) PendingDrawCount() int {
	return s.pendingDrawCount
}

func (s *State) SetPendingDrawCount(count int) {
	s.pendingDrawCount = count
}

func (s *State) ColorChangeNeeded() bool {
	return s.colorChangeNeeded
}

func (s *State) SetColorChangeNeeded(needed bool) {
	s.colorChangeNeeded = needed
}

func (s *State) DirectionSymbol() string {
	if s.clockwise {
		return "->"
	}
	return "<-"
}

// Restore applies a persisted turn-sequencing snapshot. Only the fields
// needed to resume sequencing are restored; hands and piles are not part
// of the persisted minimum.
func (s *State) Restore(currentPlayer int, clockwise bool, pendingDrawCount int) {
	if currentPlayer >= 0 && currentPlayer < len(s.players) {
		s.currentPlayer = currentPlayer
	}
	s.clockwise = clockwise
	s.pendingDrawCount = pendingDrawCount
	s.Notify()
}
