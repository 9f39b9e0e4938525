package consts

const (
	MinPlayers = 2
	MaxPlayers = 10

	StartingHandSize = 7
	DeckSize         = 108

	// DrawChoice is the PlayTurn choice that draws a card
	// instead of playing one from the hand.
	DrawChoice = -1
)

type Error struct {
	Code  int
	Msg   string
	Fatal bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, fatal bool, msg string) Error {
	return Error{Code: code, Msg: msg, Fatal: fatal}
}

var (
	ErrorsInvalidConfiguration = NewErr(1, true, "Invalid player configuration. ")
	ErrorsDeckExhausted        = NewErr(2, true, "No cards left to draw. ")
	ErrorsInvalidPlay          = NewErr(3, false, "Card cannot be played. ")
	ErrorsInvalidIndex         = NewErr(4, false, "Card index invalid. ")
	ErrorsInvalidColor         = NewErr(5, false, "Color invalid. ")
	ErrorsGameNotActive        = NewErr(6, false, "Game not active. ")
	ErrorsGameExist            = NewErr(7, false, "Game not found. ")
)
