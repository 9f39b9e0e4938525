package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color is one of the four playable UNO colors, or the Wild sentinel
// carried by wild cards until their color is picked.
type Color int

const (
	Wild Color = iota
	Red
	Yellow
	Green
	Blue
)

var names = map[Color]string{
	Wild:   "wild",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
}

var paints = map[Color]func(string, ...interface{}) string{
	Wild:   color.New(color.FgHiWhite).SprintfFunc(),
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// Playable lists the four colors a wild card may be resolved to,
// in a fixed order usable for prompts and uniform random picks.
var Playable = []Color{Red, Yellow, Green, Blue}

func (c Color) Name() string {
	return names[c]
}

func (c Color) Paint(text string) string {
	return paints[c](text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return paints[c](format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	for _, candidate := range Playable {
		if names[candidate] == name {
			return candidate, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
