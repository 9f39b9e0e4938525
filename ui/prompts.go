package ui

import (
	"fmt"
	"strings"

	"github.com/feel-easy/unogame/card/color"
	"github.com/feel-easy/unogame/consts"
)

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) int {
	for {
		Println(message)
		var input int
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}

// PromptCardChoice asks for a 1-based card number, or 0 to draw.
// Returns the 0-based hand index, or consts.DrawChoice.
func PromptCardChoice(handSize int) int {
	choice := PromptIntegerInRange(0, handSize, fmt.Sprintf("Enter card number to play (1-%d), or 0 to draw:", handSize))
	if choice == 0 {
		return consts.DrawChoice
	}
	return choice - 1
}

func PromptColor() color.Color {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName := strings.ToLower(PromptString(colorMessage))
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor
	}
}
