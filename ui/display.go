package ui

import (
	"fmt"

	"github.com/feel-easy/unogame/card/color"
)

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
}

func Printfln(format string, args ...interface{}) {
	fmt.Fprintf(color.Stdout, format+"\n", args...)
}
