package main

import (
	"github.com/chordcraft/chordcraft/cmd"
)

func main() {
	cmd.Execute()
}
