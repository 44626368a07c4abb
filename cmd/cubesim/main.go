// cubesim - animated Rubik's cube simulator for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
