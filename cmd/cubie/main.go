// cubie - command-line engine and terminal player for the 3x3 puzzle cube.
package main

import (
	"log"

	"github.com/SeamusWaldron/cubie/internal/cli"
)

func main() {
	log.SetPrefix("[CUBIE] ")
	log.SetFlags(0)
	cli.Execute()
}
