package main

import (
	"github.com/MrTomRod/ncbi-blast/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
