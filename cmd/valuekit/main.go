package main

import (
	"os"
	_ "time/tzdata"

	"github.com/dmitrymomot/valuekit/cmd/valuekit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
