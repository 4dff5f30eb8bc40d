package main

import (
	"os"

	"github.com/mahmoudabadi/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
