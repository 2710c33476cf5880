package main

import (
	"os"

	"github.com/Nighteyez07/disc-golf-putting-tr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
