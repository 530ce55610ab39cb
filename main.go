package main

import (
	"os"

	"github.com/lodgelab/roomseed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
