package main

import (
	"os"

	"github.com/mechdyane/mechdyane/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
