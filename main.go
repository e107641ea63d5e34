package main

import (
	"os"

	"github.com/quintle/quintle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
