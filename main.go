package main

import (
	"os"

	"github.com/knaranjo357/icfes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
