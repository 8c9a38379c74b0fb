package main

import (
	"os"

	"github.com/rcollings/studyhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
