package main

import (
	"os"

	"github.com/viktools/viktools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
