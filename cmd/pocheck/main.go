package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/ppiankov/pocheck/internal/cli"
	"github.com/ppiankov/pocheck/internal/model"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Issues were already printed with their total
		if !errors.Is(err, model.ErrIssuesFound) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
