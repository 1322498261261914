// Command graphview plots Sine, Sawtooth and Exponential curves in the
// terminal, either once from flags (graphview plot) or interactively
// (graphview tui).
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "graphview:", err)
		}
		os.Exit(1)
	}
}
