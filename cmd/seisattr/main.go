// Command seisattr synthesizes Ricker wavelets and derives rock-physics
// attributes from well logs.
//
// Usage:
//
//	seisattr [--config file.yaml] [--verbose] <command> [flags]
//
// Examples:
//
//	seisattr wavelet --freq 25 --figure ricker.png
//	seisattr rockphysics --well well_B.csv --petro petrophysical.csv
//	seisattr --config field.yaml rockphysics --figure ""
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
