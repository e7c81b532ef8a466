// AdvSlider - Advanced Slider Demo
//
// A flat slider widget that draws its formatted value next to the fill
// bar, hosted in a Fyne window or a terminal, with preset files and
// PDF, spreadsheet and DXF exports.
//
// Build:
//   go build -o advslider ./cmd/advslider
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o advslider.exe ./cmd/advslider
//   GOOS=darwin  GOARCH=amd64 go build -o advslider-darwin ./cmd/advslider

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
