package ui

import (
	"github.com/rail44/calc/internal/input"
)

// Keypad geometry in terminal cells. The view is drawn from the top-left
// corner of the alt screen, so these are also mouse coordinates.
const (
	cellWidth  = 7
	cellHeight = 3
	cellGap    = 1

	// title line plus the bordered display panel
	keypadTop = 5
)

// frameWidth is the width of the keypad and the display panel.
var frameWidth = input.KeypadColumns*cellWidth + (input.KeypadColumns-1)*cellGap

func buttonX(b input.Button) int {
	return b.Col * (cellWidth + cellGap)
}

func buttonWidth(b input.Button) int {
	return b.Span*cellWidth + (b.Span-1)*cellGap
}

// hitTest returns the keypad button under the cell (x, y).
func hitTest(x, y int) (input.Button, bool) {
	if y < keypadTop || x < 0 {
		return input.Button{}, false
	}
	row := (y - keypadTop) / cellHeight
	if row >= input.KeypadRows() {
		return input.Button{}, false
	}
	for _, b := range input.Row(row) {
		start := buttonX(b)
		if x >= start && x < start+buttonWidth(b) {
			return b, true
		}
	}
	return input.Button{}, false
}
