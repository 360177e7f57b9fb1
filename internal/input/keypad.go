package input

import "github.com/rail44/calc/internal/calculator"

// ButtonClass groups buttons that share a style.
type ButtonClass int

const (
	ClassDigit ButtonClass = iota
	ClassOperator
	ClassFunction
)

// Button is a labeled on-screen control.
type Button struct {
	Label string
	Event calculator.Event
	Class ButtonClass
	Row   int
	Col   int
	Span  int
}

// KeypadColumns is the width of the keypad grid in cells.
const KeypadColumns = 4

// Buttons is the keypad, row by row. Every row spans KeypadColumns cells.
var Buttons = []Button{
	{Label: "C", Event: calculator.Clear(), Class: ClassFunction, Row: 0, Col: 0, Span: 2},
	{Label: "⌫", Event: calculator.Backspace(), Class: ClassFunction, Row: 0, Col: 2, Span: 1},
	{Label: "÷", Event: calculator.Operation(calculator.OpDivide), Class: ClassOperator, Row: 0, Col: 3, Span: 1},

	digitButton(7, 1, 0), digitButton(8, 1, 1), digitButton(9, 1, 2),
	{Label: "×", Event: calculator.Operation(calculator.OpMultiply), Class: ClassOperator, Row: 1, Col: 3, Span: 1},

	digitButton(4, 2, 0), digitButton(5, 2, 1), digitButton(6, 2, 2),
	{Label: "-", Event: calculator.Operation(calculator.OpSubtract), Class: ClassOperator, Row: 2, Col: 3, Span: 1},

	digitButton(1, 3, 0), digitButton(2, 3, 1), digitButton(3, 3, 2),
	{Label: "+", Event: calculator.Operation(calculator.OpAdd), Class: ClassOperator, Row: 3, Col: 3, Span: 1},

	{Label: "0", Event: calculator.Digit(0), Class: ClassDigit, Row: 4, Col: 0, Span: 2},
	{Label: ".", Event: calculator.Decimal(), Class: ClassDigit, Row: 4, Col: 2, Span: 1},
	{Label: "=", Event: calculator.Operation(calculator.OpEquals), Class: ClassOperator, Row: 4, Col: 3, Span: 1},
}

func digitButton(d, row, col int) Button {
	return Button{
		Label: string(rune('0' + d)),
		Event: calculator.Digit(d),
		Class: ClassDigit,
		Row:   row,
		Col:   col,
		Span:  1,
	}
}

// KeypadRows returns the number of rows in the keypad.
func KeypadRows() int {
	rows := 0
	for _, b := range Buttons {
		if b.Row+1 > rows {
			rows = b.Row + 1
		}
	}
	return rows
}

// Row returns the buttons of row r, left to right.
func Row(r int) []Button {
	var row []Button
	for _, b := range Buttons {
		if b.Row == r {
			row = append(row, b)
		}
	}
	return row
}

// ButtonFor returns the keypad button that produces e, if any.
func ButtonFor(e calculator.Event) (Button, bool) {
	for _, b := range Buttons {
		if b.Event == e {
			return b, true
		}
	}
	return Button{}, false
}
