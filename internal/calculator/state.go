package calculator

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrorToken replaces the display after a division by zero.
const ErrorToken = "Error"

// ErrDivisionByZero is the only failure the calculator models.
var ErrDivisionByZero = errors.New("division by zero")

// Phase names the implicit state the four fields of State describe.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseOperandEntered  Phase = "operand"
	PhaseOperatorPending Phase = "pending"
	PhaseError           Phase = "error"
)

// State is the complete calculator record. The zero value is not usable;
// start from New.
type State struct {
	display         string
	previousValue   float64
	hasPrevious     bool
	pending         Operator
	awaitingOperand bool
}

// New returns the startup state: display "0", nothing captured.
func New() State {
	return State{display: "0"}
}

// Display returns the main display text.
func (s State) Display() string {
	return s.display
}

// PreviousValue returns the captured operand, if any.
func (s State) PreviousValue() (float64, bool) {
	return s.previousValue, s.hasPrevious
}

// Pending returns the operator awaiting application, OpNone if there is none.
func (s State) Pending() Operator {
	return s.pending
}

// AwaitingOperand reports whether the next digit starts a fresh number.
func (s State) AwaitingOperand() bool {
	return s.awaitingOperand
}

// Err returns ErrDivisionByZero while the error token is displayed.
func (s State) Err() error {
	if s.display == ErrorToken {
		return ErrDivisionByZero
	}
	return nil
}

// Phase derives the named state from the record.
func (s State) Phase() Phase {
	switch {
	case s.display == ErrorToken:
		return PhaseError
	case s.pending != OpNone && s.hasPrevious:
		return PhaseOperatorPending
	case s.display == "0" && !s.hasPrevious:
		return PhaseIdle
	default:
		return PhaseOperandEntered
	}
}

// InputDigit enters d, starting a new number when an operand is awaited and
// suppressing a leading zero otherwise.
func (s State) InputDigit(d int) State {
	if d < 0 || d > 9 {
		return s
	}
	digit := string(rune('0' + d))
	switch {
	case s.awaitingOperand:
		s.display = digit
		s.awaitingOperand = false
	case s.display == "0":
		s.display = digit
	default:
		s.display += digit
	}
	return s
}

// InputDecimal adds a decimal point unless the display already has one.
func (s State) InputDecimal() State {
	if s.awaitingOperand {
		s.display = "0."
		s.awaitingOperand = false
		return s
	}
	if !strings.Contains(s.display, ".") {
		s.display += "."
	}
	return s
}

// Clear resets every field.
func (s State) Clear() State {
	return New()
}

// Backspace drops the last character of the display text. The captured
// operand and pending operator are untouched.
func (s State) Backspace() State {
	if utf8.RuneCountInString(s.display) > 1 {
		_, size := utf8.DecodeLastRuneInString(s.display)
		s.display = s.display[:len(s.display)-size]
	} else {
		s.display = "0"
	}
	return s
}

// PerformOperation applies the pending operator, if any, to the captured
// operand and the display, then records op as the new pending operator.
// A pending "=" carries the captured operand forward unchanged, so pressing
// "=" again does not repeat the previous operation.
func (s State) PerformOperation(op Operator) State {
	if !op.Valid() {
		return s
	}
	input := parseNumber(s.display)

	switch {
	case !s.hasPrevious:
		s.previousValue = input
		s.hasPrevious = true
	case s.pending != OpNone:
		current := s.previousValue
		if math.IsNaN(current) {
			current = 0
		}
		result, err := apply(s.pending, current, input)
		if errors.Is(err, ErrDivisionByZero) {
			return s.fail()
		}
		result = roundResult(result)
		s.display = formatNumber(result)
		s.previousValue = result
	}

	s.awaitingOperand = true
	s.pending = op
	return s
}

func (s State) fail() State {
	return State{
		display:         ErrorToken,
		awaitingOperand: true,
	}
}

func apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return a, nil
	}
}

// Projection is what the presentation layer draws after a transition.
type Projection struct {
	Display   string
	Indicator string
}

// RenderProjection returns the display text and the operation indicator.
func (s State) RenderProjection() Projection {
	p := Projection{Display: s.display}
	if s.pending != OpNone && s.hasPrevious {
		p.Indicator = formatNumber(s.previousValue) + " " + s.pending.Symbol()
	}
	return p
}
