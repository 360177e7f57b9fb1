package calculator

import "fmt"

// EventKind identifies one of the discrete inputs the calculator accepts.
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDecimal
	EventOperator
	EventClear
	EventBackspace
)

// Event is a single input from a key press, a button click or a script.
type Event struct {
	Kind     EventKind
	Digit    int
	Operator Operator
}

// Digit returns the event for digit d.
func Digit(d int) Event {
	return Event{Kind: EventDigit, Digit: d}
}

// Operation returns the event for selecting op.
func Operation(op Operator) Event {
	return Event{Kind: EventOperator, Operator: op}
}

// Decimal returns the decimal point event.
func Decimal() Event {
	return Event{Kind: EventDecimal}
}

// Clear returns the event that resets the calculator.
func Clear() Event {
	return Event{Kind: EventClear}
}

// Backspace returns the event that erases the last display character.
func Backspace() Event {
	return Event{Kind: EventBackspace}
}

func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return fmt.Sprintf("digit(%d)", e.Digit)
	case EventDecimal:
		return "decimal"
	case EventOperator:
		return fmt.Sprintf("operator(%s)", e.Operator)
	case EventClear:
		return "clear"
	case EventBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// Apply dispatches e to the matching transition. Unknown events leave the
// state unchanged.
func (s State) Apply(e Event) State {
	switch e.Kind {
	case EventDigit:
		return s.InputDigit(e.Digit)
	case EventDecimal:
		return s.InputDecimal()
	case EventOperator:
		return s.PerformOperation(e.Operator)
	case EventClear:
		return s.Clear()
	case EventBackspace:
		return s.Backspace()
	default:
		return s
	}
}
