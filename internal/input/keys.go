package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/rail44/calc/internal/calculator"
)

// Binding documents one key mapping.
type Binding struct {
	Keys   []string
	Action string
}

var namedKeys = map[string]calculator.Event{
	"enter":     calculator.Operation(calculator.OpEquals),
	"esc":       calculator.Clear(),
	"escape":    calculator.Clear(),
	"clear":     calculator.Clear(),
	"backspace": calculator.Backspace(),
	"delete":    calculator.Backspace(),
	"del":       calculator.Backspace(),
}

var charKeys = map[string]calculator.Event{
	".": calculator.Decimal(),
	"=": calculator.Operation(calculator.OpEquals),
	"+": calculator.Operation(calculator.OpAdd),
	"-": calculator.Operation(calculator.OpSubtract),
	"*": calculator.Operation(calculator.OpMultiply),
	"/": calculator.Operation(calculator.OpDivide),
	"c": calculator.Clear(),
	"C": calculator.Clear(),
}

// FromKey maps a key name to a calculator event. Single characters are
// matched exactly, longer names case-insensitively. Unrecognized keys
// return false.
func FromKey(name string) (calculator.Event, bool) {
	if len(name) == 1 {
		if name[0] >= '0' && name[0] <= '9' {
			return calculator.Digit(int(name[0] - '0')), true
		}
		e, ok := charKeys[name]
		return e, ok
	}
	e, ok := namedKeys[strings.ToLower(name)]
	return e, ok
}

// IsNamedKey reports whether name is a multi-character key name.
func IsNamedKey(name string) bool {
	_, ok := namedKeys[strings.ToLower(name)]
	return ok
}

// Bindings lists the keyboard layout for help output.
func Bindings() []Binding {
	return []Binding{
		{Keys: []string{"0-9"}, Action: "digit"},
		{Keys: []string{"."}, Action: "decimal point"},
		{Keys: []string{"+"}, Action: "add"},
		{Keys: []string{"-"}, Action: "subtract"},
		{Keys: []string{"*"}, Action: "multiply (×)"},
		{Keys: []string{"/"}, Action: "divide (÷)"},
		{Keys: []string{"enter", "="}, Action: "equals"},
		{Keys: []string{"esc", "c", "C"}, Action: "clear"},
		{Keys: []string{"backspace", "delete"}, Action: "backspace"},
	}
}

// WriteBindings prints the key bindings as a two column table.
func WriteBindings(w io.Writer) error {
	for _, b := range Bindings() {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", strings.Join(b.Keys, ", "), b.Action); err != nil {
			return err
		}
	}
	return nil
}
