package calculator

// Operator is a binary operation selected on the keypad, or "=".
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpEquals
)

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "×",
	OpDivide:   "÷",
	OpEquals:   "=",
}

// Symbol returns the symbol shown in the operation indicator.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return "none"
}

// Valid reports whether o can be passed to PerformOperation.
func (o Operator) Valid() bool {
	_, ok := operatorSymbols[o]
	return ok
}
