package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(s State, events ...Event) State {
	for _, e := range events {
		s = s.Apply(e)
	}
	return s
}

func digits(ds ...int) []Event {
	events := make([]Event, 0, len(ds))
	for _, d := range ds {
		events = append(events, Digit(d))
	}
	return events
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, "0", s.Display())
	_, ok := s.PreviousValue()
	assert.False(t, ok)
	assert.Equal(t, OpNone, s.Pending())
	assert.False(t, s.AwaitingOperand())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.NoError(t, s.Err())
}

func TestInputDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits []int
		want   string
	}{
		{"single", []int{7}, "7"},
		{"leading zeros suppressed", []int{0, 0, 5}, "5"},
		{"zero stays zero", []int{0, 0, 0}, "0"},
		{"concatenates", []int{1, 2, 0, 3}, "1203"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(New(), digits(tt.digits...)...)
			assert.Equal(t, tt.want, s.Display())
		})
	}
}

func TestInputDigitOutOfRangeIsIgnored(t *testing.T) {
	s := run(New(), Digit(4), Digit(10), Digit(-1))
	assert.Equal(t, "4", s.Display())
}

func TestInputDigitStartsFreshOperand(t *testing.T) {
	s := run(New(), Digit(4), Operation(OpAdd))
	require.True(t, s.AwaitingOperand())

	s = s.InputDigit(9)
	assert.Equal(t, "9", s.Display())
	assert.False(t, s.AwaitingOperand())
}

func TestInputDecimal(t *testing.T) {
	s := New().InputDecimal()
	assert.Equal(t, "0.", s.Display())

	again := s.InputDecimal()
	assert.Equal(t, s.Display(), again.Display())

	s = run(again, Digit(5), Decimal())
	assert.Equal(t, "0.5", s.Display())
}

func TestInputDecimalAfterOperator(t *testing.T) {
	s := run(New(), Digit(3), Operation(OpMultiply), Decimal(), Digit(5))
	assert.Equal(t, "0.5", s.Display())
}

func TestClear(t *testing.T) {
	s := run(New(), Digit(8), Operation(OpSubtract), Digit(2), Clear())
	assert.Equal(t, New(), s)
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{"single char floors at zero", digits(7), "0"},
		{"zero stays zero", nil, "0"},
		{"removes last digit", digits(1, 2, 3), "12"},
		{"removes decimal point", []Event{Digit(1), Decimal()}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(New(), tt.events...).Backspace()
			assert.Equal(t, tt.want, s.Display())
		})
	}
}

func TestBackspaceKeepsOperand(t *testing.T) {
	s := run(New(), Digit(6), Operation(OpAdd), Digit(4), Digit(2), Backspace())
	assert.Equal(t, "4", s.Display())
	prev, ok := s.PreviousValue()
	require.True(t, ok)
	assert.Equal(t, 6.0, prev)
	assert.Equal(t, OpAdd, s.Pending())
}

func TestBackspaceOnErrorToken(t *testing.T) {
	s := run(New(), Digit(1), Operation(OpDivide), Digit(0), Operation(OpEquals), Backspace())
	assert.Equal(t, "Erro", s.Display())
}

func TestAddThenEquals(t *testing.T) {
	s := run(New(), Digit(2), Operation(OpAdd), Digit(3), Operation(OpEquals))
	assert.Equal(t, "5", s.Display())
	assert.Equal(t, Projection{Display: "5", Indicator: "5 ="}, s.RenderProjection())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{"subtract", []Event{Digit(9), Operation(OpSubtract), Digit(4), Operation(OpEquals)}, "5"},
		{"negative result", []Event{Digit(3), Operation(OpSubtract), Digit(8), Operation(OpEquals)}, "-5"},
		{"multiply", []Event{Digit(6), Operation(OpMultiply), Digit(7), Operation(OpEquals)}, "42"},
		{"divide", []Event{Digit(7), Operation(OpDivide), Digit(2), Operation(OpEquals)}, "3.5"},
		{"one third rounded", []Event{Digit(1), Operation(OpDivide), Digit(3), Operation(OpEquals)}, "0.33333333"},
		{"two thirds rounded", []Event{Digit(2), Operation(OpDivide), Digit(3), Operation(OpEquals)}, "0.66666667"},
		{"trailing point operand", []Event{Digit(5), Decimal(), Operation(OpAdd), Digit(1), Operation(OpEquals)}, "6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(New(), tt.events...)
			assert.Equal(t, tt.want, s.Display())
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	s := run(New(), Digit(1), Digit(0), Operation(OpDivide), Digit(0), Operation(OpEquals))
	assert.Equal(t, ErrorToken, s.Display())
	assert.ErrorIs(t, s.Err(), ErrDivisionByZero)
	assert.Equal(t, PhaseError, s.Phase())
	assert.True(t, s.AwaitingOperand())
	assert.Equal(t, OpNone, s.Pending())
	_, ok := s.PreviousValue()
	assert.False(t, ok)
	assert.Empty(t, s.RenderProjection().Indicator)

	s = s.InputDigit(5)
	assert.Equal(t, "5", s.Display())
	assert.NoError(t, s.Err())
}

func TestDivisionByZeroDoesNotRecordOperator(t *testing.T) {
	s := run(New(), Digit(4), Operation(OpDivide), Digit(0), Operation(OpAdd))
	assert.Equal(t, ErrorToken, s.Display())
	assert.Equal(t, OpNone, s.Pending())
}

func TestOperatorAfterError(t *testing.T) {
	s := run(New(), Digit(4), Operation(OpDivide), Digit(0), Operation(OpEquals))

	// The error token parses as NaN and is captured as the operand.
	s = s.PerformOperation(OpAdd)
	assert.Equal(t, "NaN +", s.RenderProjection().Indicator)

	// A NaN operand counts as zero when the pending operator is applied.
	s = run(s, Digit(5), Operation(OpEquals))
	assert.Equal(t, "5", s.Display())
}

func TestPrecisionRounding(t *testing.T) {
	s := run(New(),
		Digit(0), Decimal(), Digit(1),
		Operation(OpAdd),
		Digit(0), Decimal(), Digit(2),
		Operation(OpEquals))
	assert.Equal(t, "0.3", s.Display())
	prev, _ := s.PreviousValue()
	assert.Equal(t, 0.3, prev)
}

func TestChainedOperations(t *testing.T) {
	s := run(New(), Digit(5), Operation(OpAdd), Digit(3), Operation(OpMultiply))

	prev, ok := s.PreviousValue()
	require.True(t, ok)
	assert.Equal(t, 8.0, prev)
	assert.Equal(t, "8", s.Display())
	assert.Equal(t, "8 ×", s.RenderProjection().Indicator)
	assert.Equal(t, PhaseOperatorPending, s.Phase())

	s = run(s, Digit(2), Operation(OpEquals))
	assert.Equal(t, "16", s.Display())
}

func TestRepeatedEqualsDoesNotRepeatOperation(t *testing.T) {
	s := run(New(), Digit(2), Operation(OpAdd), Digit(3), Operation(OpEquals), Operation(OpEquals))
	assert.Equal(t, "5", s.Display())
	assert.Equal(t, OpEquals, s.Pending())
}

func TestEqualsPendingDiscardsNewOperand(t *testing.T) {
	s := run(New(), Digit(5), Operation(OpEquals), Digit(3), Operation(OpEquals))
	assert.Equal(t, "5", s.Display())
	assert.Equal(t, "5 =", s.RenderProjection().Indicator)
}

func TestFirstOperatorCapturesOperand(t *testing.T) {
	s := run(New(), Digit(0), Operation(OpSubtract))
	prev, ok := s.PreviousValue()
	require.True(t, ok)
	assert.Equal(t, 0.0, prev)
	assert.Equal(t, "0 -", s.RenderProjection().Indicator)
}

func TestInvalidOperatorIsIgnored(t *testing.T) {
	before := run(New(), Digit(3))
	after := before.PerformOperation(Operator(99))
	assert.Equal(t, before, after)

	after = before.PerformOperation(OpNone)
	assert.Equal(t, before, after)
}

func TestUnknownEventIsIgnored(t *testing.T) {
	before := run(New(), Digit(3))
	assert.Equal(t, before, before.Apply(Event{}))
}

func TestDisplayInvariants(t *testing.T) {
	events := []Event{
		Decimal(), Decimal(), Digit(1), Decimal(), Digit(2), Backspace(), Backspace(), Backspace(), Backspace(),
		Digit(9), Operation(OpDivide), Decimal(), Digit(3), Operation(OpMultiply), Digit(0), Operation(OpEquals),
		Backspace(), Clear(), Backspace(),
	}
	s := New()
	for _, e := range events {
		s = s.Apply(e)
		assert.NotEmpty(t, s.Display(), "after %s", e)
		assert.LessOrEqual(t, countDots(s.Display()), 1, "after %s", e)
		if s.Pending() == OpNone && s.Err() != nil {
			_, ok := s.PreviousValue()
			assert.False(t, ok, "after %s", e)
		}
	}
}

func countDots(s string) int {
	n := 0
	for _, r := range s {
		if r == '.' {
			n++
		}
	}
	return n
}

func TestPhase(t *testing.T) {
	assert.Equal(t, PhaseIdle, New().Phase())
	assert.Equal(t, PhaseOperandEntered, New().InputDigit(4).Phase())
	assert.Equal(t, PhaseOperatorPending, run(New(), Digit(4), Operation(OpAdd)).Phase())
	assert.Equal(t, PhaseError, run(New(), Digit(4), Operation(OpDivide), Digit(0), Operation(OpEquals)).Phase())
}
