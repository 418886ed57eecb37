package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDivisionByZero is reported when the pending operator is a division and
// the second operand is zero. The first operand is kept as the result.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// Operator is a pending binary operator.
type Operator rune

const (
	OpNone     Operator = 0
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

// String returns the symbol shown on the keypad.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// ParseOperator accepts the keyboard symbols and the keypad glyphs.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "×", "x":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return OpNone, false
}

// State is the whole calculator: the entry being typed, the captured left
// operand and the pending operator.
//
// State is a value; every transition returns the next State and leaves the
// receiver untouched.
type State struct {
	// Current is the text on the display. Never empty.
	Current string

	// Previous is the left operand, valid only when HasPrevious is set.
	Previous    float64
	HasPrevious bool

	// Operator is the pending operator, OpNone when idle.
	Operator Operator

	// AwaitingNewEntry makes the next digit start a fresh number.
	AwaitingNewEntry bool
}

// NewState returns the power-on state: "0" on the display, nothing pending.
func NewState() State {
	return State{Current: "0"}
}

// Display returns the text to render.
func (s State) Display() string {
	return s.Current
}

// InputDigit types one digit.
func (s State) InputDigit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	if s.AwaitingNewEntry {
		s.Current = string(d)
		s.AwaitingNewEntry = false
		return s
	}
	if s.Current == "0" {
		s.Current = string(d)
	} else {
		s.Current += string(d)
	}
	return s
}

// InputDecimalPoint types a decimal point. A second point in the same number
// is ignored.
func (s State) InputDecimalPoint() State {
	if s.AwaitingNewEntry {
		s.Current = "0."
		s.AwaitingNewEntry = false
		return s
	}
	if !strings.Contains(s.Current, ".") {
		s.Current += "."
	}
	return s
}

// InputOperator commits the current entry and makes op the pending operator.
// When an operator is already pending it is applied first, so a chain of
// operators folds strictly left to right.
//
// On division by zero the returned State shows the unchanged left operand and
// the error is ErrDivisionByZero; the State is still valid and should be kept.
func (s State) InputOperator(op Operator) (State, error) {
	value := s.value()

	var err error
	if !s.HasPrevious {
		s.Previous = value
		s.HasPrevious = true
	} else if s.Operator != OpNone {
		var result float64
		result, err = Compute(s.Previous, value, s.Operator)
		s.Current = FormatNumber(result)
		s.Previous = result
	}

	s.AwaitingNewEntry = true
	s.Operator = op
	return s, err
}

// Evaluate applies the pending operator ("="). It is a no-op unless both a
// left operand and an operator are pending.
func (s State) Evaluate() (State, error) {
	if !s.HasPrevious || s.Operator == OpNone {
		return s, nil
	}

	result, err := Compute(s.Previous, s.value(), s.Operator)
	s.Current = FormatNumber(result)
	s.Previous = 0
	s.HasPrevious = false
	s.Operator = OpNone
	s.AwaitingNewEntry = true
	return s, err
}

// ClearAll resets every field.
func (s State) ClearAll() State {
	return NewState()
}

// ClearEntry resets only the entry being typed.
func (s State) ClearEntry() State {
	s.Current = "0"
	return s
}

// Backspace drops the last character of the entry. An entry that would become
// empty, or a bare sign, becomes "0".
func (s State) Backspace() State {
	if len(s.Current) <= 1 {
		s.Current = "0"
		return s
	}
	s.Current = s.Current[:len(s.Current)-1]
	if s.Current == "-" {
		s.Current = "0"
	}
	return s
}

// value parses the entry. Partial literals such as "3." parse as 3; anything
// unparsable counts as 0.
func (s State) value() float64 {
	v, err := strconv.ParseFloat(s.Current, 64)
	if err != nil {
		return 0
	}
	return v
}

// Compute applies op to a and b.
func Compute(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return a, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return b, nil
	}
}

// FormatNumber renders a result the way a pocket calculator display does:
// the shortest digits that round-trip, switching to exponent form for very
// large or very small magnitudes.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// "1e-07" -> "1e-7"
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
