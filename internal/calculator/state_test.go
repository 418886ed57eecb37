package calculator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, "0", s.Current)
	assert.False(t, s.HasPrevious)
	assert.Equal(t, OpNone, s.Operator)
	assert.False(t, s.AwaitingNewEntry)
}

func TestInputDigit(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
	}{
		{"single", "7", "7"},
		{"leading zero replaced", "05", "5"},
		{"zeros collapse", "000", "0"},
		{"multi digit", "1203", "1203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for i := 0; i < len(tt.digits); i++ {
				s = s.InputDigit(tt.digits[i])
			}
			assert.Equal(t, tt.want, s.Current)
		})
	}
}

func TestInputDigit_IgnoresNonDigits(t *testing.T) {
	s := NewState().InputDigit('a')
	assert.Equal(t, "0", s.Current)
}

func TestInputDecimalPoint(t *testing.T) {
	s := NewState().InputDecimalPoint()
	assert.Equal(t, "0.", s.Current)

	s = s.InputDigit('5').InputDecimalPoint().InputDigit('2').InputDecimalPoint()
	assert.Equal(t, "0.52", s.Current)
}

func TestInputDecimalPoint_AtMostOnePerNumber(t *testing.T) {
	inputs := []string{"1.2.3", "..5", "0.0.0.", "12..", ".1.+.2.="}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c := New(nil)
			for _, r := range in {
				c.HandleKey(string(r))
				assert.LessOrEqual(t, strings.Count(c.Display(), "."), 1)
			}
		})
	}
}

func TestInputDecimalPoint_AfterOperatorStartsFresh(t *testing.T) {
	s := NewState().InputDigit('4')
	s, err := s.InputOperator(OpAdd)
	require.NoError(t, err)

	s = s.InputDecimalPoint()
	assert.Equal(t, "0.", s.Current)
	assert.False(t, s.AwaitingNewEntry)
}

func TestInputOperator_CapturesFirstOperand(t *testing.T) {
	s := NewState().InputDigit('9')
	s, err := s.InputOperator(OpMultiply)
	require.NoError(t, err)

	assert.True(t, s.HasPrevious)
	assert.Equal(t, 9.0, s.Previous)
	assert.Equal(t, OpMultiply, s.Operator)
	assert.True(t, s.AwaitingNewEntry)
	assert.Equal(t, "9", s.Current)
}

func TestChaining_LeftFold(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"5+3+2=", "10"},
		{"2+3*4=", "20"},
		{"10-4/2=", "3"},
		{"1.5*4=", "6"},
		{"7/2=", "3.5"},
		{"3-5=", "-2"},
		{"1+2=", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			c := New(nil)
			assert.Equal(t, tt.want, c.Keys(tt.keys))
		})
	}
}

func TestChaining_ShowsIntermediateResult(t *testing.T) {
	c := New(nil)
	c.Keys("5+3+")
	assert.Equal(t, "8", c.Display())
	assert.Equal(t, 8.0, c.State().Previous)
}

func TestEvaluate_NoopWithoutPendingOperation(t *testing.T) {
	s := NewState().InputDigit('4')
	next, err := s.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestEvaluate_ClearsPending(t *testing.T) {
	c := New(nil)
	c.Keys("4*5=")

	s := c.State()
	assert.Equal(t, "20", s.Current)
	assert.False(t, s.HasPrevious)
	assert.Equal(t, OpNone, s.Operator)
	assert.True(t, s.AwaitingNewEntry)

	// the next digit starts a new number
	c.HandleKey("3")
	assert.Equal(t, "3", c.Display())
}

func TestDivisionByZero(t *testing.T) {
	var notified []error
	c := New(nil, WithNotifier(NotifierFunc(func(err error) {
		notified = append(notified, err)
	})))

	c.Keys("6/0=")

	assert.Equal(t, "6", c.Display())
	require.Len(t, notified, 1)
	assert.ErrorIs(t, notified[0], ErrDivisionByZero)

	// state is still usable
	c.Keys("+1=")
	assert.Equal(t, "7", c.Display())
	assert.Len(t, notified, 1)
}

func TestDivisionByZero_WhileChaining(t *testing.T) {
	var count int
	c := New(nil, WithNotifier(NotifierFunc(func(error) { count++ })))

	c.Keys("8/0+2=")

	assert.Equal(t, "10", c.Display())
	assert.Equal(t, 1, count)
}

func TestCompute(t *testing.T) {
	got, err := Compute(6, 0, OpDivide)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, 6.0, got)

	got, err = Compute(6, 3, OpDivide)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = Compute(6, 3, OpNone)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestClearAll(t *testing.T) {
	c := New(nil)
	c.Keys("12+3")
	c.ClearAll()
	assert.Equal(t, NewState(), c.State())
}

func TestClearEntry(t *testing.T) {
	c := New(nil)
	c.Keys("12+34")
	c.ClearEntry()

	s := c.State()
	assert.Equal(t, "0", s.Current)
	assert.True(t, s.HasPrevious)
	assert.Equal(t, OpAdd, s.Operator)

	c.Keys("5=")
	assert.Equal(t, "17", c.Display())
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"0", "0"},
		{"7", "0"},
		{"12", "1"},
		{"3.", "3"},
		{"-5", "0"},
		{"-52", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			s := State{Current: tt.current}
			assert.Equal(t, tt.want, s.Backspace().Current)
		})
	}
}

func TestBackspace_NeverEmpty(t *testing.T) {
	c := New(nil)
	c.Keys("123")
	for i := 0; i < 10; i++ {
		c.Backspace()
		assert.NotEmpty(t, c.Display())
	}
	assert.Equal(t, "0", c.Display())
}

func TestFormatNumber(t *testing.T) {
	tenth, fifth := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{tenth + fifth, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{123456789012, "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}
