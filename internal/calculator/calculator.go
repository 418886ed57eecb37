package calculator

import (
	"io"
	"log/slog"
)

// Display receives the text the calculator wants on screen.
type Display interface {
	SetText(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

// SetText implements Display.
func (f DisplayFunc) SetText(text string) { f(text) }

// Notifier receives user-facing errors. It replaces a blocking alert: the
// calculator reports and carries on.
type Notifier interface {
	Notify(err error)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(err error)

// Notify implements Notifier.
func (f NotifierFunc) Notify(err error) { f(err) }

// Option configures a Calculator.
type Option func(*Calculator)

// WithNotifier sets where divide-by-zero notifications go.
func WithNotifier(n Notifier) Option {
	return func(c *Calculator) {
		c.notifier = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// Calculator binds a State to a Display. Each input method applies one
// transition and pushes the new display text.
//
// Example:
//
//	calc := calculator.New(calculator.DisplayFunc(func(s string) { fmt.Println(s) }))
//	calc.Keys("5+3+2=") // prints ... 10
type Calculator struct {
	state    State
	display  Display
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Calculator in its initial state and renders "0".
func New(display Display, opts ...Option) *Calculator {
	c := &Calculator{
		state:   NewState(),
		display: display,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.render()
	return c
}

// State returns a copy of the current state.
func (c *Calculator) State() State {
	return c.state
}

// Display returns the current display text.
func (c *Calculator) Display() string {
	return c.state.Display()
}

func (c *Calculator) InputDigit(d byte) {
	c.apply(c.state.InputDigit(d), nil)
}

func (c *Calculator) InputDecimalPoint() {
	c.apply(c.state.InputDecimalPoint(), nil)
}

func (c *Calculator) InputOperator(op Operator) {
	c.apply(c.state.InputOperator(op))
}

func (c *Calculator) Evaluate() {
	c.apply(c.state.Evaluate())
}

func (c *Calculator) ClearAll() {
	c.apply(c.state.ClearAll(), nil)
}

func (c *Calculator) ClearEntry() {
	c.apply(c.state.ClearEntry(), nil)
}

func (c *Calculator) Backspace() {
	c.apply(c.state.Backspace(), nil)
}

// HandleKey dispatches a keyboard key. It reports whether the key was
// recognised.
func (c *Calculator) HandleKey(key string) bool {
	action, ok := KeyAction(key)
	if !ok {
		return false
	}
	c.Do(action)
	return true
}

// Keys replays every character of seq as a key press. Unknown characters are
// skipped. Returns the final display text.
func (c *Calculator) Keys(seq string) string {
	for _, r := range seq {
		key := string(r)
		switch r {
		case '\n', '\r':
			key = "Enter"
		case '\b':
			key = "Backspace"
		}
		c.HandleKey(key)
	}
	return c.Display()
}

// Do applies a decoded action.
func (c *Calculator) Do(a Action) {
	switch a.Kind {
	case ActionDigit:
		c.InputDigit(a.Digit)
	case ActionDecimal:
		c.InputDecimalPoint()
	case ActionOperator:
		c.InputOperator(a.Operator)
	case ActionEvaluate:
		c.Evaluate()
	case ActionClearAll:
		c.ClearAll()
	case ActionClearEntry:
		c.ClearEntry()
	case ActionBackspace:
		c.Backspace()
	}
}

func (c *Calculator) apply(next State, err error) {
	c.state = next
	c.render()
	if err != nil {
		c.logger.Warn("calculation failed", slog.String("error", err.Error()), slog.String("display", next.Current))
		if c.notifier != nil {
			c.notifier.Notify(err)
		}
	}
}

func (c *Calculator) render() {
	if c.display != nil {
		c.display.SetText(c.state.Display())
	}
}
