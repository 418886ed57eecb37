package calculator

// ActionKind identifies what a key press does.
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimal
	ActionOperator
	ActionEvaluate
	ActionClearAll
	ActionClearEntry
	ActionBackspace
)

// Action is a decoded key press.
type Action struct {
	Kind     ActionKind
	Digit    byte
	Operator Operator
}

// KeyAction decodes a key name as reported by the terminal or a browser-style
// key event. Only these spellings are recognised:
//
//	digits                      0-9
//	operators                   + - * / − × ÷ x
//	decimal point               . ,
//	evaluate                    = Enter enter
//	clear all                   Escape esc c C
//	clear entry                 Delete delete e E
//	backspace                   Backspace backspace
func KeyAction(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Action{Kind: ActionDigit, Digit: key[0]}, true
	}
	if op, ok := ParseOperator(key); ok {
		return Action{Kind: ActionOperator, Operator: op}, true
	}

	switch key {
	case ".", ",":
		return Action{Kind: ActionDecimal}, true
	case "=", "Enter", "enter":
		return Action{Kind: ActionEvaluate}, true
	case "Escape", "esc", "c", "C":
		return Action{Kind: ActionClearAll}, true
	case "Delete", "delete", "e", "E":
		return Action{Kind: ActionClearEntry}, true
	case "Backspace", "backspace":
		return Action{Kind: ActionBackspace}, true
	}
	return Action{}, false
}
