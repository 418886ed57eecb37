// Package calculator implements a four-function calculator with a single
// pending operator.
//
// There is no precedence: "5 + 3 × 2 =" evaluates as (5 + 3) × 2. Each
// operator press folds the pending operation into the left operand.
//
// # State
//
// State is a plain value with pure transitions, usable without any display:
//
//	s := calculator.NewState().InputDigit('6')
//	s, _ = s.InputOperator(calculator.OpDivide)
//	s = s.InputDigit('0')
//	s, err := s.Evaluate() // s.Current == "6", err == calculator.ErrDivisionByZero
//
// # Calculator
//
// Calculator binds a State to an injected Display and Notifier:
//
//	calc := calculator.New(display, calculator.WithNotifier(notifier))
//	calc.HandleKey("7")
//	calc.HandleKey("Enter")
package calculator
