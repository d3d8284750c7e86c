package eval

import "fmt"

type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	// UNBOUND_VARIABLE: a Var was evaluated against an environment
	// with no binding for its name.
	UNBOUND_VARIABLE
	// NOT_APPLICABLE: a non-function value was applied. Unreachable
	// while closures are the only variant, but Apply must not assume
	// that stays true.
	NOT_APPLICABLE
)

// Error is the only way evaluation fails. It is never recovered inside
// the evaluator: it unwinds through every enclosing Eval/Apply call to
// the top-level caller. Kind and the payload fields are the contract;
// the message string is presentation only.
type Error struct {
	Kind   ErrorKind
	Name   string // the offending identifier, for UNBOUND_VARIABLE
	Target Value  // the value that was applied, for NOT_APPLICABLE
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	switch e.Kind {
	case UNBOUND_VARIABLE:
		return fmt.Sprintf("unbound variable: %s", e.Name)
	case NOT_APPLICABLE:
		return fmt.Sprintf("not applicable: %s", e.Target.Type())
	}
	panic(fmt.Sprintf("unknown error kind: %d", e.Kind))
}
