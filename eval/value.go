package eval

import "lam/parser"

//go:generate stringer -type=ValueType

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_CLOSURE
)

// Value is the result of an evaluation. Closures are the only variant
// for now; the evaluator is written against the interface so that base
// values can be added without touching its control structure.
type Value interface {
	Type() ValueType
}

// Closure pairs the parameter and (unevaluated) body of an abstraction
// with the environment in effect at its definition. Free variables in
// the body resolve through that environment, no matter where the
// closure is later applied.
//
// Closures are only ever produced by the evaluator; callers treat them
// as opaque, except through Inspect.
type Closure struct {
	env   *Environment
	param string
	body  parser.Expr
}

func newClosure(env *Environment, param string, body parser.Expr) *Closure {
	return &Closure{
		env:   env,
		param: param,
		body:  body,
	}
}

func (v *Closure) Type() ValueType { return VT_CLOSURE }
