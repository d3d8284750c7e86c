package eval

// Implements the actual evaluator: Eval and Apply, mutually recursive,
// call-by-value. There is no substitution step anywhere -- applying a
// closure extends its captured environment with the argument instead of
// rewriting the body, and variable lookup does the rest.

import (
	"fmt"
	"lam/parser"
)

// Eval evaluates node under the bindings in env.
func Eval(env *Environment, node parser.Expr) (Value, error) {
	switch node := node.(type) {
	case *parser.Var:
		value, ok := env.Lookup(node.Name)
		if !ok {
			return nil, &Error{Kind: UNBOUND_VARIABLE, Name: node.Name}
		}
		return value, nil
	case *parser.Abs:
		// The body is deliberately left unevaluated: nothing happens
		// under a binder until the closure is applied.
		return newClosure(env, node.Param, node.Body), nil
	case *parser.App:
		fn, err := Eval(env, node.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(env, node.Arg)
		if err != nil {
			return nil, err
		}
		return Apply(fn, arg)
	}
	panic(fmt.Sprintf("not implemented yet: %#+v", node))
}

// Apply performs one beta-reduction step: the closure's captured
// environment is extended with the argument bound to the parameter,
// and the body is evaluated there. The caller's environment plays no
// part, which is what makes scoping lexical rather than dynamic.
func Apply(fn Value, arg Value) (Value, error) {
	closure, ok := fn.(*Closure)
	if !ok {
		return nil, &Error{Kind: NOT_APPLICABLE, Target: fn}
	}
	return Eval(closure.env.Extend(closure.param, arg), closure.body)
}
