// Package resolver implements a static free-variable check: it walks a
// term and reports every variable occurrence that no enclosing
// abstraction binds, with its source position. The evaluator reports
// the same condition at runtime; resolving first catches it before any
// reduction happens, which is mainly useful interactively.
package resolver

import (
	"fmt"
	"lam/lexer"
	"lam/parser"
)

type ResolverError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (re ResolverError) Error() string { return re.String() }
func (re ResolverError) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", re.Filename, re.Token.Line, re.Token.Column, re.Message)
}

type Resolver struct {
	filename string
	// stack of parameter names bound by the abstractions enclosing
	// the node being visited, innermost last.
	bound  []string
	Errors []ResolverError
}

func New(filename string) *Resolver {
	return &Resolver{
		filename: filename,
		bound:    []string{},
		Errors:   []ResolverError{},
	}
}

func (r *Resolver) push(name string) { r.bound = append(r.bound, name) }
func (r *Resolver) pop()             { r.bound = r.bound[:len(r.bound)-1] }

func (r *Resolver) isBound(name string) bool {
	for i := len(r.bound) - 1; i >= 0; i-- {
		if r.bound[i] == name {
			return true
		}
	}
	return false
}

func (r *Resolver) err(tok lexer.Token, msg string) {
	r.Errors = append(r.Errors, ResolverError{
		Filename: r.filename,
		Token:    tok,
		Message:  msg,
	})
}

// Resolve checks the given term. It may be called on multiple terms;
// errors accumulate.
func (r *Resolver) Resolve(node parser.Expr) {
	r.resolve(node)
	if len(r.bound) != 0 {
		panic("something gone wrong!")
	}
}

func (r *Resolver) resolve(node parser.Expr) {
	switch node := node.(type) {
	case *parser.Var:
		if !r.isBound(node.Name) {
			r.err(node.Token, fmt.Sprintf("unbound variable: %s", node.Name))
		}
	case *parser.Abs:
		r.push(node.Param)
		r.resolve(node.Body)
		r.pop()
	case *parser.App:
		r.resolve(node.Fn)
		r.resolve(node.Arg)
	default:
		panic(fmt.Sprintf("not implemented yet: %#+v", node))
	}
}
