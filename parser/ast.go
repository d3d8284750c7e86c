package parser

import "lam/lexer"

// The expression model: a term is a variable reference, an
// abstraction, or an application. Nodes are never mutated after
// construction.

type Expr interface {
	String() string
	Tok() lexer.Token
	expr()
}

// Var is a reference to a bound or free identifier.
type Var struct {
	Token lexer.Token
	Name  string
}

// Abs is a function literal binding Param within Body.
type Abs struct {
	Token lexer.Token // the '\' or 'λ' token
	Param string
	Body  Expr
}

// App applies Fn to Arg.
type App struct {
	Fn  Expr
	Arg Expr
}

func (node *Var) Tok() lexer.Token { return node.Token }
func (node *Abs) Tok() lexer.Token { return node.Token }
func (node *App) Tok() lexer.Token { return node.Fn.Tok() }

func (node *Var) expr() {}
func (node *Abs) expr() {}
func (node *App) expr() {}

// Constructors for building terms programmatically, without going
// through the lexer. Tokens are left zeroed.

func NewVar(name string) *Var             { return &Var{Name: name} }
func NewAbs(param string, body Expr) *Abs { return &Abs{Param: param, Body: body} }
func NewApp(fn Expr, arg Expr) *App       { return &App{Fn: fn, Arg: arg} }
