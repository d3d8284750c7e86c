package parser

import "lam/lexer"

type Parser struct {
	filename string
	tokens   []lexer.Token
	Errors   []ParserError
	curr     int // how many we have consumed.
}

func New(fn string, tokens []lexer.Token) *Parser {
	return &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []ParserError{},
		curr:     0,
	}
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// match consumes the token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.consume()
			return true
		}
	}
	return false
}

// ===========
// entry point
// ===========

// the grammar:
//
//   term → abstraction | application
//   abstraction → ("\" | "λ") IDENT "." term
//   application → atom atom*
//   atom → IDENT | abstraction | "(" term ")"
//
// application is by juxtaposition and associates to the left; an
// abstraction's body extends as far right as possible.

// Parse parses a single term, and expects the input to be exhausted
// afterwards. On error it returns nil, with the error in p.Errors.
func (p *Parser) Parse() (expr Expr) {
	defer func() {
		// All top-level calls to parse terms have to recover from
		// ParserError panics; anything else is a real bug.
		if rv := recover(); rv != nil {
			if _, ok := rv.(ParserError); ok {
				expr = nil
				return
			}
			panic(rv)
		}
	}()
	expr = p.term()
	if !p.isAtEnd() {
		p.error(p.peek(), "unexpected %s after expression", p.peek().Type)
	}
	return
}

func (p *Parser) term() Expr {
	expr := p.atom()
	for p.check(lexer.IDENTIFIER) || p.check(lexer.LEFT_PAREN) || p.check(lexer.LAMBDA) {
		arg := p.atom()
		expr = &App{Fn: expr, Arg: arg}
	}
	return expr
}

func (p *Parser) atom() Expr {
	switch {
	case p.check(lexer.LAMBDA):
		return p.abstraction()
	case p.check(lexer.IDENTIFIER):
		tok := p.consume()
		return &Var{Token: tok, Name: tok.Lexeme}
	case p.match(lexer.LEFT_PAREN):
		expr := p.term()
		p.expect(lexer.RIGHT_PAREN, "unmatched (")
		return expr
	}
	p.error(p.peek(), "not an expression: %s", p.peek().Type)
	return nil
}

func (p *Parser) abstraction() Expr {
	token := p.consume() // the lambda token
	ident := p.expect(lexer.IDENTIFIER, "expected a parameter name")
	p.expect(lexer.DOT, "expected . after parameter name")
	body := p.term()
	return &Abs{Token: token, Param: ident.Lexeme, Body: body}
}
