package parser

import (
	"fmt"
	"lam/lexer"
)

// Represents a parsing error. We use this internally to signal that we
// cannot continue parsing the current term.
type ParserError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (e ParserError) Error() string { return e.String() }
func (e ParserError) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Token.Line, e.Token.Column, e.Message)
}

func (p *Parser) error(tok lexer.Token, s string, args ...interface{}) {
	err := ParserError{
		Filename: p.filename,
		Token:    tok,
		Message:  fmt.Sprintf(s, args...),
	}
	p.Errors = append(p.Errors, err)
	panic(err)
}

func (p *Parser) expect(typ lexer.TokenType, s string, args ...interface{}) lexer.Token {
	if !p.match(typ) {
		p.error(p.peek(), s, args...)
	}
	return p.previous()
}
