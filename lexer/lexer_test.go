package lexer_test

import (
	"lam/lexer"
	"testing"
)

func TestLexer(t *testing.T) {
	lex := lexer.New("", `
(\x. x) (\y. y)
λf. λx. f (f x) // church numeral two
apply_twice`)
	lex.ScanTokens()
	if len(lex.Errors) != 0 {
		t.Errorf("failed: expected no errors, got:")
		for _, x := range lex.Errors {
			t.Log(x)
		}
	}
	t.Log(lex.Tokens)
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.TokenType
	}{
		{`\x. x`, []lexer.TokenType{lexer.LAMBDA, lexer.IDENTIFIER, lexer.DOT, lexer.IDENTIFIER, lexer.EOF}},
		{`λx. x`, []lexer.TokenType{lexer.LAMBDA, lexer.IDENTIFIER, lexer.DOT, lexer.IDENTIFIER, lexer.EOF}},
		{`(f x)`, []lexer.TokenType{lexer.LEFT_PAREN, lexer.IDENTIFIER, lexer.IDENTIFIER, lexer.RIGHT_PAREN, lexer.EOF}},
		{"x // y z\n", []lexer.TokenType{lexer.IDENTIFIER, lexer.EOF}},
		{"", []lexer.TokenType{lexer.EOF}},
	}
	for i, test := range tests {
		lex := lexer.New("", test.input)
		lex.ScanTokens()
		if len(lex.Errors) != 0 {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			for _, x := range lex.Errors {
				t.Log(x)
			}
			continue
		}
		if len(lex.Tokens) != len(test.expected) {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=%d tokens, got=%d", len(test.expected), len(lex.Tokens))
			continue
		}
		for j, typ := range test.expected {
			if lex.Tokens[j].Type != typ {
				t.Errorf("tests[%d] (%q)", i, test.input)
				t.Errorf("tokens[%d]: expected=%s, got=%s", j, typ, lex.Tokens[j].Type)
			}
		}
	}
}

func TestLexerBad(t *testing.T) {
	badInputs := []string{
		"x & y",
		"x | y",
		"λx. 42",
		"f / g",
		"\xc3\x28",
		"abc def \xf0\x28\x8c\xbc uu \xc3\x28 omg",
	}
	for i, input := range badInputs {
		lex := lexer.New("<test>", input)
		lex.ScanTokens()
		if len(lex.Errors) == 0 {
			t.Errorf("tests[%d] (%q) failed", i, input)
			t.Errorf("expected errors, got none")
		}
		for _, x := range lex.Errors {
			t.Logf("%s\n", &x)
		}
	}
}
