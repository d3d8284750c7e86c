package main

// implements a lam repl

import (
	"fmt"
	"os"
	"strings"

	"lam/eval"
	"lam/lexer"
	"lam/parser"
	"lam/resolver"

	"github.com/chzyer/readline"
)

var VERSION string
var LOGO = `
  .
 /.\   | lam, an untyped lambda calculus
 \ λ\  | version: $VERSION
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func reportErrors(errors []error) {
	for _, err := range errors {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

// run takes one term through the whole pipeline: lex, parse, check for
// free variables, then evaluate in the empty environment.
func run(filename, input string) (eval.Value, []error) {
	l := lexer.New(filename, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		errs := []error{}
		for i := range l.Errors {
			errs = append(errs, &l.Errors[i])
		}
		return nil, errs
	}
	p := parser.New(filename, l.Tokens)
	expr := p.Parse()
	if len(p.Errors) != 0 {
		errs := []error{}
		for _, e := range p.Errors {
			errs = append(errs, e)
		}
		return nil, errs
	}
	res := resolver.New(filename)
	res.Resolve(expr)
	if len(res.Errors) != 0 {
		errs := []error{}
		for _, e := range res.Errors {
			errs = append(errs, e)
		}
		return nil, errs
	}
	value, err := eval.Eval(eval.Empty, expr)
	if err != nil {
		return nil, []error{err}
	}
	return value, nil
}

// demo builds (\x. x) (\y. y) directly from the constructors and
// evaluates it, showing the library surface without the reader.
func demo() {
	expr := parser.NewApp(
		parser.NewAbs("x", parser.NewVar("x")),
		parser.NewAbs("y", parser.NewVar("y")),
	)
	fmt.Println(expr)
	value, err := eval.Eval(eval.Empty, expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("=>", eval.Inspect(value))
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "demo" {
		demo()
		return
	}
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New("> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, errs := run("<stdin>", line)
		if errs != nil {
			reportErrors(errs)
		} else {
			fmt.Println(eval.Inspect(value))
		}
	}
}
