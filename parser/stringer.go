package parser

import "bytes"

// Renders expressions back to text. Abstractions and applications are
// always parenthesised, so the output is unambiguous regardless of how
// the input was written.

func (node *Var) String() string { return node.Name }

func (node *Abs) String() string {
	var buf bytes.Buffer
	buf.WriteString("(\\")
	buf.WriteString(node.Param)
	buf.WriteString(". ")
	buf.WriteString(node.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *App) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Fn.String())
	buf.WriteString(" ")
	buf.WriteString(node.Arg.String())
	buf.WriteString(")")
	return buf.String()
}
