package eval

import (
	"bytes"
	"fmt"
)

// Inspect renders a value as text for diagnostic display. The output
// is deterministic: structurally equal values render identically (in
// particular, no pointer addresses). Evaluation never consults this.
func Inspect(v Value) string {
	switch v := v.(type) {
	case *Closure:
		var buf bytes.Buffer
		buf.WriteString("[Closure \\")
		buf.WriteString(v.param)
		buf.WriteString(". ")
		buf.WriteString(v.body.String())
		buf.WriteString("]")
		return buf.String()
	}
	panic(fmt.Sprintf("cannot inspect: %#+v", v))
}
