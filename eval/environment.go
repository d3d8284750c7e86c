package eval

// Environment is a persistent chain of bindings, newest first. Extend
// never mutates: it returns a fresh link whose tail is the receiver, so
// an environment captured by a closure stays valid no matter how many
// other closures extend it. A nil *Environment is the environment with
// no bindings.
type Environment struct {
	name  string
	value Value
	outer *Environment
}

// Empty is the canonical starting environment for top-level
// evaluation. Since environments are never mutated, it is safe to
// share; any nil chain is interchangeable with it.
var Empty *Environment

// Extend returns a new environment with (name, value) added as the
// most recent binding. The receiver is unchanged and still usable.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{
		name:  name,
		value: value,
		outer: e,
	}
}

// Lookup returns the value of the most recent binding for name. The
// scan runs newest to oldest, so a newer binding shadows older ones.
func (e *Environment) Lookup(name string) (Value, bool) {
	for ; e != nil; e = e.outer {
		if e.name == name {
			return e.value, true
		}
	}
	return nil, false
}
