package eval

import (
	"lam/parser"
	"testing"
)

func testValue(name string) Value {
	return newClosure(Empty, name, parser.NewVar(name))
}

func TestEnvironmentLookup(t *testing.T) {
	a := testValue("a")
	b := testValue("b")
	env := Empty.Extend("x", a).Extend("y", b)

	if v, ok := env.Lookup("x"); !ok || v != a {
		t.Errorf("expected x=%v, got=%v (ok=%v)", a, v, ok)
	}
	if v, ok := env.Lookup("y"); !ok || v != b {
		t.Errorf("expected y=%v, got=%v (ok=%v)", b, v, ok)
	}
	if _, ok := env.Lookup("z"); ok {
		t.Error("expected z to be absent")
	}
	if _, ok := Empty.Lookup("x"); ok {
		t.Error("expected empty environment to have no bindings")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	a := testValue("a")
	b := testValue("b")
	env := Empty.Extend("x", a).Extend("x", b)
	if v, _ := env.Lookup("x"); v != b {
		t.Errorf("expected the newer binding to win, got=%v", v)
	}
}

// Extending must not disturb the receiver: environments captured by
// closures stay valid however the chain is extended afterwards.
func TestEnvironmentPersistence(t *testing.T) {
	a := testValue("a")
	b := testValue("b")
	parent := Empty.Extend("x", a)
	child := parent.Extend("x", b)

	if v, _ := parent.Lookup("x"); v != a {
		t.Errorf("parent changed: expected x=%v, got=%v", a, v)
	}
	if v, _ := child.Lookup("x"); v != b {
		t.Errorf("expected child x=%v, got=%v", b, v)
	}
	// two extensions of the same parent do not interfere
	other := parent.Extend("y", b)
	if _, ok := child.Lookup("y"); ok {
		t.Error("sibling extension leaked into child")
	}
	if v, _ := other.Lookup("x"); v != a {
		t.Errorf("expected other x=%v, got=%v", a, v)
	}
}

// A stub value variant, standing in for the base values the model
// anticipates.
type opaque struct{}

func (opaque) Type() ValueType { return 0 }

func TestApplyNotApplicable(t *testing.T) {
	arg := testValue("a")
	value, err := Apply(opaque{}, arg)
	if value != nil {
		t.Errorf("expected no value, got=%v", value)
	}
	evalErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got=%v", err)
	}
	if evalErr.Kind != NOT_APPLICABLE {
		t.Errorf("expected NOT_APPLICABLE, got=%d", evalErr.Kind)
	}
}
