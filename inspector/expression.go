package inspector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrNotBool = errors.New("inspector: expression did not produce a bool")

const resultVar = "__result"

// Expression is a tengo boolean expression over a snapshot of named values.
// It is compiled once and re-run with fresh values on every evaluation.
type Expression struct {
	src      string
	snapshot func() map[string]any
	compiled *tengo.Compiled
}

// CompileExpression declares every name snapshot returns now as a script
// variable. Later snapshots may only set those names.
func CompileExpression(src string, snapshot func() map[string]any) (*Expression, error) {
	if snapshot == nil {
		snapshot = func() map[string]any { return nil }
	}
	script := tengo.NewScript([]byte(fmt.Sprintf("%s := (%s)", resultVar, src)))
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	vars := snapshot()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := script.Add(name, vars[name]); err != nil {
			return nil, fmt.Errorf("inspector: declare %q: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("inspector: compile %q: %w", src, err)
	}
	return &Expression{src: src, snapshot: snapshot, compiled: compiled}, nil
}

func (x *Expression) String() string {
	return x.src
}

// Eval runs the expression against the current snapshot.
func (x *Expression) Eval() (bool, error) {
	for name, v := range x.snapshot() {
		if err := x.compiled.Set(name, v); err != nil {
			return false, fmt.Errorf("inspector: set %q: %w", name, err)
		}
	}
	if err := x.compiled.Run(); err != nil {
		return false, fmt.Errorf("inspector: run %q: %w", x.src, err)
	}
	b, ok := x.compiled.Get(resultVar).Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotBool, x.src)
	}
	return b, nil
}

// Condition adapts the expression for a Conditions registry. A failed run is
// an unresolved condition.
func (x *Expression) Condition() Condition {
	return func() (bool, bool) {
		v, err := x.Eval()
		return v, err == nil
	}
}
