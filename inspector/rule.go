// Package inspector decides whether an inspector field is drawn, hidden or
// drawn read-only, from a declarative rule over named boolean conditions.
package inspector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoConditionResolved marks a rule none of whose conditions matched
	// anything on the target. Such rules evaluate as satisfied.
	ErrNoConditionResolved = errors.New("inspector: no condition resolved")
	ErrUnknownOperator     = errors.New("inspector: unknown operator")
	ErrUnknownFallback     = errors.New("inspector: unknown fallback")
)

type Operator int

const (
	And Operator = iota
	Or
)

func (o Operator) String() string {
	switch o {
	case And:
		return "and"
	case Or:
		return "or"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Operator) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "and", "":
		*o = And
	case "or":
		*o = Or
	default:
		return fmt.Errorf("%w %q", ErrUnknownOperator, string(b))
	}
	return nil
}

// Fallback is what happens to a field whose rule is not satisfied.
type Fallback int

const (
	// DontDraw removes the field from the layout.
	DontDraw Fallback = iota
	// JustDisable keeps the field but makes it read-only.
	JustDisable
)

func (f Fallback) String() string {
	switch f {
	case DontDraw:
		return "dont_draw"
	case JustDisable:
		return "just_disable"
	default:
		return fmt.Sprintf("fallback(%d)", int(f))
	}
}

func (f Fallback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fallback) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "dont_draw", "":
		*f = DontDraw
	case "just_disable":
		*f = JustDisable
	default:
		return fmt.Errorf("%w %q", ErrUnknownFallback, string(b))
	}
	return nil
}

// Rule is attached to one field and evaluated fresh on every redraw.
type Rule struct {
	Operator   Operator `yaml:"operator"`
	Conditions []string `yaml:"conditions"`
	Fallback   Fallback `yaml:"fallback"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s(%s) else %s", r.Operator, strings.Join(r.Conditions, ", "), r.Fallback)
}

// Evaluation is the outcome of one rule evaluation.
type Evaluation struct {
	Satisfied bool
	// Resolved counts conditions that produced a value.
	Resolved int
	// Err is ErrNoConditionResolved for a rule that matched nothing.
	Err error
}

// Evaluate resolves each condition against src and aggregates the values
// with the rule's operator. Unresolved names are skipped. When nothing
// resolves the rule fails open.
func Evaluate(rule Rule, src ConditionSource) Evaluation {
	var values []bool
	if src != nil {
		for _, name := range rule.Conditions {
			cond, ok := src.Lookup(name)
			if !ok || cond == nil {
				continue
			}
			v, ok := cond()
			if !ok {
				continue
			}
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return Evaluation{
			Satisfied: true,
			Err:       fmt.Errorf("%w: %s", ErrNoConditionResolved, rule),
		}
	}
	return Evaluation{Satisfied: aggregate(rule.Operator, values), Resolved: len(values)}
}

func aggregate(op Operator, values []bool) bool {
	if op == Or {
		for _, v := range values {
			if v {
				return true
			}
		}
		return false
	}
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}
