package inspector

import "log"

// FieldLayout describes how to render one field this redraw.
type FieldLayout struct {
	Visible bool
	Enabled bool
	Height  float64
	Err     error
}

// Layout maps a rule evaluation onto a field of the given natural height.
func Layout(rule Rule, src ConditionSource, naturalHeight float64) FieldLayout {
	ev := Evaluate(rule, src)
	out := FieldLayout{Visible: true, Enabled: true, Height: naturalHeight, Err: ev.Err}
	if ev.Satisfied {
		return out
	}
	switch rule.Fallback {
	case JustDisable:
		out.Enabled = false
	default:
		out.Visible = false
		out.Enabled = false
		out.Height = 0
	}
	return out
}

// Property is the UI binding for one inspected field.
type Property interface {
	Name() string
	Target() ConditionSource
	NaturalHeight() float64
	SetVisible(visible bool)
	SetEnabled(enabled bool)
}

// Drawer is called by the property rendering pipeline once per redraw.
// A field's authoring error is reported once and again only after the field
// has evaluated cleanly in between.
type Drawer struct {
	// Errorf reports rule-authoring errors. Defaults to log.Printf.
	Errorf func(format string, args ...any)

	failing map[string]bool
}

func NewDrawer() *Drawer {
	return &Drawer{Errorf: log.Printf, failing: map[string]bool{}}
}

// Height is the layout height the field occupies this redraw.
func (d *Drawer) Height(rule Rule, prop Property) float64 {
	return Layout(rule, prop.Target(), prop.NaturalHeight()).Height
}

// Draw applies visibility and interactivity to prop.
func (d *Drawer) Draw(rule Rule, prop Property) FieldLayout {
	l := Layout(rule, prop.Target(), prop.NaturalHeight())
	d.report(prop.Name(), l.Err)
	prop.SetVisible(l.Visible)
	prop.SetEnabled(l.Enabled)
	return l
}

func (d *Drawer) report(field string, err error) {
	if err == nil {
		delete(d.failing, field)
		return
	}
	if d.failing[field] {
		return
	}
	if d.failing == nil {
		d.failing = map[string]bool{}
	}
	d.failing[field] = true
	if d.Errorf != nil {
		d.Errorf("inspector: field %q: %v", field, err)
	}
}
