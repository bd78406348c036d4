package inspector

// Condition reports a live boolean. ok is false when the value could not be
// produced, which makes the condition count as unresolved.
type Condition func() (value bool, ok bool)

// ConditionSource looks conditions up by name.
type ConditionSource interface {
	Lookup(name string) (Condition, bool)
}

// Conditions is a layered name -> condition registry. Each layer holds
// field-style conditions (a bool read directly) and method-style conditions
// (a func evaluated on demand). A layer created with Extend shadows names in
// its parent, the way a derived type's member hides a base member.
type Conditions struct {
	parent  *Conditions
	fields  map[string]*bool
	methods map[string]Condition
}

func NewConditions() *Conditions {
	return &Conditions{
		fields:  map[string]*bool{},
		methods: map[string]Condition{},
	}
}

// Extend returns a derived layer on top of c.
func (c *Conditions) Extend() *Conditions {
	d := NewConditions()
	d.parent = c
	return d
}

// Field registers a bool whose current value is read on each lookup.
func (c *Conditions) Field(name string, v *bool) *Conditions {
	if v != nil {
		c.fields[name] = v
	}
	return c
}

// Method registers a zero-argument predicate.
func (c *Conditions) Method(name string, fn func() bool) *Conditions {
	if fn != nil {
		c.methods[name] = func() (bool, bool) { return fn(), true }
	}
	return c
}

// Probe registers a predicate that may fail to produce a value.
func (c *Conditions) Probe(name string, cond Condition) *Conditions {
	if cond != nil {
		c.methods[name] = cond
	}
	return c
}

// Lookup prefers a field anywhere in the chain over a method, and within
// each kind the most derived layer wins.
func (c *Conditions) Lookup(name string) (Condition, bool) {
	for l := c; l != nil; l = l.parent {
		if v, ok := l.fields[name]; ok {
			return func() (bool, bool) { return *v, true }, true
		}
	}
	for l := c; l != nil; l = l.parent {
		if m, ok := l.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}
