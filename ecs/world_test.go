package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/flycam/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestWorldReusesSlotWithNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	v := 7
	if err := Add(w, old, h, &v); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh == old {
		t.Fatalf("expected a new handle for reused slot")
	}
	if fresh.slot() != old.slot() {
		t.Fatalf("expected slot %d reused, got %d", old.slot(), fresh.slot())
	}
	if Has(w, fresh, h) {
		t.Fatalf("expected reused slot to start without components")
	}
	if err := Add(w, old, h, &v); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name: "add_int_to_e1",
			setup: func() error {
				v := 10
				return Add(w, e1, hi, &v)
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hi)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hi) {
					t.Fatalf("did not expect e2 to have int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hi) },
		},
		{
			name: "mutate_in_place",
			setup: func() error {
				v := "a"
				return Add(w, e2, hs, &v)
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e2, hs)
				*v = "b"
				again, _ := Get(w, e2, hs)
				if *again != "b" {
					t.Fatalf("expected b, got %s", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, hs) },
		},
		{
			name:  "nil_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, hi, nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
			teardown: func() bool { return !Remove(w, e1, hi) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	a1, a2, b2, b3 := 1, 2, 2.5, 3.5
	_ = Add(w, e1, ha, &a1)
	_ = Add(w, e2, ha, &a2)
	_ = Add(w, e2, hb, &b2)
	_ = Add(w, e3, hb, &b3)

	var got []Entity
	ForEach2(w, ha, hb, func(e Entity, a *int, b *float64) {
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}

	first, v, ok := FirstWith(w, hb)
	if !ok || first != e2 || *v != 2.5 {
		t.Fatalf("expected first hb entity e2=2.5, got %v %v %v", first, v, ok)
	}
}

func TestScheduler(t *testing.T) {
	var order []string
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "a") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "b") }),
	)
	s.Add(SystemFunc(func(*World) { order = append(order, "c") }))
	s.Update(NewWorld())

	if len(s.Systems()) != 3 {
		t.Fatalf("expected nil system skipped, got %d systems", len(s.Systems()))
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("expected a,b,c got %v", order)
	}
}

func TestEntityHandle(t *testing.T) {
	e := newEntity(7, 3)
	if e.slot() != 7 || e.generation() != 3 {
		t.Fatalf("expected slot 7 gen 3, got %d %d", e.slot(), e.generation())
	}
	if e.String() != "7:3" {
		t.Fatalf("expected 7:3, got %s", e.String())
	}
	if !e.Valid() || Entity(0).Valid() {
		t.Fatalf("expected only the non-zero handle valid")
	}
}
