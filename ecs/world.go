package ecs

import (
	"sort"

	"github.com/milk9111/flycam/ecs/component"
)

// World owns entities and their components. It is driven from the single
// ebiten update goroutine and is not safe for concurrent use.
type World struct {
	gens   []generation
	alive  []bool
	free   []slot
	stores map[component.ComponentID]*store
}

// store keeps one component kind keyed by entity slot.
type store struct {
	values map[slot]any
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*store)}
}

// CreateEntity allocates a new entity, reusing freed slots with a bumped
// generation.
func (w *World) CreateEntity() Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id-1] = true
		return newEntity(id, w.gens[id-1])
	}
	w.gens = append(w.gens, 1)
	w.alive = append(w.alive, true)
	id := slot(len(w.gens))
	return newEntity(id, 1)
}

// DestroyEntity removes e and all its components. Returns false if e was not
// alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	id := e.slot()
	for _, s := range w.stores {
		delete(s.values, id)
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	return true
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.slot()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.gens))
	for i, ok := range w.alive {
		if ok {
			out = append(out, newEntity(slot(i+1), w.gens[i]))
		}
	}
	return out
}

func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	s, ok := w.stores[id]
	if !ok {
		s = &store{values: make(map[slot]any)}
		w.stores[id] = s
	}
	s.values[e.slot()] = value
	return nil
}

func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok {
		return nil, false
	}
	v, ok := s.values[e.slot()]
	return v, ok
}

func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	_, ok := w.GetComponent(e, id)
	return ok
}

func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	if _, ok := s.values[e.slot()]; !ok {
		return false
	}
	delete(s.values, e.slot())
	return true
}

// entitiesWith returns live entities holding component id, in slot order so
// iteration is deterministic.
func (w *World) entitiesWith(id component.ComponentID) []Entity {
	s, ok := w.stores[id]
	if !ok || len(s.values) == 0 {
		return nil
	}
	ids := make([]slot, 0, len(s.values))
	for eid := range s.values {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Entity, 0, len(ids))
	for _, eid := range ids {
		out = append(out, newEntity(eid, w.gens[eid-1]))
	}
	return out
}

// First returns the lowest-slot entity holding the component kind.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	ents := w.entitiesWith(id)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
