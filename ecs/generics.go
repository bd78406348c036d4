package ecs

import "github.com/milk9111/flycam/ecs/component"

// Components are stored as pointers so systems mutate them in place.

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, handle.Kind().ID(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn for every entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.entitiesWith(handle.Kind().ID()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.entitiesWith(ha.Kind().ID()) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// FirstWith returns the first entity holding the component and its value.
func FirstWith[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	e, ok := w.First(handle.Kind().ID())
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, handle)
	return e, v, ok
}
