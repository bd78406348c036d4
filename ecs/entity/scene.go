package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

var (
	gridColor = color.RGBA{R: 70, G: 90, B: 110, A: 255}
	cubeColor = color.RGBA{R: 240, G: 180, B: 80, A: 255}
)

// NewGrid adds a square floor grid of half-extent size lines on y=0.
func NewGrid(w *ecs.World, size int) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.NewTransform(mgl64.Vec3{})); err != nil {
		return 0, fmt.Errorf("grid: add transform: %w", err)
	}

	s := float64(size)
	edges := make([]component.Edge, 0, 4*size+2)
	for i := -size; i <= size; i++ {
		f := float64(i)
		edges = append(edges,
			component.Edge{A: mgl64.Vec3{f, 0, -s}, B: mgl64.Vec3{f, 0, s}},
			component.Edge{A: mgl64.Vec3{-s, 0, f}, B: mgl64.Vec3{s, 0, f}},
		)
	}
	if err := ecs.Add(w, e, component.WireframeComponent, &component.Wireframe{Edges: edges, Color: gridColor}); err != nil {
		return 0, fmt.Errorf("grid: add wireframe: %w", err)
	}
	return e, nil
}

// NewCube adds a wireframe cube of the given edge length centred at pos.
func NewCube(w *ecs.World, pos mgl64.Vec3, edge float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.NewTransform(pos)); err != nil {
		return 0, fmt.Errorf("cube: add transform: %w", err)
	}

	h := edge / 2
	var corners [8]mgl64.Vec3
	for i := range corners {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		corners[i] = mgl64.Vec3{x, y, z}
	}
	// Corners differing in exactly one bit share an edge.
	edges := make([]component.Edge, 0, 12)
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				edges = append(edges, component.Edge{A: corners[i], B: corners[j]})
			}
		}
	}
	if err := ecs.Add(w, e, component.WireframeComponent, &component.Wireframe{Edges: edges, Color: cubeColor}); err != nil {
		return 0, fmt.Errorf("cube: add wireframe: %w", err)
	}
	return e, nil
}
