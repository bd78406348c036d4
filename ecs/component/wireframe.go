package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Edge is a line segment in the owning entity's local space.
type Edge struct {
	A, B mgl64.Vec3
}

// Wireframe is line geometry drawn by the scene renderer.
type Wireframe struct {
	Edges []Edge
	Color color.RGBA
}

var WireframeComponent = NewComponent[Wireframe]()
