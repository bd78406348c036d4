package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a local-space position and orientation. Axes follow the
// camera convention: +X right, +Y up, +Z forward.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl64.QuatIdent()}
}

// Translate moves the transform along its own local axes.
func (t *Transform) Translate(local mgl64.Vec3) {
	t.Position = t.Position.Add(t.Rotation.Rotate(local))
}

// Forward is the world-space direction of local +Z.
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

var TransformComponent = NewComponent[Transform]()
