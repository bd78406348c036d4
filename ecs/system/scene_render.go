package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

const (
	nearPlane   = 0.05
	fieldOfView = 70.0
)

var clearColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}

// SceneRenderer is the render source: it projects every Wireframe entity
// through the main camera into the bound offscreen target.
type SceneRenderer struct {
	target RenderTarget
	lines  []projectedLine
}

type projectedLine struct {
	x0, y0, x1, y1 float32
	depth          float64
	clr            color.RGBA
}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

func (r *SceneRenderer) SetTarget(rt RenderTarget) {
	r.target = rt
}

func (r *SceneRenderer) Render(w *ecs.World) {
	if r == nil || r.target == nil || w == nil {
		return
	}
	dst := r.target.Image()
	if dst == nil {
		return
	}
	dst.Fill(clearColor)

	camEntity, ok := w.First(component.MainCameraTagComponent.Kind().ID())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}

	size := r.target.Spec().Size
	proj := newProjection(cam, size)

	r.lines = r.lines[:0]
	ecs.ForEach2(w, component.WireframeComponent, component.TransformComponent, func(_ ecs.Entity, wf *component.Wireframe, t *component.Transform) {
		for _, edge := range wf.Edges {
			a := t.Position.Add(t.Rotation.Rotate(edge.A))
			b := t.Position.Add(t.Rotation.Rotate(edge.B))
			if line, ok := proj.line(a, b); ok {
				line.clr = wf.Color
				r.lines = append(r.lines, line)
			}
		}
	})

	// Far to near so closer lines overwrite farther ones.
	sort.Slice(r.lines, func(i, j int) bool { return r.lines[i].depth > r.lines[j].depth })
	for _, l := range r.lines {
		vector.StrokeLine(dst, l.x0, l.y0, l.x1, l.y1, 1, l.clr, false)
	}
}

type projection struct {
	pos   mgl64.Vec3
	inv   mgl64.Quat
	focal float64
	halfW float64
	halfH float64
}

func newProjection(cam *component.Transform, size component.ScreenSize) projection {
	halfH := float64(size.Height) / 2
	return projection{
		pos:   cam.Position,
		inv:   cam.Rotation.Conjugate(),
		focal: halfH / math.Tan(mgl64.DegToRad(fieldOfView)/2),
		halfW: float64(size.Width) / 2,
		halfH: halfH,
	}
}

// view transforms a world point into camera space.
func (p projection) view(v mgl64.Vec3) mgl64.Vec3 {
	return p.inv.Rotate(v.Sub(p.pos))
}

func (p projection) screen(v mgl64.Vec3) (float32, float32) {
	x := p.halfW + v.X()*p.focal/v.Z()
	y := p.halfH - v.Y()*p.focal/v.Z()
	return float32(x), float32(y)
}

// line clips the segment against the near plane and projects it.
func (p projection) line(a, b mgl64.Vec3) (projectedLine, bool) {
	va, vb := p.view(a), p.view(b)
	if va.Z() < nearPlane && vb.Z() < nearPlane {
		return projectedLine{}, false
	}
	if va.Z() < nearPlane {
		va = clipNear(vb, va)
	} else if vb.Z() < nearPlane {
		vb = clipNear(va, vb)
	}
	x0, y0 := p.screen(va)
	x1, y1 := p.screen(vb)
	return projectedLine{x0: x0, y0: y0, x1: x1, y1: y1, depth: (va.Z() + vb.Z()) / 2}, true
}

// clipNear moves behind toward front until it lies on the near plane.
func clipNear(front, behind mgl64.Vec3) mgl64.Vec3 {
	t := (front.Z() - nearPlane) / (front.Z() - behind.Z())
	return front.Add(behind.Sub(front).Mul(t))
}
