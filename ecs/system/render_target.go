package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs/component"
)

// TargetSpec describes an offscreen color+depth surface. Ebiten images have
// no depth attachment or multisampling, so EbitenAllocator only reads Size;
// SceneRenderer orders lines far to near in place of a depth test.
type TargetSpec struct {
	Size      component.ScreenSize
	DepthBits int
	Filter    ebiten.Filter
	Samples   int
}

// pixelTargetSpec is a point-filtered, single-sample target with depth.
func pixelTargetSpec(size component.ScreenSize) TargetSpec {
	return TargetSpec{
		Size:      size,
		DepthBits: 24,
		Filter:    ebiten.FilterNearest,
		Samples:   1,
	}
}

type RenderTarget interface {
	Spec() TargetSpec
	// Image is nil for targets that are not backed by ebiten.
	Image() *ebiten.Image
	Dispose()
}

type TargetAllocator interface {
	Allocate(spec TargetSpec) RenderTarget
}

// RenderSource draws the scene into its bound target each frame.
type RenderSource interface {
	SetTarget(rt RenderTarget)
}

// DisplayTarget presents a bound target at the live display size.
type DisplayTarget interface {
	Size() component.ScreenSize
	SetSource(rt RenderTarget)
}

type EbitenAllocator struct{}

func (EbitenAllocator) Allocate(spec TargetSpec) RenderTarget {
	img := ebiten.NewImageWithOptions(image.Rect(0, 0, spec.Size.Width, spec.Size.Height), nil)
	return &ebitenTarget{spec: spec, img: img}
}

type ebitenTarget struct {
	spec TargetSpec
	img  *ebiten.Image
}

func (t *ebitenTarget) Spec() TargetSpec {
	return t.spec
}

func (t *ebitenTarget) Image() *ebiten.Image {
	return t.img
}

func (t *ebitenTarget) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
