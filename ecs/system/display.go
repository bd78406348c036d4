package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs/component"
)

// Display presents the bound target stretched over the screen with nearest
// filtering so pixel edges stay hard.
type Display struct {
	size   component.ScreenSize
	source RenderTarget
}

func NewDisplay(size component.ScreenSize) *Display {
	return &Display{size: size}
}

func (d *Display) Size() component.ScreenSize {
	return d.size
}

// Resize records the live display size reported by the host.
func (d *Display) Resize(size component.ScreenSize) {
	if size.Valid() {
		d.size = size
	}
}

func (d *Display) SetSource(rt RenderTarget) {
	d.source = rt
}

func (d *Display) Present(screen *ebiten.Image) {
	if d.source == nil || d.source.Image() == nil {
		return
	}
	src := d.source.Spec().Size
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(src.Width), float64(sh)/float64(src.Height))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(d.source.Image(), op)
}
