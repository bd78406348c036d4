package system

import (
	"log"

	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
)

// PixelationSystem owns the low-resolution offscreen target the render source
// draws into and the display presents. It rebuilds the target on first use,
// whenever the live display size changes, and whenever the configuration is
// edited or toggled.
type PixelationSystem struct {
	allocator TargetAllocator
	source    RenderSource
	display   DisplayTarget

	// Warnf reports validation clamps. Defaults to log.Printf.
	Warnf func(format string, args ...any)

	target      RenderTarget
	lastSize    component.ScreenSize
	initialized bool
	dirty       bool
	rebuilds    int
}

func NewPixelationSystem(allocator TargetAllocator, source RenderSource, display DisplayTarget) *PixelationSystem {
	return &PixelationSystem{
		allocator: allocator,
		source:    source,
		display:   display,
		Warnf:     log.Printf,
	}
}

// SetRenderSource swaps the render source. A rebuild follows on the next
// update.
func (p *PixelationSystem) SetRenderSource(src RenderSource) {
	p.source = src
	p.dirty = true
}

func (p *PixelationSystem) Update(w *ecs.World) {
	if w == nil || p.display == nil {
		return
	}
	e, cfg, ok := ecs.FirstWith(w, component.PixelationComponent)
	if !ok {
		return
	}

	if in, ok := ecs.Get(w, e, component.InputComponent); ok && in.TogglePixelate {
		p.SetEnabled(w, !cfg.Enabled)
		return
	}

	live := p.display.Size()
	if p.initialized && !p.dirty && live == p.lastSize {
		return
	}
	p.rebuild(cfg, live)
}

// SetEnabled toggles pixelation and rebuilds the target immediately.
func (p *PixelationSystem) SetEnabled(w *ecs.World, enabled bool) {
	_, cfg, ok := ecs.FirstWith(w, component.PixelationComponent)
	if !ok {
		return
	}
	cfg.Enabled = enabled
	p.dirty = true
	if p.display != nil {
		p.rebuild(cfg, p.display.Size())
	}
}

// Configure replaces the configuration, validating it, and rebuilds.
func (p *PixelationSystem) Configure(w *ecs.World, next component.Pixelation) {
	_, cfg, ok := ecs.FirstWith(w, component.PixelationComponent)
	if !ok {
		return
	}
	*cfg = next
	ValidatePixelation(cfg, p.warnf)
	p.dirty = true
	if p.display != nil {
		p.rebuild(cfg, p.display.Size())
	}
}

// Target returns the currently bound offscreen target, if any.
func (p *PixelationSystem) Target() RenderTarget {
	return p.target
}

// Rebuilds counts target reconstructions.
func (p *PixelationSystem) Rebuilds() int {
	return p.rebuilds
}

func (p *PixelationSystem) rebuild(cfg *component.Pixelation, live component.ScreenSize) {
	ValidatePixelation(cfg, p.warnf)
	if p.source == nil || p.allocator == nil {
		return
	}

	size := TargetSize(*cfg, live)
	if p.target != nil {
		p.target.Dispose()
	}
	p.target = p.allocator.Allocate(pixelTargetSpec(size))
	p.source.SetTarget(p.target)
	p.display.SetSource(p.target)

	p.lastSize = live
	p.initialized = true
	p.dirty = false
	p.rebuilds++
}

func (p *PixelationSystem) warnf(format string, args ...any) {
	if p.Warnf != nil {
		p.Warnf(format, args...)
	}
}

// ValidatePixelation clamps the scale factor to at least 1 and resets an
// invalid resize target to DefaultTargetSize. It reports whether anything
// changed.
func ValidatePixelation(cfg *component.Pixelation, warnf func(format string, args ...any)) bool {
	changed := false
	if cfg.ScaleFactor < 1 {
		if warnf != nil {
			warnf("pixelation: scale factor %d < 1, clamped to 1", cfg.ScaleFactor)
		}
		cfg.ScaleFactor = 1
		changed = true
	}
	if !cfg.Target.Valid() {
		if warnf != nil {
			warnf("pixelation: target size %dx%d invalid, reset to %dx%d",
				cfg.Target.Width, cfg.Target.Height,
				component.DefaultTargetSize.Width, component.DefaultTargetSize.Height)
		}
		cfg.Target = component.DefaultTargetSize
		changed = true
	}
	return changed
}

// TargetSize picks the offscreen size for cfg at live display size. Disabled
// pixelation renders 1:1 with the display instead of sizing by mode. Scale
// mode is floor(W/f) x floor(H/f), raised to 1 when the display is smaller
// than the factor since ebiten cannot allocate an empty image.
func TargetSize(cfg component.Pixelation, live component.ScreenSize) component.ScreenSize {
	var size component.ScreenSize
	switch {
	case !cfg.Enabled:
		size = live
	case cfg.Mode == component.PixelationResize:
		size = cfg.Target
	default:
		f := max(cfg.ScaleFactor, 1)
		size = component.ScreenSize{Width: live.Width / f, Height: live.Height / f}
	}
	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)
	return size
}
