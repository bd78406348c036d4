package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/flycam/ecs"
	"github.com/milk9111/flycam/ecs/component"
	"github.com/milk9111/flycam/ecs/entity"
	"github.com/milk9111/flycam/ecs/system"
	"github.com/milk9111/flycam/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool
	quit   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	camera    ecs.Entity

	cursor     *system.EbitenCursor
	renderer   *system.SceneRenderer
	display    *system.Display
	pixelation *system.PixelationSystem

	watcher   *prefabs.Watcher
	releaseUI *ebitenui.UI
}

func NewGame(debug, watch bool) (*Game, error) {
	w := ecs.NewWorld()
	camera, err := entity.NewCamera(w)
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewGrid(w, 20); err != nil {
		return nil, err
	}
	for _, p := range []mgl64.Vec3{{0, 0.5, 0}, {4, 1, 6}, {-5, 1.5, 3}, {2, 0.5, -4}} {
		if _, err := entity.NewCube(w, p, p.Y()*2); err != nil {
			return nil, err
		}
	}

	g := &Game{
		debug:    debug,
		world:    w,
		camera:   camera,
		cursor:   system.NewEbitenCursor(),
		renderer: system.NewSceneRenderer(),
		display:  system.NewDisplay(component.ScreenSize{Width: baseWidth, Height: baseHeight}),
	}
	g.pixelation = system.NewPixelationSystem(system.EbitenAllocator{}, g.renderer, g.display)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewFlyCameraSystem(g.cursor),
		g.pixelation,
	)

	g.releaseUI = NewReleaseUI(g)

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.reloadChangedPrefabs()
	g.scheduler.Update(g.world)
	if g.released() {
		g.releaseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// released reports whether the fly camera has given up the cursor.
func (g *Game) released() bool {
	return g.frames > 1 && !g.cursor.Captured()
}

// reloadChangedPrefabs reapplies camera.yaml after it changes on disk.
func (g *Game) reloadChangedPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if name != prefabs.CameraFile {
			continue
		}
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			continue
		}
		entity.ApplyCameraSpec(g.world, g.camera, spec)
		g.pixelation.Configure(g.world, entity.PixelationFromSpec(spec.Pixelation))
		log.Printf("game: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.world)
	g.display.Present(screen)
	if g.released() {
		g.releaseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if fly, ok := ecs.Get(g.world, g.camera, component.FlyCameraComponent); ok {
		text += fmt.Sprintf("\nyaw %.1f  pitch %.1f", fly.Look.Yaw, fly.Look.Pitch)
	}
	if tr, ok := ecs.Get(g.world, g.camera, component.TransformComponent); ok {
		p := tr.Position
		text += fmt.Sprintf("\npos %.2f %.2f %.2f", p.X(), p.Y(), p.Z())
		f := tr.Forward()
		text += fmt.Sprintf("\nheading %.2f %.2f %.2f", f.X(), f.Y(), f.Z())
	}
	if rt := g.pixelation.Target(); rt != nil {
		s := rt.Spec().Size
		text += fmt.Sprintf("\ntarget %dx%d  rebuilds %d", s.Width, s.Height, g.pixelation.Rebuilds())
	}
	if pix, ok := ecs.Get(g.world, g.camera, component.PixelationComponent); ok {
		text += fmt.Sprintf("\npixelation %v (%s)  [P] toggle", pix.Enabled, pix.Mode)
	}
	text += fmt.Sprintf("\ncursor captured %v  [Esc] release", g.cursor.Captured())
	return text
}

// Layout renders at native resolution; the pixelation target does the
// downscaling.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.display.Resize(component.ScreenSize{Width: outsideWidth, Height: outsideHeight})
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
