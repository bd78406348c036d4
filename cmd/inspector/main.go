package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/prefabs"
)

type inspectorApp struct {
	ui *InspectorUI
}

func (a *inspectorApp) Update() error {
	a.ui.UI.Update()
	a.ui.RedrawIfDirty()
	return nil
}

func (a *inspectorApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 24, 255})
	a.ui.UI.Draw(screen)
}

func (a *inspectorApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Fatal(err)
	}
	rules, err := prefabs.LoadInspectorSpec()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(400, 560)
	ebiten.SetWindowTitle("flycam inspector")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&inspectorApp{ui: BuildInspectorUI(spec, rules)}); err != nil {
		log.Fatal(err)
	}
}
