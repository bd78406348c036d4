package main

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flycam/inspector"
	"github.com/milk9111/flycam/prefabs"
	"golang.org/x/image/font/gofont/goregular"
)

// InspectorUI edits a camera spec. Each field's visibility rule is evaluated
// once per redraw against the live spec.
type InspectorUI struct {
	UI     *ebitenui.UI
	target *cameraTarget
	rules  *prefabs.InspectorSpec
	drawer *inspector.Drawer
	panel  *widget.Container
	fields []*fieldRow
	status *widget.Label

	// dirty is set by edits; rules are only re-evaluated when it is.
	dirty bool
}

func BuildInspectorUI(spec *prefabs.CameraSpec, rules *prefabs.InspectorSpec) *InspectorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newInspectorTheme(&fontFace)

	in := &InspectorUI{
		UI:     ui,
		target: newCameraTarget(spec, rules.Expressions),
		rules:  rules,
		drawer: inspector.NewDrawer(),
	}

	in.panel = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 480)),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	in.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Camera: "+spec.Name, &fontFace, labelColor),
	))

	in.buildFlyCameraFields(&fontFace)
	in.buildPixelationFields(&fontFace)

	save := widget.NewButton(
		widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Save", &fontFace, ui.PrimaryTheme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, fieldHeight)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			in.save()
		}),
	)
	in.panel.AddChild(save)

	in.status = widget.NewLabel(widget.LabelOpts.Text("", &fontFace, labelColor))
	in.panel.AddChild(in.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	in.panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(in.panel)
	ui.Container = root

	in.Redraw()
	return in
}

func (in *InspectorUI) addField(f *fieldRow) {
	in.fields = append(in.fields, f)
	in.panel.AddChild(f.row)
}

func (in *InspectorUI) toggleField(name, title string, fontFace *text.Face, value *bool) {
	var f *fieldRow
	btn := widget.NewButton(
		widget.ButtonOpts.Image(in.UI.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text(onOff(*value), fontFace, in.UI.PrimaryTheme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, fieldHeight)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			*value = !*value
			f.refresh()
			in.dirty = true
		}),
	)
	f = newFieldRow(name, title, in.target, fontFace, btn)
	f.refresh = func() {
		if t := btn.Text(); t != nil {
			t.Label = onOff(*value)
		}
	}
	in.addField(f)
}

func (in *InspectorUI) numberField(name, title string, fontFace *text.Face, format func() string, parse func(s string) bool) {
	shown := format()
	input := newTextInput(fontFace, func(s string) {
		shown = s
		if parse(strings.TrimSpace(s)) && in.target.validate() {
			in.refreshAll()
		}
		in.dirty = true
	})
	input.SetText(shown)
	f := newFieldRow(name, title, in.target, fontFace, input)
	f.refresh = func() {
		// Only overwrite when the value differs so typing is not disturbed.
		if v := format(); strings.TrimSpace(shown) != v {
			if n, err := strconv.ParseFloat(strings.TrimSpace(shown), 64); err == nil {
				if m, err := strconv.ParseFloat(v, 64); err == nil && n == m {
					return
				}
			}
			shown = v
			input.SetText(v)
		}
	}
	in.addField(f)
}

func (in *InspectorUI) buildFlyCameraFields(fontFace *text.Face) {
	fly := &in.target.spec.FlyCamera
	in.numberField("move_speed", "Move speed", fontFace,
		func() string { return formatFloat(fly.MoveSpeed) },
		func(s string) bool { return parseFloat(s, &fly.MoveSpeed) })
	in.numberField("sensitivity", "Sensitivity", fontFace,
		func() string { return formatFloat(fly.Sensitivity) },
		func(s string) bool { return parseFloat(s, &fly.Sensitivity) })
	in.toggleField("invert_y", "Invert Y", fontFace, &fly.InvertY)
}

func (in *InspectorUI) buildPixelationFields(fontFace *text.Face) {
	pix := &in.target.spec.Pixelation
	in.toggleField("enabled", "Pixelation", fontFace, &pix.Enabled)

	var mode *fieldRow
	modeBtn := widget.NewButton(
		widget.ButtonOpts.Image(in.UI.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text(pix.Mode, fontFace, in.UI.PrimaryTheme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, fieldHeight)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if pix.Mode == "resize" {
				pix.Mode = "scale"
			} else {
				pix.Mode = "resize"
			}
			mode.refresh()
			in.dirty = true
		}),
	)
	mode = newFieldRow("mode", "Mode", in.target, fontFace, modeBtn)
	mode.refresh = func() {
		if t := modeBtn.Text(); t != nil {
			t.Label = pix.Mode
		}
	}
	in.addField(mode)

	in.numberField("scale_factor", "Scale factor", fontFace,
		func() string { return strconv.Itoa(pix.ScaleFactor) },
		func(s string) bool { return parseInt(s, &pix.ScaleFactor) })
	in.numberField("target_width", "Target width", fontFace,
		func() string { return strconv.Itoa(pix.TargetWidth) },
		func(s string) bool { return parseInt(s, &pix.TargetWidth) })
	in.numberField("target_height", "Target height", fontFace,
		func() string { return strconv.Itoa(pix.TargetHeight) },
		func(s string) bool { return parseInt(s, &pix.TargetHeight) })

	hint := newFieldRow("low_res_hint", "Below 64k pixels", in.target, fontFace, nil)
	hint.refresh = func() {}
	in.addField(hint)
}

// RedrawIfDirty re-evaluates the field rules after an edit.
func (in *InspectorUI) RedrawIfDirty() {
	if in.dirty {
		in.Redraw()
	}
}

// Redraw evaluates every field rule against the current spec.
func (in *InspectorUI) Redraw() {
	in.dirty = false
	relayout := false
	for _, f := range in.fields {
		rule, ok := in.rules.Rule(f.name)
		if !ok {
			f.SetVisible(true)
			f.SetEnabled(true)
		} else {
			in.drawer.Draw(rule, f)
		}
		if f.takeChanged() {
			relayout = true
		}
	}
	if relayout {
		in.panel.RequestRelayout()
	}
}

func (in *InspectorUI) refreshAll() {
	for _, f := range in.fields {
		f.refresh()
	}
}

func (in *InspectorUI) save() {
	in.target.validate()
	in.refreshAll()
	in.dirty = true
	if err := prefabs.SaveSpec(prefabs.CameraFile, in.target.spec); err != nil {
		log.Printf("inspector: %v", err)
		in.status.Label = "save failed: " + err.Error()
		return
	}
	in.status.Label = fmt.Sprintf("saved %s", prefabs.DiskPath(prefabs.CameraFile))
}

func parseInt(s string, dst *int) bool {
	v, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

func parseFloat(s string, dst *float64) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}
