package main

import (
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/flycam/inspector"
)

const fieldHeight = 28

// fieldRow is one inspector line: a label plus an editor widget. It is the
// inspector.Property the drawer updates every redraw.
type fieldRow struct {
	name   string
	target inspector.ConditionSource

	row    *widget.Container
	label  *widget.Label
	editor widget.PreferredSizeLocateableWidget

	// refresh pushes the spec value back into the editor.
	refresh func()

	visible bool
	enabled bool
	changed bool
}

func newFieldRow(name, title string, target inspector.ConditionSource, fontFace *text.Face, editor widget.PreferredSizeLocateableWidget) *fieldRow {
	row := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, fieldHeight)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	label := widget.NewLabel(
		widget.LabelOpts.Text(title, fontFace, labelColor),
	)
	label.GetWidget().MinWidth = 150
	row.AddChild(label)
	if editor != nil {
		row.AddChild(editor)
	}
	return &fieldRow{
		name:    name,
		target:  target,
		row:     row,
		label:   label,
		editor:  editor,
		visible: true,
		enabled: true,
	}
}

func (f *fieldRow) Name() string                      { return f.name }
func (f *fieldRow) Target() inspector.ConditionSource { return f.target }
func (f *fieldRow) NaturalHeight() float64            { return fieldHeight }

func (f *fieldRow) SetVisible(visible bool) {
	if visible == f.visible {
		return
	}
	f.visible = visible
	f.changed = true
	if visible {
		f.row.GetWidget().Visibility = widget.Visibility_Show
	} else {
		f.row.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (f *fieldRow) SetEnabled(enabled bool) {
	if enabled == f.enabled {
		return
	}
	f.enabled = enabled
	f.label.GetWidget().Disabled = !enabled
	if f.editor != nil {
		f.editor.GetWidget().Disabled = !enabled
	}
}

// takeChanged reports and clears a pending visibility change.
func (f *fieldRow) takeChanged() bool {
	c := f.changed
	f.changed = false
	return c
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
