package system

import "github.com/hajimehoshi/ebiten/v2"

// CursorCapture is exclusive pointer capture: while captured the cursor is
// hidden and locked so deltas are relative motion.
type CursorCapture interface {
	Capture()
	Release()
	Captured() bool
}

// EbitenCursor drives ebiten's process-wide cursor mode.
type EbitenCursor struct {
	captured bool
}

func NewEbitenCursor() *EbitenCursor {
	return &EbitenCursor{}
}

func (c *EbitenCursor) Capture() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	c.captured = true
}

func (c *EbitenCursor) Release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	c.captured = false
}

func (c *EbitenCursor) Captured() bool {
	return c.captured
}
