package component

// Input stores the raw per-frame input samples consumed by the fly camera.
type Input struct {
	// Horizontal and Forward are digital axes in [-1, 1].
	Horizontal float64
	Forward    float64
	Up         bool
	Down       bool

	// MouseX and MouseY are cursor deltas in pixels since the previous
	// frame. MouseY is positive when the cursor moves up the screen.
	MouseX float64
	MouseY float64

	ReleasePressed bool
	TogglePixelate bool

	// DT is elapsed time since the previous frame, in seconds.
	DT float64
}

var InputComponent = NewComponent[Input]()
