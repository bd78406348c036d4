package component

// PixelationMode selects how the offscreen target is sized.
type PixelationMode int

const (
	// PixelationResize uses a fixed target size.
	PixelationResize PixelationMode = iota
	// PixelationScale divides the live display size by a factor.
	PixelationScale
)

func (m PixelationMode) String() string {
	switch m {
	case PixelationResize:
		return "resize"
	case PixelationScale:
		return "scale"
	default:
		return "unknown"
	}
}

// ScreenSize is a width/height pair in pixels.
type ScreenSize struct {
	Width  int
	Height int
}

// DefaultTargetSize replaces invalid resize targets.
var DefaultTargetSize = ScreenSize{Width: 320, Height: 180}

func (s ScreenSize) Valid() bool {
	return s.Width >= 1 && s.Height >= 1
}

type Pixelation struct {
	Mode        PixelationMode
	ScaleFactor int
	Target      ScreenSize
	Enabled     bool
}

var PixelationComponent = NewComponent[Pixelation]()
