package pixwin

import "fmt"

// Flags controls window decoration and resizing.
type Flags uint32

const (
	FlagBorderless Flags = 1 << 1
	FlagResizable  Flags = 1 << 2
	FlagTitle      Flags = 1 << 3
)

// Scale is the integer factor applied to the logical buffer.
type Scale int

const (
	// ScaleFitScreen picks the largest power of two up to 32 whose surface
	// still fits on the screen.
	ScaleFitScreen Scale = -1

	Scale1  Scale = 1
	Scale2  Scale = 2
	Scale4  Scale = 4
	Scale8  Scale = 8
	Scale16 Scale = 16
	Scale32 Scale = 32
)

// maxSurface is the largest window side X11 can express.
const maxSurface = 0xffff

// Options configures a new window. The zero value is a fixed-size window
// without a title bar at scale 1.
type Options struct {
	Flags Flags
	Scale Scale
}

// DefaultOptions returns a window with a title bar at scale 1.
func DefaultOptions() Options {
	return Options{Flags: FlagTitle, Scale: Scale1}
}

func (o Options) resizable() bool  { return o.Flags&FlagResizable != 0 }
func (o Options) borderless() bool { return o.Flags&FlagBorderless != 0 }
func (o Options) titleBar() bool   { return o.Flags&FlagTitle != 0 }

// resolveScale validates the requested size and returns the concrete scale.
func resolveScale(width, height int, scale Scale, screenW, screenH int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	var s int
	switch {
	case scale == 0:
		s = 1
	case scale == ScaleFitScreen:
		s = fitScreen(width, height, screenW, screenH)
	case scale < 0:
		return 0, fmt.Errorf("%w: scale %d", ErrInvalidDimensions, scale)
	default:
		s = int(scale)
	}

	if width > maxSurface/s || height > maxSurface/s {
		return 0, fmt.Errorf("%w: %dx%d at scale %d exceeds %d pixels",
			ErrInvalidDimensions, width, height, s, maxSurface)
	}
	return s, nil
}

func fitScreen(width, height, screenW, screenH int) int {
	s := 1
	for next := 2; next <= int(Scale32); next *= 2 {
		if width*next > screenW || height*next > screenH {
			break
		}
		s = next
	}
	return s
}
