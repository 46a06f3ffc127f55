package pixwin

import (
	"errors"

	"github.com/bryanchriswhite/pixwin/internal/x11"
)

var (
	// ErrDisplayUnavailable is returned when the X server cannot be reached.
	ErrDisplayUnavailable = x11.ErrDisplayUnavailable
	// ErrUnsupportedPixelFormat is returned when the server does not store
	// its default depth as 32 bits per pixel.
	ErrUnsupportedPixelFormat = x11.ErrUnsupportedPixelFormat
	// ErrWindowCreation is returned when the native window cannot be created.
	ErrWindowCreation = x11.ErrWindowCreation
	// ErrImageCreation is returned when the native image cannot be created.
	ErrImageCreation = x11.ErrImageCreation

	// ErrInvalidDimensions is returned when a window size or scale is rejected.
	ErrInvalidDimensions = errors.New("pixwin: invalid window dimensions")
	// ErrBufferSizeMismatch is returned when a frame does not hold width*height pixels.
	ErrBufferSizeMismatch = errors.New("pixwin: buffer size mismatch")
	// ErrWindowClosed is returned by operations on a closed window.
	ErrWindowClosed = errors.New("pixwin: window closed")
	// ErrWindowsOpen is returned when a display is closed before its windows.
	ErrWindowsOpen = errors.New("pixwin: display still has open windows")
)
