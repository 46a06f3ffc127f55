package pixwin

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/bryanchriswhite/pixwin/internal/logger"
	"github.com/bryanchriswhite/pixwin/internal/x11"
	"github.com/rs/zerolog"
)

// CursorStyle selects the pointer shape shown over a window.
type CursorStyle = x11.CursorStyle

const (
	CursorArrow           = x11.CursorArrow
	CursorIbeam           = x11.CursorIbeam
	CursorCrosshair       = x11.CursorCrosshair
	CursorClosedHand      = x11.CursorClosedHand
	CursorOpenHand        = x11.CursorOpenHand
	CursorResizeLeftRight = x11.CursorResizeLeftRight
	CursorResizeUpDown    = x11.CursorResizeUpDown
	CursorSizeAll         = x11.CursorSizeAll
)

// Window is an open window and the input state collected for it.
type Window struct {
	display *Display
	id      xproto.Window
	title   string
	flags   Flags

	width, height int // logical
	scale         int
	surfaceW      int
	surfaceH      int

	pixels  []uint32
	surface []uint32
	image   *x11.Image

	input  inputState
	active bool
	closed bool

	nativeW       int // last size reported by the server
	nativeH       int
	resized       bool
	resizeW       int
	resizeH       int
	cursorStyle   CursorStyle
	cursorVisible bool

	log *zerolog.Logger
}

// Open creates a window on the default display.
func Open(title string, width, height int, opts Options) (*Window, error) {
	d, err := DefaultDisplay()
	if err != nil {
		return nil, err
	}
	return d.Open(title, width, height, opts)
}

// Open creates a window showing a width by height buffer at the scale in
// opts. The window is centred on the screen and mapped before Open returns.
func (d *Display) Open(title string, width, height int, opts Options) (*Window, error) {
	if d.closed {
		return nil, fmt.Errorf("%w: display closed", ErrDisplayUnavailable)
	}

	screenW, screenH := d.conn.ScreenSize()
	scale, err := resolveScale(width, height, opts.Scale, screenW, screenH)
	if err != nil {
		return nil, err
	}
	surfaceW, surfaceH := width*scale, height*scale

	id, err := d.conn.CreateWindow(x11.WindowConfig{
		Title:      title,
		Width:      surfaceW,
		Height:     surfaceH,
		Resizable:  opts.resizable(),
		Borderless: opts.borderless(),
		TitleBar:   opts.titleBar(),
	})
	if err != nil {
		return nil, err
	}

	img, err := d.conn.NewImage(surfaceW, surfaceH)
	if err != nil {
		d.conn.DestroyWindow(id)
		return nil, err
	}

	w := &Window{
		display:       d,
		id:            id,
		title:         title,
		flags:         opts.Flags,
		width:         width,
		height:        height,
		scale:         scale,
		surfaceW:      surfaceW,
		surfaceH:      surfaceH,
		nativeW:       surfaceW,
		nativeH:       surfaceH,
		pixels:        make([]uint32, width*height),
		image:         img,
		cursorStyle:   CursorArrow,
		cursorVisible: true,
	}
	if scale == 1 {
		w.surface = w.pixels
	} else {
		w.surface = make([]uint32, surfaceW*surfaceH)
	}
	l := logger.WithComponent("window").With().Uint32("window_id", uint32(id)).Logger()
	w.log = &l

	d.windows[id] = w

	w.log.Info().
		Str("title", title).
		Int("width", width).
		Int("height", height).
		Int("scale", scale).
		Msg("Window opened")

	return w, nil
}

// Close destroys the window. It is safe to call more than once.
func (w *Window) Close() {
	w.release(true)
}

// release unregisters the window and drops its buffers. destroy is false
// when the server has already destroyed the native window.
func (w *Window) release(destroy bool) {
	if w.closed {
		return
	}
	w.closed = true
	delete(w.display.windows, w.id)
	if destroy {
		w.display.conn.DestroyWindow(w.id)
	}
	w.image = nil
	w.pixels = nil
	w.surface = nil

	w.log.Info().Msg("Window closed")
}

// IsOpen reports whether the window is still open.
func (w *Window) IsOpen() bool {
	return !w.closed
}

// IsActive reports whether the window has keyboard focus.
func (w *Window) IsActive() bool {
	return w.active
}

// Handle returns the native X window id.
func (w *Window) Handle() uint32 {
	return uint32(w.id)
}

// Size returns the logical buffer size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Scale returns the integer scale the window was opened with.
func (w *Window) Scale() int {
	return w.scale
}

// Title returns the current window title.
func (w *Window) Title() string {
	return w.title
}

// Resized reports a size change made by the window manager since the last
// call, in surface pixels.
func (w *Window) Resized() (int, int, bool) {
	if !w.resized {
		return 0, 0, false
	}
	w.resized = false
	return w.resizeW, w.resizeH, true
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	if w.closed {
		return ErrWindowClosed
	}
	if err := w.display.conn.SetTitle(w.id, title); err != nil {
		return err
	}
	w.title = title
	return nil
}

// SetPosition moves the window to x, y on the screen.
func (w *Window) SetPosition(x, y int) error {
	if w.closed {
		return ErrWindowClosed
	}
	return w.display.conn.Move(w.id, x, y)
}

// SetCursorStyle changes the pointer shape. The server is only contacted when
// the shape or visibility actually changes.
func (w *Window) SetCursorStyle(style CursorStyle) error {
	return w.setCursor(style, w.cursorVisible)
}

// SetCursorVisibility shows or hides the pointer over the window.
func (w *Window) SetCursorVisibility(visible bool) error {
	return w.setCursor(w.cursorStyle, visible)
}

func (w *Window) setCursor(style CursorStyle, visible bool) error {
	if w.closed {
		return ErrWindowClosed
	}
	if style == w.cursorStyle && visible == w.cursorVisible {
		return nil
	}
	if err := w.display.conn.SetCursor(w.id, style, visible); err != nil {
		return err
	}
	w.cursorStyle = style
	w.cursorVisible = visible
	return nil
}
