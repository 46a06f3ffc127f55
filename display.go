package pixwin

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/bryanchriswhite/pixwin/internal/logger"
	"github.com/bryanchriswhite/pixwin/internal/x11"
	"github.com/rs/zerolog"
)

// nativeConn is the part of the X connection a Display drives.
type nativeConn interface {
	ScreenSize() (int, int)
	KeyboardExtension() bool

	CreateWindow(cfg x11.WindowConfig) (xproto.Window, error)
	DestroyWindow(win xproto.Window)
	SetTitle(win xproto.Window, title string) error
	Move(win xproto.Window, x, y int) error

	NewImage(w, h int) (*x11.Image, error)
	PutImage(win xproto.Window, img *x11.Image, pixels []uint32) error

	QueryPointer(win xproto.Window) (x11.Pointer, error)
	SetCursor(win xproto.Window, style x11.CursorStyle, visible bool) error

	PollEvent() (xgb.Event, error)
	Keysym(keycode xproto.Keycode, column byte) xproto.Keysym
	IsDeleteWindow(ev xproto.ClientMessageEvent) bool
	RefreshKeyboardMapping() error

	Close()
}

// connect opens the native connection. Tests replace it.
var connect = func(name string) (nativeConn, error) {
	c, err := x11.Connect(name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Display is a connection to an X server and the windows opened on it.
type Display struct {
	conn    nativeConn
	windows map[xproto.Window]*Window
	closed  bool
	log     *zerolog.Logger
}

var (
	defaultMu      sync.Mutex
	defaultDisplay *Display
)

// OpenDisplay connects to the named X display. An empty name uses $DISPLAY.
func OpenDisplay(name string) (*Display, error) {
	conn, err := connect(name)
	if err != nil {
		return nil, err
	}
	return newDisplay(conn), nil
}

func newDisplay(conn nativeConn) *Display {
	return &Display{
		conn:    conn,
		windows: make(map[xproto.Window]*Window),
		log:     logger.WithComponent("display"),
	}
}

// DefaultDisplay returns the process-wide display, connecting to $DISPLAY on
// first use.
func DefaultDisplay() (*Display, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultDisplay != nil {
		return defaultDisplay, nil
	}
	d, err := OpenDisplay("")
	if err != nil {
		return nil, err
	}
	defaultDisplay = d
	return d, nil
}

// ScreenSize returns the size of the default screen of the default display.
func ScreenSize() (int, int, error) {
	d, err := DefaultDisplay()
	if err != nil {
		return 0, 0, err
	}
	w, h := d.ScreenSize()
	return w, h, nil
}

// ScreenSize returns the size of the default screen in pixels.
func (d *Display) ScreenSize() (int, int) {
	return d.conn.ScreenSize()
}

// KeyboardExtension reports whether the server supports XKEYBOARD.
func (d *Display) KeyboardExtension() bool {
	return d.conn.KeyboardExtension()
}

// Close disconnects from the server. It fails while windows are still open.
// Closing the default display lets DefaultDisplay connect again.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	if n := len(d.windows); n > 0 {
		return fmt.Errorf("%w: %d", ErrWindowsOpen, n)
	}

	d.closed = true
	d.conn.Close()

	defaultMu.Lock()
	if defaultDisplay == d {
		defaultDisplay = nil
	}
	defaultMu.Unlock()

	d.log.Debug().Msg("Display closed")
	return nil
}

// pumpEvents drains every queued event and routes each one to its window.
func (d *Display) pumpEvents() {
	var batch []xgb.Event
	for {
		ev, err := d.conn.PollEvent()
		if err != nil {
			d.log.Warn().Err(err).Msg("X protocol error")
			continue
		}
		if ev == nil {
			break
		}
		batch = append(batch, ev)
	}
	d.dispatch(batch)
}

func (d *Display) dispatch(batch []xgb.Event) {
	for i := 0; i < len(batch); i++ {
		switch ev := batch[i].(type) {
		case xproto.MappingNotifyEvent:
			if ev.Request == xproto.MappingKeyboard || ev.Request == xproto.MappingModifier {
				if err := d.conn.RefreshKeyboardMapping(); err != nil {
					d.log.Warn().Err(err).Msg("Failed to refresh keyboard mapping")
				}
			}
			continue

		case xproto.KeyReleaseEvent:
			// The server reports a held key as release/press pairs sharing
			// one timestamp.
			if i+1 < len(batch) {
				if next, ok := batch[i+1].(xproto.KeyPressEvent); ok &&
					next.Event == ev.Event && next.Detail == ev.Detail && next.Time == ev.Time {
					if w := d.windows[ev.Event]; w != nil {
						w.keyRepeat(next)
					}
					i++
					continue
				}
			}
		}

		id, ok := eventWindow(batch[i])
		if !ok {
			continue
		}
		w := d.windows[id]
		if w == nil {
			continue
		}
		w.handleEvent(batch[i])
	}
}

// eventWindow returns the window an event is addressed to.
func eventWindow(ev xgb.Event) (xproto.Window, bool) {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		return ev.Event, true
	case xproto.KeyReleaseEvent:
		return ev.Event, true
	case xproto.ButtonPressEvent:
		return ev.Event, true
	case xproto.ButtonReleaseEvent:
		return ev.Event, true
	case xproto.ConfigureNotifyEvent:
		return ev.Window, true
	case xproto.FocusInEvent:
		return ev.Event, true
	case xproto.FocusOutEvent:
		return ev.Event, true
	case xproto.ClientMessageEvent:
		return ev.Window, true
	case xproto.DestroyNotifyEvent:
		return ev.Window, true
	}
	return 0, false
}
