// Package x11 talks to the X server on behalf of pixwin windows.
//
// It owns the protocol details: the pixel format check, window creation and
// window manager hints, banded image upload, pointer queries, keysym lookup
// and cursor font cursors.
package x11

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/bryanchriswhite/pixwin/internal/logger"
)

var (
	// ErrDisplayUnavailable is returned when the X server cannot be reached.
	ErrDisplayUnavailable = errors.New("x11: display unavailable")
	// ErrUnsupportedPixelFormat is returned when the root depth is not stored
	// as 32 bits per pixel.
	ErrUnsupportedPixelFormat = errors.New("x11: unsupported pixel format")
	// ErrWindowCreation is returned when the native window cannot be created.
	ErrWindowCreation = errors.New("x11: native window creation failed")
	// ErrImageCreation is returned when the image descriptor cannot be built.
	ErrImageCreation = errors.New("x11: native image creation failed")
)

// putImageHeader is the fixed part of a PutImage request in bytes.
const putImageHeader = 24

// Conn is an open connection to an X server plus the per-screen state every
// window needs.
type Conn struct {
	xu     *xgbutil.XUtil
	conn   *xgb.Conn
	screen *xproto.ScreenInfo

	format    xproto.Format
	byteOrder binary.ByteOrder

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom

	keyboardExt     bool
	maxRequestBytes int

	cursors map[CursorStyle]xproto.Cursor
	hidden  xproto.Cursor
}

// Connect opens the named display. An empty name uses $DISPLAY.
func Connect(name string) (*Conn, error) {
	log := logger.WithComponent("x11")

	xu, err := xgbutil.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDisplayUnavailable, err)
	}

	setup := xu.Setup()
	screen := xu.Screen()

	format, err := pixmapFormat(setup.PixmapFormats, screen.RootDepth)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}

	c := &Conn{
		xu:              xu,
		conn:            xu.Conn(),
		screen:          screen,
		format:          format,
		byteOrder:       serverByteOrder(setup.ImageByteOrder),
		maxRequestBytes: int(setup.MaximumRequestLength) * 4,
		cursors:         make(map[CursorStyle]xproto.Cursor),
	}

	if c.wmProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS"); err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: failed to intern WM_PROTOCOLS: %w", ErrDisplayUnavailable, err)
	}
	if c.wmDeleteWindow, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: failed to intern WM_DELETE_WINDOW: %w", ErrDisplayUnavailable, err)
	}

	if err := c.RefreshKeyboardMapping(); err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: %w", ErrDisplayUnavailable, err)
	}

	c.keyboardExt = c.queryExtension("XKEYBOARD")

	log.Info().
		Str("display", name).
		Uint16("screen_width", screen.WidthInPixels).
		Uint16("screen_height", screen.HeightInPixels).
		Uint8("depth", screen.RootDepth).
		Bool("xkb", c.keyboardExt).
		Int("max_request_bytes", c.maxRequestBytes).
		Msg("Connected to X server")

	return c, nil
}

// pixmapFormat finds the format the server uses for depth and requires it to
// be 32 bits per pixel.
func pixmapFormat(formats []xproto.Format, depth byte) (xproto.Format, error) {
	for _, f := range formats {
		if f.Depth != depth {
			continue
		}
		if f.BitsPerPixel != 32 {
			return f, fmt.Errorf("%w: depth %d uses %d bits per pixel",
				ErrUnsupportedPixelFormat, depth, f.BitsPerPixel)
		}
		return f, nil
	}
	return xproto.Format{}, fmt.Errorf("%w: no pixmap format for depth %d",
		ErrUnsupportedPixelFormat, depth)
}

func serverByteOrder(order byte) binary.ByteOrder {
	if order == xproto.ImageOrderLSBFirst {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// queryExtension reports whether the server advertises the named extension.
// Failure only means the extension is treated as absent.
func (c *Conn) queryExtension(name string) bool {
	reply, err := xproto.QueryExtension(c.conn, uint16(len(name)), name).Reply()
	if err != nil {
		logger.WithComponent("x11").Debug().
			Err(err).
			Str("extension", name).
			Msg("Extension query failed")
		return false
	}
	return reply.Present
}

// RefreshKeyboardMapping reloads the keycode to keysym table. It is called on
// connect and whenever the server reports a MappingNotify.
func (c *Conn) RefreshKeyboardMapping() error {
	setup := c.xu.Setup()
	first := setup.MinKeycode
	count := byte(int(setup.MaxKeycode) - int(first) + 1)

	keyMap, err := xproto.GetKeyboardMapping(c.conn, first, count).Reply()
	if err != nil {
		return fmt.Errorf("failed to get keyboard mapping: %w", err)
	}
	modMap, err := xproto.GetModifierMapping(c.conn).Reply()
	if err != nil {
		return fmt.Errorf("failed to get modifier mapping: %w", err)
	}

	keybind.KeyMapSet(c.xu, keyMap)
	keybind.ModMapSet(c.xu, modMap)
	return nil
}

// Keysym returns the keysym bound to keycode in the given column of the
// keyboard mapping, or 0 when there is none.
func (c *Conn) Keysym(keycode xproto.Keycode, column byte) xproto.Keysym {
	keyMap := keybind.KeyMapGet(c.xu)
	if keyMap == nil || column >= keyMap.KeysymsPerKeycode {
		return 0
	}
	setup := c.xu.Setup()
	if keycode < setup.MinKeycode || keycode > setup.MaxKeycode {
		return 0
	}
	return keybind.KeysymGetWithMap(c.xu, keyMap, keycode, column)
}

// KeyboardExtension reports whether the server supports XKEYBOARD.
func (c *Conn) KeyboardExtension() bool {
	return c.keyboardExt
}

// ScreenSize returns the size of the default screen in pixels.
func (c *Conn) ScreenSize() (int, int) {
	return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
}

// Format describes the server pixmap format for the root depth.
func (c *Conn) Format() xproto.Format {
	return c.format
}

// Setup exposes the connection setup for diagnostics.
func (c *Conn) Setup() *xproto.SetupInfo {
	return c.xu.Setup()
}

// PollEvent returns the next queued event without blocking. Both results are
// nil when the queue is empty.
func (c *Conn) PollEvent() (xgb.Event, error) {
	ev, xerr := c.conn.PollForEvent()
	if xerr != nil {
		return nil, xerr
	}
	return ev, nil
}

// IsDeleteWindow reports whether ev is a WM_DELETE_WINDOW request.
func (c *Conn) IsDeleteWindow(ev xproto.ClientMessageEvent) bool {
	return ev.Format == 32 &&
		ev.Type == c.wmProtocols &&
		xproto.Atom(ev.Data.Data32[0]) == c.wmDeleteWindow
}

// Close frees the cursors and closes the connection.
func (c *Conn) Close() {
	c.freeCursors()
	c.conn.Close()
	logger.WithComponent("x11").Info().Msg("Disconnected from X server")
}
