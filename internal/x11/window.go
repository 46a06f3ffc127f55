package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/bryanchriswhite/pixwin/internal/logger"
)

// windowEvents is the set of events every pixwin window selects. Pointer
// motion is absent because the pointer is queried on demand.
const windowEvents = xproto.EventMaskStructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskFocusChange

// WindowConfig describes a window to create. Width and Height are the surface
// size in pixels, after scaling.
type WindowConfig struct {
	Title      string
	Class      string
	Width      int
	Height     int
	Resizable  bool
	Borderless bool
	TitleBar   bool
}

// CreateWindow creates, decorates and maps a top-level window centred on the
// screen. A window that fails half way is destroyed before returning.
func (c *Conn) CreateWindow(cfg WindowConfig) (xproto.Window, error) {
	log := logger.WithComponent("x11")

	win, err := xproto.NewWindowId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to allocate window id: %w", ErrWindowCreation, err)
	}

	sw, sh := c.ScreenSize()
	x := (sw - cfg.Width) / 2
	y := (sh - cfg.Height) / 2

	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwBackingStore | xproto.CwEventMask)
	values := []uint32{
		c.screen.BlackPixel,
		c.screen.BlackPixel,
		xproto.BackingStoreNotUseful,
		windowEvents,
	}

	err = xproto.CreateWindowChecked(
		c.conn,
		c.screen.RootDepth,
		win,
		c.screen.Root,
		int16(x), int16(y),
		uint16(cfg.Width), uint16(cfg.Height),
		0, // border width
		xproto.WindowClassInputOutput,
		c.screen.RootVisual,
		mask,
		values,
	).Check()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	if err := c.decorate(win, cfg, x, y); err != nil {
		c.DestroyWindow(win)
		return 0, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}

	xproto.ClearArea(c.conn, false, win, 0, 0, 0, 0)
	if err := xproto.MapWindowChecked(c.conn, win).Check(); err != nil {
		c.DestroyWindow(win)
		return 0, fmt.Errorf("%w: failed to map window: %w", ErrWindowCreation, err)
	}
	c.conn.Sync()

	log.Debug().
		Uint32("window_id", uint32(win)).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("x", x).
		Int("y", y).
		Msg("Created window")

	return win, nil
}

// decorate sets the title, class, protocols and window manager hints.
func (c *Conn) decorate(win xproto.Window, cfg WindowConfig, x, y int) error {
	if err := c.SetTitle(win, cfg.Title); err != nil {
		return err
	}

	class := cfg.Class
	if class == "" {
		class = "pixwin"
	}
	if err := icccm.WmClassSet(c.xu, win, &icccm.WmClass{Instance: class, Class: class}); err != nil {
		return fmt.Errorf("failed to set WM_CLASS: %w", err)
	}

	if err := icccm.WmProtocolsSet(c.xu, win, []string{"WM_DELETE_WINDOW"}); err != nil {
		return fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	if !cfg.Resizable {
		hints := &icccm.NormalHints{
			Flags:     icccm.SizeHintPPosition | icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			X:         x,
			Y:         y,
			MinWidth:  uint(cfg.Width),
			MinHeight: uint(cfg.Height),
			MaxWidth:  uint(cfg.Width),
			MaxHeight: uint(cfg.Height),
		}
		if err := icccm.WmNormalHintsSet(c.xu, win, hints); err != nil {
			return fmt.Errorf("failed to set WM_NORMAL_HINTS: %w", err)
		}
	}

	if hints, ok := motifHints(cfg); ok {
		if err := motif.WmHintsSet(c.xu, win, hints); err != nil {
			return fmt.Errorf("failed to set _MOTIF_WM_HINTS: %w", err)
		}
	}

	return nil
}

// motifHints returns the decoration hints for cfg, or false when the window
// manager defaults should be left alone.
func motifHints(cfg WindowConfig) (*motif.Hints, bool) {
	switch {
	case cfg.Borderless:
		return &motif.Hints{
			Flags:      motif.HintDecorations,
			Decoration: motif.DecorationNone,
		}, true
	case !cfg.TitleBar:
		return &motif.Hints{
			Flags:      motif.HintDecorations,
			Decoration: motif.DecorationBorder | motif.DecorationResizeH,
		}, true
	}
	return nil, false
}

// SetTitle sets both the ICCCM and EWMH window names.
func (c *Conn) SetTitle(win xproto.Window, title string) error {
	if err := icccm.WmNameSet(c.xu, win, title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	if err := ewmh.WmNameSet(c.xu, win, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	return nil
}

// Move places the window at x, y relative to the root.
func (c *Conn) Move(win xproto.Window, x, y int) error {
	err := xproto.ConfigureWindowChecked(
		c.conn,
		win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to move window: %w", err)
	}
	return nil
}

// DestroyWindow destroys win and waits for the server to process it.
func (c *Conn) DestroyWindow(win xproto.Window) {
	xproto.DestroyWindow(c.conn, win)
	c.conn.Sync()
	logger.WithComponent("x11").Debug().
		Uint32("window_id", uint32(win)).
		Msg("Destroyed window")
}
