package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/bryanchriswhite/pixwin/internal/logger"
)

// CursorStyle selects a glyph from the X cursor font.
type CursorStyle int

const (
	CursorArrow CursorStyle = iota
	CursorIbeam
	CursorCrosshair
	CursorClosedHand
	CursorOpenHand
	CursorResizeLeftRight
	CursorResizeUpDown
	CursorSizeAll
)

var cursorGlyphs = map[CursorStyle]uint16{
	CursorArrow:           xcursor.LeftPtr,
	CursorIbeam:           xcursor.XTerm,
	CursorCrosshair:       xcursor.Crosshair,
	CursorClosedHand:      xcursor.Hand1,
	CursorOpenHand:        xcursor.Hand2,
	CursorResizeLeftRight: xcursor.SBHDoubleArrow,
	CursorResizeUpDown:    xcursor.SBVDoubleArrow,
	CursorSizeAll:         xcursor.Fleur,
}

// SetCursor shows style over win, or hides the pointer when visible is false.
// Cursors are created on first use and kept until the connection closes.
func (c *Conn) SetCursor(win xproto.Window, style CursorStyle, visible bool) error {
	var (
		cursor xproto.Cursor
		err    error
	)
	if visible {
		cursor, err = c.cursor(style)
	} else {
		cursor, err = c.hiddenCursor()
	}
	if err != nil {
		return err
	}

	err = xproto.ChangeWindowAttributesChecked(c.conn, win, xproto.CwCursor, []uint32{uint32(cursor)}).Check()
	if err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}
	return nil
}

func (c *Conn) cursor(style CursorStyle) (xproto.Cursor, error) {
	if cur, ok := c.cursors[style]; ok {
		return cur, nil
	}
	glyph, ok := cursorGlyphs[style]
	if !ok {
		glyph = xcursor.LeftPtr
	}
	cur, err := xcursor.CreateCursor(c.xu, glyph)
	if err != nil {
		return 0, fmt.Errorf("failed to create cursor: %w", err)
	}
	c.cursors[style] = cur
	return cur, nil
}

// hiddenCursor builds a cursor from an empty 1x1 bitmap.
func (c *Conn) hiddenCursor() (xproto.Cursor, error) {
	if c.hidden != 0 {
		return c.hidden, nil
	}

	pix, err := xproto.NewPixmapId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate pixmap id: %w", err)
	}
	if err := xproto.CreatePixmapChecked(c.conn, 1, pix, xproto.Drawable(c.screen.Root), 1, 1).Check(); err != nil {
		return 0, fmt.Errorf("failed to create cursor pixmap: %w", err)
	}
	defer xproto.FreePixmap(c.conn, pix)

	// Pixmap contents start undefined; clear the mask so nothing shows.
	gc, err := xproto.NewGcontextId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(c.conn, gc, xproto.Drawable(pix), xproto.GcForeground, []uint32{0}).Check(); err != nil {
		return 0, fmt.Errorf("failed to create cursor gc: %w", err)
	}
	xproto.PolyFillRectangle(c.conn, xproto.Drawable(pix), gc, []xproto.Rectangle{{X: 0, Y: 0, Width: 1, Height: 1}})
	xproto.FreeGC(c.conn, gc)

	cur, err := xproto.NewCursorId(c.conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate cursor id: %w", err)
	}
	err = xproto.CreateCursorChecked(c.conn, cur, pix, pix, 0, 0, 0, 0, 0, 0, 0, 0).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create hidden cursor: %w", err)
	}

	c.hidden = cur
	return cur, nil
}

func (c *Conn) freeCursors() {
	for style, cur := range c.cursors {
		xproto.FreeCursor(c.conn, cur)
		delete(c.cursors, style)
	}
	if c.hidden != 0 {
		xproto.FreeCursor(c.conn, c.hidden)
		c.hidden = 0
	}
	logger.WithComponent("x11").Debug().Msg("Freed cursors")
}
