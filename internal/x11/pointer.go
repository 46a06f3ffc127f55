package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Pointer is the pointer position relative to a window.
type Pointer struct {
	X, Y       int
	SameScreen bool
}

// QueryPointer asks the server where the pointer is relative to win.
func (c *Conn) QueryPointer(win xproto.Window) (Pointer, error) {
	reply, err := xproto.QueryPointer(c.conn, win).Reply()
	if err != nil {
		return Pointer{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	return Pointer{
		X:          int(reply.WinX),
		Y:          int(reply.WinY),
		SameScreen: reply.SameScreen,
	}, nil
}
