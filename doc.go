// Package pixwin opens X11 windows that display a software frame buffer.
//
// The application owns a []uint32 buffer of 0x00RRGGBB pixels at a logical
// resolution and hands it to Window.UpdateWithBuffer once per frame. The
// window scales it by an integer factor, uploads it to the X server, and
// drains pending input events. Input is polled, never delivered through
// callbacks:
//
//	win, err := pixwin.Open("demo", 320, 240, pixwin.Options{Scale: pixwin.Scale2})
//	if err != nil {
//		return err
//	}
//	defer win.Close()
//
//	buf := make([]uint32, 320*240)
//	for win.IsOpen() && !win.IsKeyDown(pixwin.KeyEscape) {
//		// draw into buf
//		if err := win.UpdateWithBuffer(buf); err != nil {
//			return err
//		}
//	}
//
// A Display and its windows must be driven from a single goroutine.
package pixwin
