package pixwin

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// scrollStep is the distance reported for one wheel click.
const scrollStep = 10

type keyEdges struct {
	pressed  bool
	released bool
	repeated bool
}

// keyState holds the edges visible to the last update and the edges
// recorded since then. Events for one window can arrive while another
// window drains, so edges wait in pending until this window's own drain.
type keyState struct {
	down bool
	keyEdges
	pending keyEdges
}

// inputState is written while events are drained and read by the polling
// methods on Window.
type inputState struct {
	keys    [keyCount]keyState
	buttons [buttonCount]bool
	scrollX float32
	scrollY float32
}

// flushEdges replaces the previous frame's edges with the ones recorded
// since.
func (s *inputState) flushEdges() {
	for i := range s.keys {
		s.keys[i].keyEdges = s.keys[i].pending
		s.keys[i].pending = keyEdges{}
	}
}

func (w *Window) handleEvent(ev xgb.Event) {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		key := translateKey(w.display.conn, ev.Detail)
		if key == KeyUnknown {
			return
		}
		k := &w.input.keys[key]
		k.down = true
		k.pending.pressed = true

	case xproto.KeyReleaseEvent:
		key := translateKey(w.display.conn, ev.Detail)
		if key == KeyUnknown {
			return
		}
		k := &w.input.keys[key]
		k.down = false
		k.pending.released = true

	case xproto.ButtonPressEvent:
		switch ev.Detail {
		case 4:
			w.input.scrollY += scrollStep
		case 5:
			w.input.scrollY -= scrollStep
		case 6:
			w.input.scrollX += scrollStep
		case 7:
			w.input.scrollX -= scrollStep
		default:
			if b, ok := mouseButton(ev.Detail); ok {
				w.input.buttons[b] = true
			}
		}

	case xproto.ButtonReleaseEvent:
		if b, ok := mouseButton(ev.Detail); ok {
			w.input.buttons[b] = false
		}

	case xproto.ConfigureNotifyEvent:
		width, height := int(ev.Width), int(ev.Height)
		if width != w.nativeW || height != w.nativeH {
			w.nativeW, w.nativeH = width, height
			w.resized = true
			w.resizeW = width
			w.resizeH = height
		}

	case xproto.FocusInEvent:
		w.active = true

	case xproto.FocusOutEvent:
		w.active = false
		// Releases are not delivered once focus is gone.
		for i := range w.input.keys {
			if k := &w.input.keys[i]; k.down {
				k.down = false
				k.pending.released = true
			}
		}
		clear(w.input.buttons[:])

	case xproto.ClientMessageEvent:
		if w.display.conn.IsDeleteWindow(ev) {
			w.log.Debug().Msg("Close requested by window manager")
			w.release(true)
		}

	case xproto.DestroyNotifyEvent:
		w.release(false)
	}
}

// keyRepeat records an autorepeated press of a key that is already down.
func (w *Window) keyRepeat(ev xproto.KeyPressEvent) {
	key := translateKey(w.display.conn, ev.Detail)
	if key == KeyUnknown {
		return
	}
	k := &w.input.keys[key]
	k.down = true
	k.pending.repeated = true
}

func mouseButton(detail xproto.Button) (MouseButton, bool) {
	switch detail {
	case 1:
		return MouseLeft, true
	case 2:
		return MouseMiddle, true
	case 3:
		return MouseRight, true
	case 8:
		return MouseExtra1, true
	case 9:
		return MouseExtra2, true
	}
	return 0, false
}

// IsKeyDown reports whether key is held.
func (w *Window) IsKeyDown(key Key) bool {
	if key <= KeyUnknown || key >= keyCount {
		return false
	}
	return w.input.keys[key].down
}

// IsKeyPressed reports whether key went down during the last update. With
// KeyRepeatYes, autorepeat presses of a held key count as well.
func (w *Window) IsKeyPressed(key Key, repeat KeyRepeat) bool {
	if key <= KeyUnknown || key >= keyCount {
		return false
	}
	k := w.input.keys[key]
	return k.pressed || (bool(repeat) && k.repeated)
}

// IsKeyReleased reports whether key went up during the last update.
func (w *Window) IsKeyReleased(key Key) bool {
	if key <= KeyUnknown || key >= keyCount {
		return false
	}
	return w.input.keys[key].released
}

// Keys returns every key currently held.
func (w *Window) Keys() []Key {
	var keys []Key
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if w.input.keys[k].down {
			keys = append(keys, k)
		}
	}
	return keys
}

// IsMouseDown reports whether button is held.
func (w *Window) IsMouseDown(button MouseButton) bool {
	if button < 0 || button >= buttonCount {
		return false
	}
	return w.input.buttons[button]
}

// ScrollWheel returns the scroll distance accumulated since the last call.
func (w *Window) ScrollWheel() (float32, float32, bool) {
	dx, dy := w.input.scrollX, w.input.scrollY
	w.input.scrollX, w.input.scrollY = 0, 0
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}
	return dx, dy, true
}

// MousePos returns the pointer position in buffer coordinates.
func (w *Window) MousePos(mode MouseMode) (float32, float32, bool) {
	x, y, ok := w.pointer()
	if !ok {
		return 0, 0, false
	}
	s := float32(w.scale)
	return applyMouseMode(x/s, y/s, float32(w.width), float32(w.height), mode)
}

// UnscaledMousePos returns the pointer position in window pixels.
func (w *Window) UnscaledMousePos(mode MouseMode) (float32, float32, bool) {
	x, y, ok := w.pointer()
	if !ok {
		return 0, 0, false
	}
	return applyMouseMode(x, y, float32(w.surfaceW), float32(w.surfaceH), mode)
}

func (w *Window) pointer() (float32, float32, bool) {
	if w.closed {
		return 0, 0, false
	}
	p, err := w.display.conn.QueryPointer(w.id)
	if err != nil {
		w.log.Debug().Err(err).Msg("Pointer query failed")
		return 0, 0, false
	}
	if !p.SameScreen {
		return 0, 0, false
	}
	return float32(p.X), float32(p.Y), true
}

func applyMouseMode(x, y, width, height float32, mode MouseMode) (float32, float32, bool) {
	switch mode {
	case MouseClamp:
		return clamp(x, 0, width-1), clamp(y, 0, height-1), true
	case MouseDiscard:
		if x < 0 || y < 0 || x >= width || y >= height {
			return 0, 0, false
		}
	}
	return x, y, true
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
