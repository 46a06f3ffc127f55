package pixwin

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

const (
	kcEscape xproto.Keycode = 9
	kcA      xproto.Keycode = 38
	kcKP7    xproto.Keycode = 79
	kcF5     xproto.Keycode = 71
)

func withKeymap(conn *fakeConn) {
	conn.keysyms[keysymKey{kcEscape, 0}] = xkEscape
	conn.keysyms[keysymKey{kcA, 0}] = 'a'
	conn.keysyms[keysymKey{kcA, 1}] = 'A'
	conn.keysyms[keysymKey{kcKP7, 0}] = xkKPHome
	conn.keysyms[keysymKey{kcKP7, 1}] = xkKP0 + 7
	conn.keysyms[keysymKey{kcF5, 0}] = xkF1 + 4
}

func TestKeyPressAndRelease(t *testing.T) {
	d, conn := newTestDisplay(t)
	withKeymap(conn)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	conn.queue(xproto.KeyPressEvent{Event: w.id, Detail: kcA, Time: 1})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !w.IsKeyDown(KeyA) {
		t.Fatal("KeyA not down after press")
	}
	if !w.IsKeyPressed(KeyA, KeyRepeatNo) {
		t.Error("KeyA not reported as pressed")
	}

	// No events: state is stable and edges clear.
	for i := 0; i < 3; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() unexpected error: %v", err)
		}
		if !w.IsKeyDown(KeyA) {
			t.Fatalf("KeyA not down on idle poll %d", i)
		}
	}
	if w.IsKeyPressed(KeyA, KeyRepeatYes) {
		t.Error("press edge survived an idle update")
	}

	conn.queue(xproto.KeyReleaseEvent{Event: w.id, Detail: kcA, Time: 5})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if w.IsKeyDown(KeyA) {
		t.Error("KeyA still down after release")
	}
	if !w.IsKeyReleased(KeyA) {
		t.Error("KeyA not reported as released")
	}
}

func TestKeyEdgesSurviveOtherWindowDrain(t *testing.T) {
	d, conn := newTestDisplay(t)
	withKeymap(conn)
	a := openTestWindow(t, d, 10, 10, Scale1)
	defer a.Close()
	b := openTestWindow(t, d, 10, 10, Scale1)
	defer b.Close()

	conn.queue(xproto.KeyPressEvent{Event: b.id, Detail: kcA, Time: 1})
	if err := a.Update(); err != nil {
		t.Fatalf("a.Update() unexpected error: %v", err)
	}
	if a.IsKeyPressed(KeyA, KeyRepeatNo) || a.IsKeyDown(KeyA) {
		t.Error("press for b reported on a")
	}

	if err := b.Update(); err != nil {
		t.Fatalf("b.Update() unexpected error: %v", err)
	}
	if !b.IsKeyDown(KeyA) {
		t.Error("KeyA not down on b")
	}
	if !b.IsKeyPressed(KeyA, KeyRepeatNo) {
		t.Error("press edge for b lost when a drained first")
	}

	conn.queue(xproto.KeyReleaseEvent{Event: b.id, Detail: kcA, Time: 2})
	if err := a.Update(); err != nil {
		t.Fatalf("a.Update() unexpected error: %v", err)
	}
	if err := b.Update(); err != nil {
		t.Fatalf("b.Update() unexpected error: %v", err)
	}
	if !b.IsKeyReleased(KeyA) {
		t.Error("release edge for b lost when a drained first")
	}
	if b.IsKeyPressed(KeyA, KeyRepeatYes) {
		t.Error("press edge for b survived a second update")
	}
}

func TestKeyTranslation(t *testing.T) {
	tests := []struct {
		name    string
		xkb     bool
		keycode xproto.Keycode
		want    Key
	}{
		{"letter", false, kcA, KeyA},
		{"escape", false, kcEscape, KeyEscape},
		{"function key", false, kcF5, KeyF5},
		{"keypad without extension", false, kcKP7, KeyNumPad7},
		{"keypad with extension", true, kcKP7, KeyNumPad7},
		{"letter with extension", true, kcA, KeyA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, conn := newTestDisplay(t)
			withKeymap(conn)
			conn.xkb = tt.xkb

			if got := translateKey(d.conn, tt.keycode); got != tt.want {
				t.Errorf("translateKey(%d) = %v, want %v", tt.keycode, got, tt.want)
			}
		})
	}
}

func TestUnmappedKeyIgnored(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	conn.queue(xproto.KeyPressEvent{Event: w.id, Detail: 200})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if keys := w.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v, want none", keys)
	}
}

func TestKeyAutorepeat(t *testing.T) {
	d, conn := newTestDisplay(t)
	withKeymap(conn)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	conn.queue(xproto.KeyPressEvent{Event: w.id, Detail: kcA, Time: 10})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	conn.queue(
		xproto.KeyReleaseEvent{Event: w.id, Detail: kcA, Time: 40},
		xproto.KeyPressEvent{Event: w.id, Detail: kcA, Time: 40},
	)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if !w.IsKeyDown(KeyA) {
		t.Error("KeyA released by an autorepeat pair")
	}
	if w.IsKeyReleased(KeyA) {
		t.Error("autorepeat reported as release")
	}
	if w.IsKeyPressed(KeyA, KeyRepeatNo) {
		t.Error("autorepeat reported as a fresh press")
	}
	if !w.IsKeyPressed(KeyA, KeyRepeatYes) {
		t.Error("autorepeat not reported with KeyRepeatYes")
	}
}

func TestMouseButtons(t *testing.T) {
	tests := []struct {
		detail xproto.Button
		button MouseButton
	}{
		{1, MouseLeft},
		{2, MouseMiddle},
		{3, MouseRight},
		{8, MouseExtra1},
		{9, MouseExtra2},
	}

	for _, tt := range tests {
		d, conn := newTestDisplay(t)
		w := openTestWindow(t, d, 10, 10, Scale1)

		conn.queue(xproto.ButtonPressEvent{Event: w.id, Detail: tt.detail})
		if err := w.Update(); err != nil {
			t.Fatalf("Update() unexpected error: %v", err)
		}
		if !w.IsMouseDown(tt.button) {
			t.Errorf("button %d: IsMouseDown() = false after press", tt.detail)
		}

		conn.queue(xproto.ButtonReleaseEvent{Event: w.id, Detail: tt.detail})
		if err := w.Update(); err != nil {
			t.Fatalf("Update() unexpected error: %v", err)
		}
		if w.IsMouseDown(tt.button) {
			t.Errorf("button %d: IsMouseDown() = true after release", tt.detail)
		}
		w.Close()
	}
}

func TestScrollWheel(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	if _, _, ok := w.ScrollWheel(); ok {
		t.Fatal("ScrollWheel() reported a value before any scroll")
	}

	conn.queue(
		xproto.ButtonPressEvent{Event: w.id, Detail: 4},
		xproto.ButtonReleaseEvent{Event: w.id, Detail: 4},
		xproto.ButtonPressEvent{Event: w.id, Detail: 4},
		xproto.ButtonPressEvent{Event: w.id, Detail: 7},
	)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	dx, dy, ok := w.ScrollWheel()
	if !ok || dx != -10 || dy != 20 {
		t.Errorf("ScrollWheel() = (%v, %v, %v), want (-10, 20, true)", dx, dy, ok)
	}
	if _, _, ok := w.ScrollWheel(); ok {
		t.Error("second ScrollWheel() read was not empty")
	}

	conn.queue(
		xproto.ButtonPressEvent{Event: w.id, Detail: 5},
		xproto.ButtonPressEvent{Event: w.id, Detail: 6},
	)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	dx, dy, ok = w.ScrollWheel()
	if !ok || dx != 10 || dy != -10 {
		t.Errorf("ScrollWheel() = (%v, %v, %v), want (10, -10, true)", dx, dy, ok)
	}
	for b := MouseLeft; b < buttonCount; b++ {
		if w.IsMouseDown(b) {
			t.Errorf("wheel set button %d down", b)
		}
	}
}

func TestConfigureNotifyResize(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 100, 50, Scale2)
	defer w.Close()

	conn.queue(xproto.ConfigureNotifyEvent{Event: w.id, Window: w.id, Width: 200, Height: 100})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if _, _, ok := w.Resized(); ok {
		t.Fatal("Resized() reported a change for an unchanged size")
	}

	conn.queue(xproto.ConfigureNotifyEvent{Event: w.id, Window: w.id, Width: 300, Height: 120})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	rw, rh, ok := w.Resized()
	if !ok || rw != 300 || rh != 120 {
		t.Errorf("Resized() = (%d, %d, %v), want (300, 120, true)", rw, rh, ok)
	}
	if _, _, ok := w.Resized(); ok {
		t.Error("Resized() not consumed on read")
	}

	// A move reports the same size again.
	conn.queue(xproto.ConfigureNotifyEvent{Event: w.id, Window: w.id, X: 40, Y: 40, Width: 300, Height: 120})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if rw, rh, ok := w.Resized(); ok {
		t.Errorf("Resized() = (%d, %d, true) after a move at the same size", rw, rh)
	}
}

func TestFocus(t *testing.T) {
	d, conn := newTestDisplay(t)
	withKeymap(conn)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	conn.queue(
		xproto.FocusInEvent{Event: w.id},
		xproto.KeyPressEvent{Event: w.id, Detail: kcA},
	)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !w.IsActive() {
		t.Error("IsActive() = false after FocusIn")
	}

	conn.queue(xproto.FocusOutEvent{Event: w.id})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if w.IsActive() {
		t.Error("IsActive() = true after FocusOut")
	}
	if w.IsKeyDown(KeyA) {
		t.Error("held key survived focus loss")
	}
	if !w.IsKeyReleased(KeyA) {
		t.Error("focus loss did not report KeyA as released")
	}
	if w.IsKeyReleased(KeyEscape) {
		t.Error("focus loss released a key that was not held")
	}
}

func TestDeleteWindowClosesWindow(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)
	id := w.id

	conn.queue(deleteMessage(id))
	if err := w.UpdateWithBuffer(make([]uint32, 100)); err != nil {
		t.Fatalf("UpdateWithBuffer() unexpected error: %v", err)
	}

	if w.IsOpen() {
		t.Fatal("IsOpen() = true after delete request")
	}
	if _, ok := d.windows[id]; ok {
		t.Error("closed window still registered")
	}
	if len(conn.presented) != 0 {
		t.Error("frame presented after the window closed")
	}
	if len(conn.destroyed) != 1 || conn.destroyed[0] != id {
		t.Errorf("destroyed = %v, want [%#x]", conn.destroyed, id)
	}

	// Events that arrive after close are dropped.
	other := openTestWindow(t, d, 10, 10, Scale1)
	defer other.Close()
	conn.queue(
		xproto.ButtonPressEvent{Event: id, Detail: 1},
		deleteMessage(id),
	)
	if err := other.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if w.IsMouseDown(MouseLeft) {
		t.Error("event after close changed the closed window")
	}
	if len(conn.destroyed) != 1 {
		t.Errorf("closed window destroyed again: %v", conn.destroyed)
	}
}

func TestForeignClientMessageIgnored(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	ev := deleteMessage(w.id)
	ev.Type = fakeProtocols + 1
	conn.queue(ev)
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !w.IsOpen() {
		t.Error("unrelated client message closed the window")
	}
}

func TestDestroyNotifyClosesWithoutDestroying(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)

	conn.queue(xproto.DestroyNotifyEvent{Event: w.id, Window: w.id})
	if err := w.Update(); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if w.IsOpen() {
		t.Error("IsOpen() = true after DestroyNotify")
	}
	if len(conn.destroyed) != 0 {
		t.Error("already destroyed window destroyed again")
	}
	if err := d.Close(); err != nil {
		t.Errorf("display Close() error = %v, want nil", err)
	}
}
