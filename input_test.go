package pixwin

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/bryanchriswhite/pixwin/internal/x11"
)

func TestMousePos(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		mode   MouseMode
		wantX  float32
		wantY  float32
		wantOK bool
	}{
		{"inside pass", 100, 60, MousePass, 50, 30, true},
		{"inside clamp", 100, 60, MouseClamp, 50, 30, true},
		{"inside discard", 100, 60, MouseDiscard, 50, 30, true},
		{"last pixel discard", 639, 479, MouseDiscard, 319.5, 239.5, true},
		{"left of window pass", -20, 60, MousePass, -10, 30, true},
		{"left of window clamp", -20, 60, MouseClamp, 0, 30, true},
		{"left of window discard", -20, 60, MouseDiscard, 0, 0, false},
		{"below window clamp", 100, 900, MouseClamp, 50, 239, true},
		{"right of window discard", 640, 10, MouseDiscard, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, conn := newTestDisplay(t)
			w := openTestWindow(t, d, 320, 240, Scale2)
			defer w.Close()

			conn.pointer = x11.Pointer{X: tt.px, Y: tt.py, SameScreen: true}

			x, y, ok := w.MousePos(tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("MousePos() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (x != tt.wantX || y != tt.wantY) {
				t.Errorf("MousePos() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUnscaledMousePos(t *testing.T) {
	d, conn := newTestDisplay(t)
	w := openTestWindow(t, d, 320, 240, Scale2)
	defer w.Close()

	conn.pointer = x11.Pointer{X: 700, Y: 100, SameScreen: true}

	if x, y, ok := w.UnscaledMousePos(MouseClamp); !ok || x != 639 || y != 100 {
		t.Errorf("UnscaledMousePos(clamp) = (%v, %v, %v), want (639, 100, true)", x, y, ok)
	}
	if x, y, ok := w.UnscaledMousePos(MousePass); !ok || x != 700 || y != 100 {
		t.Errorf("UnscaledMousePos(pass) = (%v, %v, %v), want (700, 100, true)", x, y, ok)
	}
	if _, _, ok := w.UnscaledMousePos(MouseDiscard); ok {
		t.Error("UnscaledMousePos(discard) reported an outside position")
	}
}

func TestMousePosUnavailable(t *testing.T) {
	t.Run("query fails", func(t *testing.T) {
		d, conn := newTestDisplay(t)
		w := openTestWindow(t, d, 10, 10, Scale1)
		defer w.Close()

		conn.pointerErr = errors.New("BadWindow")
		if _, _, ok := w.MousePos(MousePass); ok {
			t.Error("MousePos() reported a position after a failed query")
		}
	})

	t.Run("other screen", func(t *testing.T) {
		d, conn := newTestDisplay(t)
		w := openTestWindow(t, d, 10, 10, Scale1)
		defer w.Close()

		conn.pointer = x11.Pointer{X: 1, Y: 1}
		if _, _, ok := w.MousePos(MouseClamp); ok {
			t.Error("MousePos() reported a position on another screen")
		}
	})
}

func TestKeyQueriesOutOfRange(t *testing.T) {
	d, _ := newTestDisplay(t)
	w := openTestWindow(t, d, 10, 10, Scale1)
	defer w.Close()

	for _, k := range []Key{KeyUnknown, -1, keyCount, keyCount + 5} {
		if w.IsKeyDown(k) || w.IsKeyPressed(k, KeyRepeatYes) || w.IsKeyReleased(k) {
			t.Errorf("key %d reported state", k)
		}
	}
	if w.IsMouseDown(-1) || w.IsMouseDown(buttonCount) {
		t.Error("out of range button reported down")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{Key7, "7"},
		{KeyEscape, "Escape"},
		{KeyNumPadEnter, "NumPadEnter"},
		{keyCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysymMapping(t *testing.T) {
	tests := []struct {
		sym  xproto.Keysym
		want Key
	}{
		{'q', KeyQ},
		{'Q', KeyQ},
		{'0', Key0},
		{xkF1 + 11, KeyF12},
		{xkKP0 + 3, KeyNumPad3},
		{xkKPNext, KeyNumPad3},
		{xkReturn, KeyEnter},
		{xkShiftR, KeyRightShift},
		{xkGrave, KeyBackquote},
		{0x1234, KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyForKeysym(tt.sym); got != tt.want {
			t.Errorf("keyForKeysym(%#x) = %v, want %v", tt.sym, got, tt.want)
		}
	}
}
