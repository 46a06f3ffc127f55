package pixwin

import "github.com/BurntSushi/xgb/xproto"

// Keysym values from X11/keysymdef.h.
const (
	xkBackSpace    = 0xff08
	xkTab          = 0xff09
	xkReturn       = 0xff0d
	xkPause        = 0xff13
	xkScrollLock   = 0xff14
	xkEscape       = 0xff1b
	xkHome         = 0xff50
	xkLeft         = 0xff51
	xkUp           = 0xff52
	xkRight        = 0xff53
	xkDown         = 0xff54
	xkPrior        = 0xff55
	xkNext         = 0xff56
	xkEnd          = 0xff57
	xkInsert       = 0xff63
	xkMenu         = 0xff67
	xkNumLock      = 0xff7f
	xkKPEnter      = 0xff8d
	xkKPHome       = 0xff95
	xkKPLeft       = 0xff96
	xkKPUp         = 0xff97
	xkKPRight      = 0xff98
	xkKPDown       = 0xff99
	xkKPPrior      = 0xff9a
	xkKPNext       = 0xff9b
	xkKPEnd        = 0xff9c
	xkKPBegin      = 0xff9d
	xkKPInsert     = 0xff9e
	xkKPDelete     = 0xff9f
	xkKPMultiply   = 0xffaa
	xkKPAdd        = 0xffab
	xkKPSeparator  = 0xffac
	xkKPSubtract   = 0xffad
	xkKPDecimal    = 0xffae
	xkKPDivide     = 0xffaf
	xkKP0          = 0xffb0
	xkKP9          = 0xffb9
	xkKPEqual      = 0xffbd
	xkF1           = 0xffbe
	xkF15          = 0xffcc
	xkShiftL       = 0xffe1
	xkShiftR       = 0xffe2
	xkControlL     = 0xffe3
	xkControlR     = 0xffe4
	xkCapsLock     = 0xffe5
	xkAltL         = 0xffe9
	xkAltR         = 0xffea
	xkSuperL       = 0xffeb
	xkSuperR       = 0xffec
	xkDelete       = 0xffff
	xkISOLeftTab   = 0xfe20
	xkISOLevel3    = 0xfe03
	xkSpace        = 0x20
	xkApostrophe   = 0x27
	xkComma        = 0x2c
	xkMinus        = 0x2d
	xkPeriod       = 0x2e
	xkSlash        = 0x2f
	xkSemicolon    = 0x3b
	xkEqual        = 0x3d
	xkBracketLeft  = 0x5b
	xkBackslash    = 0x5c
	xkBracketRight = 0x5d
	xkGrave        = 0x60
)

var keysymKeys = map[xproto.Keysym]Key{
	xkBackSpace:    KeyBackspace,
	xkTab:          KeyTab,
	xkISOLeftTab:   KeyTab,
	xkReturn:       KeyEnter,
	xkPause:        KeyPause,
	xkScrollLock:   KeyScrollLock,
	xkEscape:       KeyEscape,
	xkHome:         KeyHome,
	xkLeft:         KeyLeft,
	xkUp:           KeyUp,
	xkRight:        KeyRight,
	xkDown:         KeyDown,
	xkPrior:        KeyPageUp,
	xkNext:         KeyPageDown,
	xkEnd:          KeyEnd,
	xkInsert:       KeyInsert,
	xkMenu:         KeyMenu,
	xkNumLock:      KeyNumLock,
	xkCapsLock:     KeyCapsLock,
	xkDelete:       KeyDelete,
	xkShiftL:       KeyLeftShift,
	xkShiftR:       KeyRightShift,
	xkControlL:     KeyLeftCtrl,
	xkControlR:     KeyRightCtrl,
	xkAltL:         KeyLeftAlt,
	xkAltR:         KeyRightAlt,
	xkISOLevel3:    KeyRightAlt,
	xkSuperL:       KeyLeftSuper,
	xkSuperR:       KeyRightSuper,
	xkSpace:        KeySpace,
	xkApostrophe:   KeyApostrophe,
	xkComma:        KeyComma,
	xkMinus:        KeyMinus,
	xkPeriod:       KeyPeriod,
	xkSlash:        KeySlash,
	xkSemicolon:    KeySemicolon,
	xkEqual:        KeyEqual,
	xkBracketLeft:  KeyLeftBracket,
	xkBackslash:    KeyBackslash,
	xkBracketRight: KeyRightBracket,
	xkGrave:        KeyBackquote,

	xkKPEnter:     KeyNumPadEnter,
	xkKPMultiply:  KeyNumPadAsterisk,
	xkKPAdd:       KeyNumPadPlus,
	xkKPSeparator: KeyNumPadDot,
	xkKPSubtract:  KeyNumPadMinus,
	xkKPDecimal:   KeyNumPadDot,
	xkKPDivide:    KeyNumPadSlash,
	xkKPEqual:     KeyNumPadEqual,
	xkKPInsert:    KeyNumPad0,
	xkKPEnd:       KeyNumPad1,
	xkKPDown:      KeyNumPad2,
	xkKPNext:      KeyNumPad3,
	xkKPLeft:      KeyNumPad4,
	xkKPBegin:     KeyNumPad5,
	xkKPRight:     KeyNumPad6,
	xkKPHome:      KeyNumPad7,
	xkKPUp:        KeyNumPad8,
	xkKPPrior:     KeyNumPad9,
	xkKPDelete:    KeyNumPadDot,
}

// keyForKeysym maps an unshifted keysym to a Key.
func keyForKeysym(sym xproto.Keysym) Key {
	switch {
	case sym >= '0' && sym <= '9':
		return Key0 + Key(sym-'0')
	case sym >= 'a' && sym <= 'z':
		return KeyA + Key(sym-'a')
	case sym >= 'A' && sym <= 'Z':
		return KeyA + Key(sym-'A')
	case sym >= xkKP0 && sym <= xkKP9:
		return KeyNumPad0 + Key(sym-xkKP0)
	case sym >= xkF1 && sym <= xkF15:
		return KeyF1 + Key(sym-xkF1)
	}
	if k, ok := keysymKeys[sym]; ok {
		return k
	}
	return KeyUnknown
}

// isKeypadLevel reports whether sym is one of the keypad symbols reached
// through the second level of a keypad key.
func isKeypadLevel(sym xproto.Keysym) bool {
	switch {
	case sym >= xkKP0 && sym <= xkKP9:
		return true
	case sym == xkKPSeparator, sym == xkKPDecimal, sym == xkKPEqual, sym == xkKPEnter:
		return true
	}
	return false
}

// translateKey resolves keycode through the connection's keyboard mapping.
// With the keyboard extension present, keypad keys are read at their second
// level so they report digits regardless of NumLock.
func translateKey(conn nativeConn, keycode xproto.Keycode) Key {
	if conn.KeyboardExtension() {
		if sym := conn.Keysym(keycode, 1); isKeypadLevel(sym) {
			return keyForKeysym(sym)
		}
	}
	return keyForKeysym(conn.Keysym(keycode, 0))
}
