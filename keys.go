package pixwin

// Key identifies a physical key independent of the keyboard layout's
// shifted symbols.
type Key int

const (
	KeyUnknown Key = iota

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15

	KeyDown
	KeyLeft
	KeyRight
	KeyUp

	KeyApostrophe
	KeyBackquote
	KeyBackslash
	KeyComma
	KeyEqual
	KeyLeftBracket
	KeyMinus
	KeyPeriod
	KeyRightBracket
	KeySemicolon
	KeySlash

	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEscape
	KeyHome
	KeyInsert
	KeyMenu
	KeyPageDown
	KeyPageUp
	KeyPause
	KeySpace
	KeyTab
	KeyNumLock
	KeyCapsLock
	KeyScrollLock

	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadDot
	KeyNumPadSlash
	KeyNumPadAsterisk
	KeyNumPadMinus
	KeyNumPadPlus
	KeyNumPadEnter
	KeyNumPadEqual

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown: "Unknown",
	Key0:       "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up",
	KeyApostrophe: "Apostrophe", KeyBackquote: "Backquote", KeyBackslash: "Backslash",
	KeyComma: "Comma", KeyEqual: "Equal", KeyLeftBracket: "LeftBracket",
	KeyMinus: "Minus", KeyPeriod: "Period", KeyRightBracket: "RightBracket",
	KeySemicolon: "Semicolon", KeySlash: "Slash",
	KeyBackspace: "Backspace", KeyDelete: "Delete", KeyEnd: "End", KeyEnter: "Enter",
	KeyEscape: "Escape", KeyHome: "Home", KeyInsert: "Insert", KeyMenu: "Menu",
	KeyPageDown: "PageDown", KeyPageUp: "PageUp", KeyPause: "Pause", KeySpace: "Space",
	KeyTab: "Tab", KeyNumLock: "NumLock", KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftCtrl: "LeftCtrl", KeyRightCtrl: "RightCtrl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyLeftSuper: "LeftSuper", KeyRightSuper: "RightSuper",
	KeyNumPad0: "NumPad0", KeyNumPad1: "NumPad1", KeyNumPad2: "NumPad2",
	KeyNumPad3: "NumPad3", KeyNumPad4: "NumPad4", KeyNumPad5: "NumPad5",
	KeyNumPad6: "NumPad6", KeyNumPad7: "NumPad7", KeyNumPad8: "NumPad8",
	KeyNumPad9: "NumPad9", KeyNumPadDot: "NumPadDot", KeyNumPadSlash: "NumPadSlash",
	KeyNumPadAsterisk: "NumPadAsterisk", KeyNumPadMinus: "NumPadMinus",
	KeyNumPadPlus: "NumPadPlus", KeyNumPadEnter: "NumPadEnter", KeyNumPadEqual: "NumPadEqual",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// KeyRepeat selects whether IsKeyPressed also reports autorepeat presses.
type KeyRepeat bool

const (
	KeyRepeatNo  KeyRepeat = false
	KeyRepeatYes KeyRepeat = true
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseExtra1
	MouseExtra2

	buttonCount
)

// MouseMode controls how positions outside the window are reported.
type MouseMode int

const (
	// MouseClamp clamps the position to the window.
	MouseClamp MouseMode = iota
	// MousePass reports the position even when it is outside the window.
	MousePass
	// MouseDiscard reports no position when it is outside the window.
	MouseDiscard
)
