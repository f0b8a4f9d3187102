package platform

import (
	"strings"

	"mirgo/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// uiByKey maps raylib (GLFW) key codes to UI key codes. Each UI code
// appears at most once so the table can be inverted.
var uiByKey = map[int32]ui.KeyCode{
	rl.KeyApostrophe:   ui.KeyQuote,
	rl.KeyComma:        ui.KeyComma,
	rl.KeyMinus:        ui.KeyMinus,
	rl.KeyPeriod:       ui.KeyPeriod,
	rl.KeySlash:        ui.KeySlash,
	rl.KeyZero:         ui.KeyDigit0,
	rl.KeyOne:          ui.KeyDigit1,
	rl.KeyTwo:          ui.KeyDigit2,
	rl.KeyThree:        ui.KeyDigit3,
	rl.KeyFour:         ui.KeyDigit4,
	rl.KeyFive:         ui.KeyDigit5,
	rl.KeySix:          ui.KeyDigit6,
	rl.KeySeven:        ui.KeyDigit7,
	rl.KeyEight:        ui.KeyDigit8,
	rl.KeyNine:         ui.KeyDigit9,
	rl.KeySemicolon:    ui.KeySemicolon,
	rl.KeyEqual:        ui.KeyEqual,
	rl.KeyA:            ui.KeyA,
	rl.KeyB:            ui.KeyB,
	rl.KeyC:            ui.KeyC,
	rl.KeyD:            ui.KeyD,
	rl.KeyE:            ui.KeyE,
	rl.KeyF:            ui.KeyF,
	rl.KeyG:            ui.KeyG,
	rl.KeyH:            ui.KeyH,
	rl.KeyI:            ui.KeyI,
	rl.KeyJ:            ui.KeyJ,
	rl.KeyK:            ui.KeyK,
	rl.KeyL:            ui.KeyL,
	rl.KeyM:            ui.KeyM,
	rl.KeyN:            ui.KeyN,
	rl.KeyO:            ui.KeyO,
	rl.KeyP:            ui.KeyP,
	rl.KeyQ:            ui.KeyQ,
	rl.KeyR:            ui.KeyR,
	rl.KeyS:            ui.KeyS,
	rl.KeyT:            ui.KeyT,
	rl.KeyU:            ui.KeyU,
	rl.KeyV:            ui.KeyV,
	rl.KeyW:            ui.KeyW,
	rl.KeyX:            ui.KeyX,
	rl.KeyY:            ui.KeyY,
	rl.KeyZ:            ui.KeyZ,
	rl.KeyLeftBracket:  ui.KeyBracketLeft,
	rl.KeyBackSlash:    ui.KeyBackslash,
	rl.KeyRightBracket: ui.KeyBracketRight,
	rl.KeyGrave:        ui.KeyBackquote,

	rl.KeySpace:       ui.KeySpace,
	rl.KeyEscape:      ui.KeyEscape,
	rl.KeyEnter:       ui.KeyEnter,
	rl.KeyTab:         ui.KeyTab,
	rl.KeyBackspace:   ui.KeyBackspace,
	rl.KeyInsert:      ui.KeyInsert,
	rl.KeyDelete:      ui.KeyDelete,
	rl.KeyRight:       ui.KeyArrowRight,
	rl.KeyLeft:        ui.KeyArrowLeft,
	rl.KeyDown:        ui.KeyArrowDown,
	rl.KeyUp:          ui.KeyArrowUp,
	rl.KeyPageUp:      ui.KeyPageUp,
	rl.KeyPageDown:    ui.KeyPageDown,
	rl.KeyHome:        ui.KeyHome,
	rl.KeyEnd:         ui.KeyEnd,
	rl.KeyCapsLock:    ui.KeyCapsLock,
	rl.KeyScrollLock:  ui.KeyScrollLock,
	rl.KeyNumLock:     ui.KeyNumLock,
	rl.KeyPrintScreen: ui.KeyPrintScreen,
	rl.KeyPause:       ui.KeyPause,

	rl.KeyF1:  ui.KeyF1,
	rl.KeyF2:  ui.KeyF2,
	rl.KeyF3:  ui.KeyF3,
	rl.KeyF4:  ui.KeyF4,
	rl.KeyF5:  ui.KeyF5,
	rl.KeyF6:  ui.KeyF6,
	rl.KeyF7:  ui.KeyF7,
	rl.KeyF8:  ui.KeyF8,
	rl.KeyF9:  ui.KeyF9,
	rl.KeyF10: ui.KeyF10,
	rl.KeyF11: ui.KeyF11,
	rl.KeyF12: ui.KeyF12,

	rl.KeyLeftShift:    ui.KeyShiftLeft,
	rl.KeyLeftControl:  ui.KeyControlLeft,
	rl.KeyLeftAlt:      ui.KeyAltLeft,
	rl.KeyLeftSuper:    ui.KeySuperLeft,
	rl.KeyRightShift:   ui.KeyShiftRight,
	rl.KeyRightControl: ui.KeyControlRight,
	rl.KeyRightAlt:     ui.KeyAltRight,
	rl.KeyRightSuper:   ui.KeySuperRight,
	rl.KeyKbMenu:       ui.KeyContextMenu,

	rl.KeyKp0:        ui.KeyNumpad0,
	rl.KeyKp1:        ui.KeyNumpad1,
	rl.KeyKp2:        ui.KeyNumpad2,
	rl.KeyKp3:        ui.KeyNumpad3,
	rl.KeyKp4:        ui.KeyNumpad4,
	rl.KeyKp5:        ui.KeyNumpad5,
	rl.KeyKp6:        ui.KeyNumpad6,
	rl.KeyKp7:        ui.KeyNumpad7,
	rl.KeyKp8:        ui.KeyNumpad8,
	rl.KeyKp9:        ui.KeyNumpad9,
	rl.KeyKpDecimal:  ui.KeyNumpadDecimal,
	rl.KeyKpDivide:   ui.KeyNumpadDivide,
	rl.KeyKpMultiply: ui.KeyNumpadMultiply,
	rl.KeyKpSubtract: ui.KeyNumpadSubtract,
	rl.KeyKpAdd:      ui.KeyNumpadAdd,
	rl.KeyKpEnter:    ui.KeyNumpadEnter,
	rl.KeyKpEqual:    ui.KeyNumpadEqual,

	// Android
	rl.KeyBack:       ui.KeyBrowserBack,
	rl.KeyVolumeUp:   ui.KeyAudioVolumeUp,
	rl.KeyVolumeDown: ui.KeyAudioVolumeDown,
}

var keyByUI map[ui.KeyCode]int32

func init() {
	keyByUI = make(map[ui.KeyCode]int32, len(uiByKey))
	for key, code := range uiByKey {
		keyByUI[code] = key
	}
}

// TranslateKeyToUI converts a raylib key code. Keys the UI has no code for
// become ui.KeyUnknown.
func TranslateKeyToUI(key int32) ui.KeyCode {
	if code, ok := uiByKey[key]; ok {
		return code
	}
	return ui.KeyUnknown
}

// TranslateKeyFromUI converts a UI key code back to raylib. Codes with no
// physical key in raylib become rl.KeyNull.
func TranslateKeyFromUI(code ui.KeyCode) int32 {
	if key, ok := keyByUI[code]; ok {
		return key
	}
	return rl.KeyNull
}

// KeyCodeName is the label shown for a key in key binding editors: letter
// and digit keys are shown as their character, everything else by name.
func KeyCodeName(code ui.KeyCode) string {
	name := code.String()
	switch {
	case code >= ui.KeyA && code <= ui.KeyZ:
		return strings.TrimPrefix(name, "Key")
	case code >= ui.KeyDigit0 && code <= ui.KeyDigit9:
		return strings.TrimPrefix(name, "Digit")
	}
	return name
}
