package ui

// KeyCode is a physical key position, independent of keyboard layout.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyBackquote
	KeyBackslash
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyEqual
	KeyIntlBackslash
	KeyIntlRo
	KeyIntlYen
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
	KeyMinus
	KeyPeriod
	KeyQuote
	KeySemicolon
	KeySlash
	KeyAltLeft
	KeyAltRight
	KeyBackspace
	KeyCapsLock
	KeyContextMenu
	KeyControlLeft
	KeyControlRight
	KeyEnter
	KeySuperLeft
	KeySuperRight
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyTab
	KeyConvert
	KeyKanaMode
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyNonConvert
	KeyDelete
	KeyEnd
	KeyHelp
	KeyHome
	KeyInsert
	KeyPageDown
	KeyPageUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadBackspace
	KeyNumpadClear
	KeyNumpadClearEntry
	KeyNumpadComma
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadEnter
	KeyNumpadEqual
	KeyNumpadHash
	KeyNumpadMemoryAdd
	KeyNumpadMemoryClear
	KeyNumpadMemoryRecall
	KeyNumpadMemoryStore
	KeyNumpadMemorySubtract
	KeyNumpadMultiply
	KeyNumpadParenLeft
	KeyNumpadParenRight
	KeyNumpadStar
	KeyNumpadSubtract
	KeyEscape
	KeyFn
	KeyFnLock
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyBrowserBack
	KeyBrowserFavorites
	KeyBrowserForward
	KeyBrowserHome
	KeyBrowserRefresh
	KeyBrowserSearch
	KeyBrowserStop
	KeyEject
	KeyLaunchApp1
	KeyLaunchApp2
	KeyLaunchMail
	KeyMediaPlayPause
	KeyMediaSelect
	KeyMediaStop
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyPower
	KeySleep
	KeyAudioVolumeDown
	KeyAudioVolumeMute
	KeyAudioVolumeUp
	KeyWakeUp
	KeyMeta
	KeyHyper
	KeyTurbo
	KeyAbort
	KeyResume
	KeySuspend
	KeyAgain
	KeyCopy
	KeyCut
	KeyFind
	KeyOpen
	KeyPaste
	KeyProps
	KeySelect
	KeyUndo
	KeyHiragana
	KeyKatakana
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
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35
)

var keyCodeNames = [...]string{
	KeyUnknown:              "Unknown",
	KeyBackquote:            "Backquote",
	KeyBackslash:            "Backslash",
	KeyBracketLeft:          "BracketLeft",
	KeyBracketRight:         "BracketRight",
	KeyComma:                "Comma",
	KeyDigit0:               "Digit0",
	KeyDigit1:               "Digit1",
	KeyDigit2:               "Digit2",
	KeyDigit3:               "Digit3",
	KeyDigit4:               "Digit4",
	KeyDigit5:               "Digit5",
	KeyDigit6:               "Digit6",
	KeyDigit7:               "Digit7",
	KeyDigit8:               "Digit8",
	KeyDigit9:               "Digit9",
	KeyEqual:                "Equal",
	KeyIntlBackslash:        "IntlBackslash",
	KeyIntlRo:               "IntlRo",
	KeyIntlYen:              "IntlYen",
	KeyA:                    "KeyA",
	KeyB:                    "KeyB",
	KeyC:                    "KeyC",
	KeyD:                    "KeyD",
	KeyE:                    "KeyE",
	KeyF:                    "KeyF",
	KeyG:                    "KeyG",
	KeyH:                    "KeyH",
	KeyI:                    "KeyI",
	KeyJ:                    "KeyJ",
	KeyK:                    "KeyK",
	KeyL:                    "KeyL",
	KeyM:                    "KeyM",
	KeyN:                    "KeyN",
	KeyO:                    "KeyO",
	KeyP:                    "KeyP",
	KeyQ:                    "KeyQ",
	KeyR:                    "KeyR",
	KeyS:                    "KeyS",
	KeyT:                    "KeyT",
	KeyU:                    "KeyU",
	KeyV:                    "KeyV",
	KeyW:                    "KeyW",
	KeyX:                    "KeyX",
	KeyY:                    "KeyY",
	KeyZ:                    "KeyZ",
	KeyMinus:                "Minus",
	KeyPeriod:               "Period",
	KeyQuote:                "Quote",
	KeySemicolon:            "Semicolon",
	KeySlash:                "Slash",
	KeyAltLeft:              "AltLeft",
	KeyAltRight:             "AltRight",
	KeyBackspace:            "Backspace",
	KeyCapsLock:             "CapsLock",
	KeyContextMenu:          "ContextMenu",
	KeyControlLeft:          "ControlLeft",
	KeyControlRight:         "ControlRight",
	KeyEnter:                "Enter",
	KeySuperLeft:            "SuperLeft",
	KeySuperRight:           "SuperRight",
	KeyShiftLeft:            "ShiftLeft",
	KeyShiftRight:           "ShiftRight",
	KeySpace:                "Space",
	KeyTab:                  "Tab",
	KeyConvert:              "Convert",
	KeyKanaMode:             "KanaMode",
	KeyLang1:                "Lang1",
	KeyLang2:                "Lang2",
	KeyLang3:                "Lang3",
	KeyLang4:                "Lang4",
	KeyLang5:                "Lang5",
	KeyNonConvert:           "NonConvert",
	KeyDelete:               "Delete",
	KeyEnd:                  "End",
	KeyHelp:                 "Help",
	KeyHome:                 "Home",
	KeyInsert:               "Insert",
	KeyPageDown:             "PageDown",
	KeyPageUp:               "PageUp",
	KeyArrowDown:            "ArrowDown",
	KeyArrowLeft:            "ArrowLeft",
	KeyArrowRight:           "ArrowRight",
	KeyArrowUp:              "ArrowUp",
	KeyNumLock:              "NumLock",
	KeyNumpad0:              "Numpad0",
	KeyNumpad1:              "Numpad1",
	KeyNumpad2:              "Numpad2",
	KeyNumpad3:              "Numpad3",
	KeyNumpad4:              "Numpad4",
	KeyNumpad5:              "Numpad5",
	KeyNumpad6:              "Numpad6",
	KeyNumpad7:              "Numpad7",
	KeyNumpad8:              "Numpad8",
	KeyNumpad9:              "Numpad9",
	KeyNumpadAdd:            "NumpadAdd",
	KeyNumpadBackspace:      "NumpadBackspace",
	KeyNumpadClear:          "NumpadClear",
	KeyNumpadClearEntry:     "NumpadClearEntry",
	KeyNumpadComma:          "NumpadComma",
	KeyNumpadDecimal:        "NumpadDecimal",
	KeyNumpadDivide:         "NumpadDivide",
	KeyNumpadEnter:          "NumpadEnter",
	KeyNumpadEqual:          "NumpadEqual",
	KeyNumpadHash:           "NumpadHash",
	KeyNumpadMemoryAdd:      "NumpadMemoryAdd",
	KeyNumpadMemoryClear:    "NumpadMemoryClear",
	KeyNumpadMemoryRecall:   "NumpadMemoryRecall",
	KeyNumpadMemoryStore:    "NumpadMemoryStore",
	KeyNumpadMemorySubtract: "NumpadMemorySubtract",
	KeyNumpadMultiply:       "NumpadMultiply",
	KeyNumpadParenLeft:      "NumpadParenLeft",
	KeyNumpadParenRight:     "NumpadParenRight",
	KeyNumpadStar:           "NumpadStar",
	KeyNumpadSubtract:       "NumpadSubtract",
	KeyEscape:               "Escape",
	KeyFn:                   "Fn",
	KeyFnLock:               "FnLock",
	KeyPrintScreen:          "PrintScreen",
	KeyScrollLock:           "ScrollLock",
	KeyPause:                "Pause",
	KeyBrowserBack:          "BrowserBack",
	KeyBrowserFavorites:     "BrowserFavorites",
	KeyBrowserForward:       "BrowserForward",
	KeyBrowserHome:          "BrowserHome",
	KeyBrowserRefresh:       "BrowserRefresh",
	KeyBrowserSearch:        "BrowserSearch",
	KeyBrowserStop:          "BrowserStop",
	KeyEject:                "Eject",
	KeyLaunchApp1:           "LaunchApp1",
	KeyLaunchApp2:           "LaunchApp2",
	KeyLaunchMail:           "LaunchMail",
	KeyMediaPlayPause:       "MediaPlayPause",
	KeyMediaSelect:          "MediaSelect",
	KeyMediaStop:            "MediaStop",
	KeyMediaTrackNext:       "MediaTrackNext",
	KeyMediaTrackPrevious:   "MediaTrackPrevious",
	KeyPower:                "Power",
	KeySleep:                "Sleep",
	KeyAudioVolumeDown:      "AudioVolumeDown",
	KeyAudioVolumeMute:      "AudioVolumeMute",
	KeyAudioVolumeUp:        "AudioVolumeUp",
	KeyWakeUp:               "WakeUp",
	KeyMeta:                 "Meta",
	KeyHyper:                "Hyper",
	KeyTurbo:                "Turbo",
	KeyAbort:                "Abort",
	KeyResume:               "Resume",
	KeySuspend:              "Suspend",
	KeyAgain:                "Again",
	KeyCopy:                 "Copy",
	KeyCut:                  "Cut",
	KeyFind:                 "Find",
	KeyOpen:                 "Open",
	KeyPaste:                "Paste",
	KeyProps:                "Props",
	KeySelect:               "Select",
	KeyUndo:                 "Undo",
	KeyHiragana:             "Hiragana",
	KeyKatakana:             "Katakana",
	KeyF1:                   "F1",
	KeyF2:                   "F2",
	KeyF3:                   "F3",
	KeyF4:                   "F4",
	KeyF5:                   "F5",
	KeyF6:                   "F6",
	KeyF7:                   "F7",
	KeyF8:                   "F8",
	KeyF9:                   "F9",
	KeyF10:                  "F10",
	KeyF11:                  "F11",
	KeyF12:                  "F12",
	KeyF13:                  "F13",
	KeyF14:                  "F14",
	KeyF15:                  "F15",
	KeyF16:                  "F16",
	KeyF17:                  "F17",
	KeyF18:                  "F18",
	KeyF19:                  "F19",
	KeyF20:                  "F20",
	KeyF21:                  "F21",
	KeyF22:                  "F22",
	KeyF23:                  "F23",
	KeyF24:                  "F24",
	KeyF25:                  "F25",
	KeyF26:                  "F26",
	KeyF27:                  "F27",
	KeyF28:                  "F28",
	KeyF29:                  "F29",
	KeyF30:                  "F30",
	KeyF31:                  "F31",
	KeyF32:                  "F32",
	KeyF33:                  "F33",
	KeyF34:                  "F34",
	KeyF35:                  "F35",
}

func (k KeyCode) String() string {
	if k >= 0 && int(k) < len(keyCodeNames) {
		return keyCodeNames[k]
	}
	return "Unknown"
}

// KeyCodes returns every defined key code except KeyUnknown.
func KeyCodes() []KeyCode {
	codes := make([]KeyCode, 0, len(keyCodeNames)-1)
	for k := KeyUnknown + 1; int(k) < len(keyCodeNames); k++ {
		codes = append(codes, k)
	}
	return codes
}
