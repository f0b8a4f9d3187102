package platform

import (
	"mirgo/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylib only knows eleven cursor shapes; the rest fall back to the
// closest one.
var cursorByIcon = map[ui.CursorIcon]rl.MouseCursor{
	ui.CursorDefault:      rl.MouseCursorDefault,
	ui.CursorCrosshair:    rl.MouseCursorCrosshair,
	ui.CursorMove:         rl.MouseCursorResizeAll,
	ui.CursorText:         rl.MouseCursorIBeam,
	ui.CursorWait:         rl.MouseCursorDefault,
	ui.CursorHelp:         rl.MouseCursorArrow,
	ui.CursorProgress:     rl.MouseCursorDefault,
	ui.CursorNotAllowed:   rl.MouseCursorNotAllowed,
	ui.CursorContextMenu:  rl.MouseCursorArrow,
	ui.CursorCell:         rl.MouseCursorCrosshair,
	ui.CursorVerticalText: rl.MouseCursorIBeam,
	ui.CursorAlias:        rl.MouseCursorArrow,
	ui.CursorCopy:         rl.MouseCursorArrow,
	ui.CursorNoDrop:       rl.MouseCursorNotAllowed,
	ui.CursorGrab:         rl.MouseCursorPointingHand,
	ui.CursorGrabbing:     rl.MouseCursorPointingHand,
	ui.CursorAllScroll:    rl.MouseCursorResizeAll,
	ui.CursorZoomIn:       rl.MouseCursorDefault,
	ui.CursorZoomOut:      rl.MouseCursorDefault,
	ui.CursorEResize:      rl.MouseCursorResizeEW,
	ui.CursorNResize:      rl.MouseCursorResizeNS,
	ui.CursorNeResize:     rl.MouseCursorResizeNESW,
	ui.CursorNwResize:     rl.MouseCursorResizeNWSE,
	ui.CursorSResize:      rl.MouseCursorResizeNS,
	ui.CursorSeResize:     rl.MouseCursorResizeNWSE,
	ui.CursorSwResize:     rl.MouseCursorResizeNESW,
	ui.CursorWResize:      rl.MouseCursorResizeEW,
	ui.CursorEwResize:     rl.MouseCursorResizeEW,
	ui.CursorNsResize:     rl.MouseCursorResizeNS,
	ui.CursorNeswResize:   rl.MouseCursorResizeNESW,
	ui.CursorNwseResize:   rl.MouseCursorResizeNWSE,
	ui.CursorColResize:    rl.MouseCursorResizeEW,
	ui.CursorRowResize:    rl.MouseCursorResizeNS,
	ui.CursorPointer:      rl.MouseCursorPointingHand,
}

// TranslateCursorIcon returns the raylib cursor to pass to rl.SetMouseCursor.
func TranslateCursorIcon(icon ui.CursorIcon) int32 {
	if c, ok := cursorByIcon[icon]; ok {
		return c
	}
	return rl.MouseCursorDefault
}
