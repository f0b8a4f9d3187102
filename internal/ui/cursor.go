package ui

// CursorIcon is the mouse cursor shape a widget asks for while hovered.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorCrosshair
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
	CursorNotAllowed
	CursorContextMenu
	CursorCell
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
	CursorPointer

	cursorIconCount
)

var cursorIconNames = [cursorIconCount]string{
	"Default", "Crosshair", "Move", "Text", "Wait", "Help", "Progress",
	"NotAllowed", "ContextMenu", "Cell", "VerticalText", "Alias", "Copy",
	"NoDrop", "Grab", "Grabbing", "AllScroll", "ZoomIn", "ZoomOut",
	"EResize", "NResize", "NeResize", "NwResize", "SResize", "SeResize",
	"SwResize", "WResize", "EwResize", "NsResize", "NeswResize",
	"NwseResize", "ColResize", "RowResize", "Pointer",
}

func (c CursorIcon) String() string {
	if c >= 0 && c < cursorIconCount {
		return cursorIconNames[c]
	}
	return "Default"
}

// CursorIcons returns all cursor icons in declaration order.
func CursorIcons() []CursorIcon {
	icons := make([]CursorIcon, cursorIconCount)
	for i := range icons {
		icons[i] = CursorIcon(i)
	}
	return icons
}
