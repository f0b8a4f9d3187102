package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Handle identifies a node of a UserInterface. The zero value refers to
// no node.
type Handle struct {
	index      uint32
	generation uint32
}

// NoHandle refers to no node.
var NoHandle Handle

func (h Handle) IsNone() bool { return h.generation == 0 }
func (h Handle) IsSome() bool { return h.generation != 0 }

func (h Handle) String() string {
	if h.IsNone() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

type MessageDirection int

const (
	// ToWidget asks a widget to change.
	ToWidget MessageDirection = iota
	// FromWidget reports a change that already happened.
	FromWidget
)

// NoSelection is the list selection index meaning "nothing selected".
const NoSelection = -1

// UiMessage carries a payload to (or from) the widget at Destination.
type UiMessage struct {
	Destination Handle
	Direction   MessageDirection
	Data        any

	handled bool
}

func (m *UiMessage) Handled() bool { return m.handled }
func (m *UiMessage) SetHandled()   { m.handled = true }
func (m *UiMessage) IsFrom() bool  { return m.Direction == FromWidget }
func (m *UiMessage) IsTo() bool    { return m.Direction == ToWidget }

// --- Payloads ---

type ButtonClick struct{}

type TextSet struct {
	Text string
}

type WidgetEnabled struct {
	Enabled bool
}

type MouseDown struct {
	Pos    rl.Vector2
	Button MouseButton
}

type MouseUp struct {
	Pos    rl.Vector2
	Button MouseButton
}

type MouseMove struct {
	Pos   rl.Vector2
	Delta rl.Vector2
}

type MouseWheel struct {
	Amount float32
}

type KeyDown struct {
	Code KeyCode
}

type TextInput struct {
	Text string
}

type ListViewItems struct {
	Items []Handle
}

// ListViewSelectionChanged sets the selection when sent to a list view and
// reports the new selection when it comes from one.
type ListViewSelectionChanged struct {
	Index int
}

type WindowOpen struct {
	Modal  bool
	Center bool
}

type WindowClose struct{}

type FileSelectorCommit struct {
	Path string
}

type FileSelectorCancel struct{}

type FileSelectorRoot struct {
	Path string
}

// --- Constructors ---

func ButtonClickMessage(dest Handle, dir MessageDirection) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: ButtonClick{}}
}

func TextMessage(dest Handle, dir MessageDirection, text string) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: TextSet{Text: text}}
}

func EnabledMessage(dest Handle, dir MessageDirection, enabled bool) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: WidgetEnabled{Enabled: enabled}}
}

func ListViewItemsMessage(dest Handle, dir MessageDirection, items []Handle) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: ListViewItems{Items: items}}
}

func ListViewSelectionMessage(dest Handle, dir MessageDirection, index int) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: ListViewSelectionChanged{Index: index}}
}

func WindowOpenMessage(dest Handle, dir MessageDirection, center bool) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: WindowOpen{Center: center}}
}

func WindowOpenModalMessage(dest Handle, dir MessageDirection, center bool) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: WindowOpen{Modal: true, Center: center}}
}

func WindowCloseMessage(dest Handle, dir MessageDirection) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: WindowClose{}}
}

func FileSelectorCommitMessage(dest Handle, dir MessageDirection, path string) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: FileSelectorCommit{Path: path}}
}

func FileSelectorRootMessage(dest Handle, dir MessageDirection, path string) UiMessage {
	return UiMessage{Destination: dest, Direction: dir, Data: FileSelectorRoot{Path: path}}
}
