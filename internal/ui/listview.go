package ui

import "mirgo/internal/ui/draw"

const scrollSpeed = 20

// ListView stacks its items vertically and tracks a single selection.
// Items are owned by the list: replacing them removes the old ones.
type ListView struct {
	Widget
	items     []Handle
	selection int
	scroll    float32
}

func (l *ListView) Items() []Handle { return l.items }
func (l *ListView) Selection() int  { return l.selection }

func (l *ListView) Draw(ctx *draw.DrawingContext) {
	if l.Background.Color.A == 0 {
		return
	}
	ctx.PushRectFilled(l.screen)
	ctx.Commit(l.clip, l.Background, nil)
}

// Update stacks the items and keeps the scroll offset in range.
func (l *ListView) Update(u *UserInterface, deltaTime float32) {
	var total float32
	for _, item := range l.items {
		if w := u.widget(item); w != nil {
			total += w.Bounds.Height
		}
	}
	l.scroll = max(0, min(l.scroll, total-l.Bounds.Height))

	y := -l.scroll
	for i, item := range l.items {
		w := u.widget(item)
		if w == nil {
			continue
		}
		w.Bounds.X = 0
		w.Bounds.Y = y
		w.Bounds.Width = l.Bounds.Width
		y += w.Bounds.Height
		if s, ok := u.Node(item).(Selectable); ok {
			s.SetSelected(i == l.selection)
		}
	}
}

func (l *ListView) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	l.Widget.HandleRoutedMessage(u, msg)

	if msg.IsTo() {
		if msg.Destination != l.handle {
			return
		}
		switch data := msg.Data.(type) {
		case ListViewItems:
			l.setItems(u, data.Items)
		case ListViewSelectionChanged:
			l.setSelection(u, data.Index)
		}
		return
	}

	switch data := msg.Data.(type) {
	case MouseDown:
		if data.Button != MouseLeft {
			return
		}
		for i, item := range l.items {
			if u.IsDescendant(msg.Destination, item) {
				l.setSelection(u, i)
				msg.SetHandled()
				return
			}
		}
	case MouseWheel:
		if u.IsDescendant(msg.Destination, l.handle) {
			l.scroll -= data.Amount * scrollSpeed
			msg.SetHandled()
		}
	case KeyDown:
		if !u.IsDescendant(msg.Destination, l.handle) || len(l.items) == 0 {
			return
		}
		switch data.Code {
		case KeyArrowDown:
			l.setSelection(u, min(l.selection+1, len(l.items)-1))
			msg.SetHandled()
		case KeyArrowUp:
			l.setSelection(u, max(l.selection-1, 0))
			msg.SetHandled()
		}
	}
}

func (l *ListView) setItems(u *UserInterface, items []Handle) {
	for _, old := range l.items {
		u.RemoveNode(old)
	}
	l.items = append([]Handle(nil), items...)
	for _, item := range l.items {
		u.LinkNodes(item, l.handle)
	}
	l.scroll = 0
	l.setSelection(u, NoSelection)
}

// setSelection reports a change with a FromWidget message.
func (l *ListView) setSelection(u *UserInterface, index int) {
	if index < NoSelection || index >= len(l.items) {
		index = NoSelection
	}
	if index == l.selection {
		return
	}
	l.selection = index
	u.SendMessage(ListViewSelectionMessage(l.handle, FromWidget, index))
}

type ListViewBuilder struct {
	widget *WidgetBuilder
}

func NewListViewBuilder(wb *WidgetBuilder) *ListViewBuilder {
	return &ListViewBuilder{widget: wb}
}

func (b *ListViewBuilder) Build(u *UserInterface) Handle {
	return u.AddNode(&ListView{
		Widget:    b.widget.Build(),
		selection: NoSelection,
	})
}
