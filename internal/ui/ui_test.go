package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pump routes every queued message and returns them in order.
func pump(u *UserInterface) []UiMessage {
	var out []UiMessage
	for {
		msg, ok := u.PollMessage()
		if !ok {
			return out
		}
		out = append(out, msg)
	}
}

func fromWidget[T any](msgs []UiMessage, dest Handle) []T {
	var out []T
	for _, m := range msgs {
		if data, ok := m.Data.(T); ok && m.Direction == FromWidget && m.Destination == dest {
			out = append(out, data)
		}
	}
	return out
}

func TestHandleReuse(t *testing.T) {
	u := New(800, 600)
	a := NewTextBuilder(NewWidgetBuilder()).Build(u)
	require.NotNil(t, u.Node(a))

	u.RemoveNode(a)
	assert.Nil(t, u.Node(a), "stale handle must not resolve")

	b := NewTextBuilder(NewWidgetBuilder()).Build(u)
	assert.NotEqual(t, a, b)
	assert.NotNil(t, u.Node(b))
	assert.Nil(t, u.Node(NoHandle))
}

func TestRemoveNodeRemovesSubtree(t *testing.T) {
	u := New(800, 600)
	btn := NewButtonBuilder(NewWidgetBuilder().WithBounds(0, 0, 100, 30)).WithText("Go").Build(u)
	b, ok := NodeAs[*Button](u, btn)
	require.True(t, ok)
	content := b.Content()
	require.NotNil(t, u.Node(content))
	assert.Equal(t, btn, u.Node(content).Base().Parent())

	u.RemoveNode(btn)
	assert.Nil(t, u.Node(content))
}

func TestLayoutAndScreenBounds(t *testing.T) {
	u := New(800, 600)
	child := NewTextBuilder(NewWidgetBuilder().WithBounds(10, 20, 50, 10)).Build(u)
	parent := NewBorderBuilder(NewWidgetBuilder().WithBounds(100, 100, 40, 40).WithChild(child)).Build(u)
	u.Update(0)

	w := u.Node(child).Base()
	assert.Equal(t, rl.Rectangle{X: 110, Y: 120, Width: 50, Height: 10}, w.ScreenBounds())
	assert.Equal(t, u.ScreenBounds(child), w.ScreenBounds())
	// clipped by the parent
	assert.Equal(t, rl.Rectangle{X: 110, Y: 120, Width: 30, Height: 10}, w.ClipBounds())
	assert.True(t, u.IsDescendant(child, parent))
	assert.False(t, u.IsDescendant(parent, child))
}

func TestButtonClick(t *testing.T) {
	u := New(800, 600)
	btn := NewButtonBuilder(NewWidgetBuilder().WithBounds(10, 10, 100, 30)).WithText("Press").Build(u)
	u.Update(0)

	u.ProcessOsEvent(CursorMovedEvent{Position: rl.Vector2{X: 20, Y: 20}})
	u.ProcessOsEvent(MouseInputEvent{Button: MouseLeft, State: Pressed})
	u.ProcessOsEvent(MouseInputEvent{Button: MouseLeft, State: Released})

	clicks := fromWidget[ButtonClick](pump(u), btn)
	assert.Len(t, clicks, 1)
}

func TestButtonReleasedOutsideDoesNotClick(t *testing.T) {
	u := New(800, 600)
	btn := NewButtonBuilder(NewWidgetBuilder().WithBounds(10, 10, 100, 30)).WithText("Press").Build(u)
	u.Update(0)

	u.ProcessOsEvent(CursorMovedEvent{Position: rl.Vector2{X: 20, Y: 20}})
	u.ProcessOsEvent(MouseInputEvent{Button: MouseLeft, State: Pressed})
	pump(u)
	u.ProcessOsEvent(CursorMovedEvent{Position: rl.Vector2{X: 400, Y: 400}})
	u.ProcessOsEvent(MouseInputEvent{Button: MouseLeft, State: Released})

	assert.Empty(t, fromWidget[ButtonClick](pump(u), btn))
}

func TestDisabledButtonIsNotPicked(t *testing.T) {
	u := New(800, 600)
	btn := NewButtonBuilder(NewWidgetBuilder().WithBounds(10, 10, 100, 30).WithEnabled(false)).WithText("Nope").Build(u)
	u.Update(0)

	assert.Equal(t, NoHandle, u.HitTest(rl.Vector2{X: 20, Y: 20}))

	u.SendMessage(EnabledMessage(btn, ToWidget, true))
	pump(u)
	u.Update(0)
	assert.True(t, u.IsDescendant(u.HitTest(rl.Vector2{X: 20, Y: 20}), btn))
}

func TestTextMessage(t *testing.T) {
	u := New(800, 600)
	h := NewTextBuilder(NewWidgetBuilder()).WithText("before").Build(u)
	u.SendMessage(TextMessage(h, ToWidget, "after"))
	pump(u)

	text, ok := NodeAs[*Text](u, h)
	require.True(t, ok)
	assert.Equal(t, "after", text.Text())
}

func makeItems(u *UserInterface, labels ...string) []Handle {
	items := make([]Handle, len(labels))
	for i, label := range labels {
		text := NewTextBuilder(NewWidgetBuilder().WithBounds(0, 0, 200, 20)).WithText(label).Build(u)
		items[i] = NewBorderBuilder(NewWidgetBuilder().WithHeight(20).WithChild(text)).Build(u)
	}
	return items
}

func TestListViewSelection(t *testing.T) {
	u := New(800, 600)
	list := NewListViewBuilder(NewWidgetBuilder().WithBounds(0, 0, 200, 200)).Build(u)

	u.SendMessage(ListViewItemsMessage(list, ToWidget, makeItems(u, "a", "b", "c")))
	pump(u)

	lv, ok := NodeAs[*ListView](u, list)
	require.True(t, ok)
	assert.Len(t, lv.Items(), 3)
	assert.Equal(t, NoSelection, lv.Selection())

	u.SendMessage(ListViewSelectionMessage(list, ToWidget, 1))
	changes := fromWidget[ListViewSelectionChanged](pump(u), list)
	require.Len(t, changes, 1)
	assert.Equal(t, 1, changes[0].Index)

	// same selection again reports nothing
	u.SendMessage(ListViewSelectionMessage(list, ToWidget, 1))
	assert.Empty(t, fromWidget[ListViewSelectionChanged](pump(u), list))

	u.Update(0)
	border, ok := NodeAs[*Border](u, lv.Items()[1])
	require.True(t, ok)
	assert.True(t, border.Selected())
}

func TestListViewClickSelects(t *testing.T) {
	u := New(800, 600)
	list := NewListViewBuilder(NewWidgetBuilder().WithBounds(0, 0, 200, 200)).Build(u)
	u.SendMessage(ListViewItemsMessage(list, ToWidget, makeItems(u, "a", "b", "c")))
	pump(u)
	u.Update(0)

	u.ProcessOsEvent(CursorMovedEvent{Position: rl.Vector2{X: 50, Y: 45}})
	u.ProcessOsEvent(MouseInputEvent{Button: MouseLeft, State: Pressed})
	changes := fromWidget[ListViewSelectionChanged](pump(u), list)
	require.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].Index)

	u.ProcessOsEvent(KeyboardInputEvent{Button: KeyArrowUp, State: Pressed})
	changes = fromWidget[ListViewSelectionChanged](pump(u), list)
	require.Len(t, changes, 1)
	assert.Equal(t, 1, changes[0].Index)
}

func TestListViewItemsReplaceOldOnes(t *testing.T) {
	u := New(800, 600)
	list := NewListViewBuilder(NewWidgetBuilder().WithBounds(0, 0, 200, 200)).Build(u)
	first := makeItems(u, "a", "b")
	u.SendMessage(ListViewItemsMessage(list, ToWidget, first))
	u.SendMessage(ListViewSelectionMessage(list, ToWidget, 1))
	pump(u)

	u.SendMessage(ListViewItemsMessage(list, ToWidget, makeItems(u, "c")))
	changes := fromWidget[ListViewSelectionChanged](pump(u), list)

	for _, h := range first {
		assert.Nil(t, u.Node(h))
	}
	require.Len(t, changes, 1)
	assert.Equal(t, NoSelection, changes[0].Index)
}

func TestWindowOpenModalCentered(t *testing.T) {
	u := New(800, 600)
	background := NewButtonBuilder(NewWidgetBuilder().WithBounds(0, 0, 800, 600)).Build(u)
	win := NewWindowBuilder(NewWidgetBuilder().WithBounds(0, 0, 200, 100)).
		WithTitle("Test").
		Open(false).
		Build(u)

	w, ok := NodeAs[*Window](u, win)
	require.True(t, ok)
	assert.False(t, w.IsOpen())

	u.SendMessage(WindowOpenModalMessage(win, ToWidget, true))
	pump(u)
	u.Update(0)

	assert.True(t, w.IsOpen())
	assert.Equal(t, float32(300), w.Bounds.X)
	assert.Equal(t, float32(250), w.Bounds.Y)
	assert.Equal(t, win, u.TopModal())
	// background is unreachable while the modal window is open
	assert.Equal(t, NoHandle, u.HitTest(rl.Vector2{X: 10, Y: 10}))

	u.SendMessage(WindowCloseMessage(win, ToWidget))
	pump(u)
	u.Update(0)
	assert.False(t, w.IsOpen())
	assert.Equal(t, NoHandle, u.TopModal())
	assert.Equal(t, background, u.HitTest(rl.Vector2{X: 10, Y: 10}))
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestFileSelectorListsAndCommits(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "level.json", "notes.txt", "sub/inner.json")

	u := New(800, 600)
	h := NewFileSelectorBuilder(NewWindowBuilder(NewWidgetBuilder().WithBounds(0, 0, 300, 400)).
		WithTitle("Pick").
		Open(false)).
		WithRoot(dir).
		WithFilter(func(path string) bool { return strings.HasSuffix(path, ".json") }).
		Build(u)
	pump(u)

	fs, ok := NodeAs[*FileSelector](u, h)
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Dir(dir), filepath.Join(dir, "sub"), filepath.Join(dir, "level.json")}, fs.Entries())

	u.SendMessage(ListViewSelectionMessage(fs.List(), ToWidget, 2))
	pump(u)
	assert.Equal(t, filepath.Join(dir, "level.json"), fs.Selected())

	u.SendMessage(ButtonClickMessage(fs.OkButton(), FromWidget))
	msgs := pump(u)
	commits := fromWidget[FileSelectorCommit](msgs, h)
	require.Len(t, commits, 1)
	assert.Equal(t, filepath.Join(dir, "level.json"), commits[0].Path)
	assert.False(t, fs.IsOpen())
}

func TestFileSelectorEntersDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "sub/inner.json")

	u := New(800, 600)
	h := NewFileSelectorBuilder(NewWindowBuilder(NewWidgetBuilder().WithBounds(0, 0, 300, 400))).
		WithRoot(dir).
		Build(u)
	pump(u)
	fs, ok := NodeAs[*FileSelector](u, h)
	require.True(t, ok)

	u.SendMessage(ListViewSelectionMessage(fs.List(), ToWidget, 1))
	pump(u)

	assert.Equal(t, filepath.Join(dir, "sub"), fs.Dir())
	assert.Equal(t, []string{dir, filepath.Join(dir, "sub", "inner.json")}, fs.Entries())
	assert.Empty(t, fs.Selected())
}
