package ui

import (
	"cmp"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"mirgo/internal/ui/draw"

	"github.com/fsnotify/fsnotify"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mitchellh/go-homedir"
)

const fileEntryHeight = 20

// FileFilter decides which files a FileSelector lists. Directories are
// always listed.
type FileFilter func(path string) bool

// FileSelector is a window listing one directory at a time. Picking a
// directory enters it; OK commits the selected file with a FromWidget
// FileSelectorCommit, Cancel sends FileSelectorCancel. Both close the
// window.
type FileSelector struct {
	Window
	filter   FileFilter
	dir      string
	selected string
	entries  []string

	pathText Handle
	list     Handle
	ok       Handle
	cancel   Handle

	watcher *fsnotify.Watcher
	dirty   atomic.Bool
}

func (f *FileSelector) Dir() string       { return f.dir }
func (f *FileSelector) Selected() string  { return f.selected }
func (f *FileSelector) Entries() []string { return f.entries }
func (f *FileSelector) List() Handle      { return f.list }
func (f *FileSelector) OkButton() Handle  { return f.ok }

// Update reloads the listing after the watched directory changed.
func (f *FileSelector) Update(u *UserInterface, deltaTime float32) {
	if f.dirty.CompareAndSwap(true, false) {
		f.refresh(u)
	}
}

func (f *FileSelector) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	if msg.IsTo() && msg.Destination == f.handle {
		switch data := msg.Data.(type) {
		case FileSelectorRoot:
			f.setDir(u, data.Path)
		case WindowOpen:
			f.refresh(u)
			f.watch()
		case WindowClose:
			f.unwatch()
		}
	}
	f.Window.HandleRoutedMessage(u, msg)

	if !msg.IsFrom() {
		return
	}
	switch data := msg.Data.(type) {
	case ListViewSelectionChanged:
		if msg.Destination != f.list || data.Index == NoSelection || data.Index >= len(f.entries) {
			return
		}
		msg.SetHandled()
		entry := f.entries[data.Index]
		if info, err := os.Stat(entry); err == nil && info.IsDir() {
			f.setDir(u, entry)
			return
		}
		f.selected = entry
		u.SendMessage(TextMessage(f.pathText, ToWidget, entry))
	case ButtonClick:
		switch msg.Destination {
		case f.ok:
			msg.SetHandled()
			if f.selected == "" {
				return
			}
			u.SendMessage(FileSelectorCommitMessage(f.handle, FromWidget, f.selected))
			u.SendMessage(WindowCloseMessage(f.handle, ToWidget))
		case f.cancel:
			msg.SetHandled()
			u.SendMessage(UiMessage{Destination: f.handle, Direction: FromWidget, Data: FileSelectorCancel{}})
			u.SendMessage(WindowCloseMessage(f.handle, ToWidget))
		}
	}
}

func (f *FileSelector) setDir(u *UserInterface, path string) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Printf("file selector: expand %q: %v", path, err)
		expanded = path
	}
	if abs, err := filepath.Abs(expanded); err == nil {
		expanded = abs
	}
	prev := f.dir
	f.dir = expanded
	f.selected = ""
	u.SendMessage(TextMessage(f.pathText, ToWidget, f.dir))

	if f.watcher != nil && prev != f.dir {
		if prev != "" {
			_ = f.watcher.Remove(prev)
		}
		if err := f.watcher.Add(f.dir); err != nil {
			log.Printf("file selector: watch %s: %v", f.dir, err)
		}
	}
	f.refresh(u)
}

// refresh rebuilds the list items from the current directory.
func (f *FileSelector) refresh(u *UserInterface) {
	f.entries = f.entries[:0]
	if f.dir == "" {
		u.SendMessage(ListViewItemsMessage(f.list, ToWidget, nil))
		return
	}

	dirEntries, err := os.ReadDir(f.dir)
	if err != nil {
		log.Printf("file selector: read %s: %v", f.dir, err)
	}

	var dirs, files []string
	for _, e := range dirEntries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		full := filepath.Join(f.dir, e.Name())
		if e.IsDir() {
			dirs = append(dirs, full)
		} else if f.filter == nil || f.filter(full) {
			files = append(files, full)
		}
	}
	slices.SortFunc(dirs, func(a, b string) int { return cmp.Compare(strings.ToLower(a), strings.ToLower(b)) })
	slices.SortFunc(files, func(a, b string) int { return cmp.Compare(strings.ToLower(a), strings.ToLower(b)) })

	if parent := filepath.Dir(f.dir); parent != f.dir {
		f.entries = append(f.entries, parent)
	}
	f.entries = append(f.entries, dirs...)
	f.entries = append(f.entries, files...)

	items := make([]Handle, 0, len(f.entries))
	for i, entry := range f.entries {
		label := filepath.Base(entry)
		switch {
		case i == 0 && entry == filepath.Dir(f.dir):
			label = ".."
		case slices.Contains(dirs, entry):
			label += "/"
		}
		items = append(items, fileEntryItem(u, label))
	}
	u.SendMessage(ListViewItemsMessage(f.list, ToWidget, items))
}

func fileEntryItem(u *UserInterface, label string) Handle {
	text := NewTextBuilder(NewWidgetBuilder().
		WithBounds(4, 0, 1000, fileEntryHeight)).
		WithText(label).
		Build(u)
	return NewBorderBuilder(NewWidgetBuilder().
		WithHeight(fileEntryHeight).
		WithChild(text)).
		Build(u)
}

func (f *FileSelector) watch() {
	if f.watcher != nil {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("file selector: watcher: %v", err)
		return
	}
	if f.dir != "" {
		if err := watcher.Add(f.dir); err != nil {
			log.Printf("file selector: watch %s: %v", f.dir, err)
		}
	}
	f.watcher = watcher

	go func(w *fsnotify.Watcher) {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					f.dirty.Store(true)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("file selector: watcher error: %v", err)
			}
		}
	}(watcher)
}

func (f *FileSelector) unwatch() {
	if f.watcher == nil {
		return
	}
	if err := f.watcher.Close(); err != nil {
		log.Printf("file selector: close watcher: %v", err)
	}
	f.watcher = nil
}

// Close stops the directory watcher.
func (f *FileSelector) Close() error {
	f.unwatch()
	return nil
}

type FileSelectorBuilder struct {
	window *WindowBuilder
	root   string
	filter FileFilter
}

func NewFileSelectorBuilder(wb *WindowBuilder) *FileSelectorBuilder {
	return &FileSelectorBuilder{window: wb}
}

func (b *FileSelectorBuilder) WithRoot(path string) *FileSelectorBuilder {
	b.root = path
	return b
}

func (b *FileSelectorBuilder) WithFilter(filter FileFilter) *FileSelectorBuilder {
	b.filter = filter
	return b
}

func (b *FileSelectorBuilder) Build(u *UserInterface) Handle {
	bounds := b.window.widget.widget.Bounds
	width := bounds.Width - 10
	height := bounds.Height - TitleBarHeight - 10

	pathText := NewTextBuilder(NewWidgetBuilder().
		WithBounds(0, 0, width, 22)).
		Build(u)
	list := NewListViewBuilder(NewWidgetBuilder().
		WithBounds(0, 26, width, height-26-32).
		WithBackground(draw.SolidBrush(rl.Color{R: 28, G: 28, B: 30, A: 255}))).
		Build(u)
	ok := NewButtonBuilder(NewWidgetBuilder().
		WithBounds(width-170, height-28, 80, 26)).
		WithText("OK").
		Build(u)
	cancel := NewButtonBuilder(NewWidgetBuilder().
		WithBounds(width-85, height-28, 80, 26)).
		WithText("Cancel").
		Build(u)
	container := NewWidgetBuilder().
		WithBounds(5, 5, width, height).
		WithChild(pathText).
		WithChild(list).
		WithChild(ok).
		WithChild(cancel).
		Build()
	content := u.AddNode(&container)

	window := b.window.WithContent(content).build(u)
	fs := &FileSelector{
		Window:   window,
		filter:   b.filter,
		pathText: pathText,
		list:     list,
		ok:       ok,
		cancel:   cancel,
	}
	h := u.AddNode(fs)
	if b.root != "" {
		u.SendMessage(FileSelectorRootMessage(h, ToWidget, b.root))
	}
	return h
}
