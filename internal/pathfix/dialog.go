package pathfix

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"mirgo/internal/resource"
	"mirgo/internal/scene"
	"mirgo/internal/ui"
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NoSceneText     = "Scene: No scene loaded!"
	NoSelectionText = "No resource selected"

	itemHeight = 22
)

var missingBrush = draw.SolidBrush(rl.Red)

// PathFixer is the dialog that lists the resources of a scene whose files
// no longer exist. Resources are listed in the order the scene refers to
// them; list index i is always resources[i].
type PathFixer struct {
	window        ui.Handle
	scenePath     ui.Handle
	sceneSelector ui.Handle
	loadScene     ui.Handle
	resourcesList ui.Handle
	resourcePath  ui.Handle
	fix           ui.Handle
	ok            ui.Handle
	cancel        ui.Handle

	scene     *scene.Scene
	resources []resource.SceneResource
	selection int

	load        func(path string) (*scene.Scene, error)
	exists      func(path string) bool
	extensions  []string
	root        string
	searchRoots []string
	suggestions int
}

type Option func(*PathFixer)

// WithLoader replaces scene.Load.
func WithLoader(load func(path string) (*scene.Scene, error)) Option {
	return func(p *PathFixer) { p.load = load }
}

// WithExists replaces the on-disk existence check.
func WithExists(exists func(path string) bool) Option {
	return func(p *PathFixer) { p.exists = exists }
}

// WithSceneExtensions sets which files the scene selector offers.
func WithSceneExtensions(exts ...string) Option {
	return func(p *PathFixer) { p.extensions = exts }
}

// WithSceneDir sets the directory the scene selector starts in.
func WithSceneDir(dir string) Option {
	return func(p *PathFixer) { p.root = dir }
}

// WithSearchRoots sets where replacement candidates are looked for.
func WithSearchRoots(roots ...string) Option {
	return func(p *PathFixer) { p.searchRoots = roots }
}

// WithMaxSuggestions caps the candidates reported for a fix.
func WithMaxSuggestions(n int) Option {
	return func(p *PathFixer) { p.suggestions = n }
}

func New(u *ui.UserInterface, opts ...Option) *PathFixer {
	p := &PathFixer{
		selection:   ui.NoSelection,
		load:        scene.Load,
		exists:      resource.Exists,
		extensions:  []string{".json", ".scene"},
		suggestions: 3,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.sceneSelector = ui.NewFileSelectorBuilder(
		ui.NewWindowBuilder(ui.NewWidgetBuilder().WithBounds(0, 0, 300, 400)).
			Open(false).
			WithTitle("Select a scene for diagnostics")).
		WithRoot(p.root).
		WithFilter(p.isSceneFile).
		Build(u)

	const width, height = 390, 466

	p.scenePath = ui.NewTextBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 0, width, 40)).
		WithText(NoSceneText).
		Build(u)
	p.resourcePath = ui.NewTextBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 44, width-48, 28)).
		Build(u)
	p.fix = ui.NewButtonBuilder(ui.NewWidgetBuilder().
		WithBounds(width-44, 45, 44, 26).
		WithEnabled(false)).
		WithText("Fix...").
		Build(u)
	p.resourcesList = ui.NewListViewBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 76, width, height-76-32).
		WithBackground(draw.SolidBrush(rl.Color{R: 28, G: 28, B: 30, A: 255}))).
		Build(u)
	p.loadScene = ui.NewButtonBuilder(ui.NewWidgetBuilder().
		WithBounds(width-306, height-28, 100, 26)).
		WithText("Load Scene...").
		Build(u)
	p.ok = ui.NewButtonBuilder(ui.NewWidgetBuilder().
		WithBounds(width-204, height-28, 100, 26)).
		WithText("OK").
		Build(u)
	p.cancel = ui.NewButtonBuilder(ui.NewWidgetBuilder().
		WithBounds(width-102, height-28, 100, 26)).
		WithText("Cancel").
		Build(u)

	content := ui.NewWidgetBuilder().WithBounds(5, 5, width, height)
	for _, h := range []ui.Handle{p.scenePath, p.resourcePath, p.fix, p.resourcesList, p.loadScene, p.ok, p.cancel} {
		content.WithChild(h)
	}
	contentWidget := content.Build()

	p.window = ui.NewWindowBuilder(ui.NewWidgetBuilder().WithBounds(0, 0, 400, 500)).
		WithTitle("Path Fixer").
		Open(false).
		WithContent(u.AddNode(&contentWidget)).
		Build(u)

	return p
}

func (p *PathFixer) isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(p.extensions, ext)
}

func (p *PathFixer) Window() ui.Handle        { return p.window }
func (p *PathFixer) SceneSelector() ui.Handle { return p.sceneSelector }

// Open shows the dialog centred on screen.
func (p *PathFixer) Open(u *ui.UserInterface) {
	u.SendMessage(ui.WindowOpenMessage(p.window, ui.ToWidget, true))
}

// Scene is the last successfully loaded scene, or nil.
func (p *PathFixer) Scene() *scene.Scene { return p.scene }

// Resources are the missing resources of the loaded scene.
func (p *PathFixer) Resources() []resource.SceneResource { return p.resources }

// Selection returns the selected resource index, if any.
func (p *PathFixer) Selection() (int, bool) {
	return p.selection, p.selection != ui.NoSelection
}

// HandleUIMessage reacts to a message polled from u.
func (p *PathFixer) HandleUIMessage(u *ui.UserInterface, msg *ui.UiMessage) {
	switch data := msg.Data.(type) {
	case ui.FileSelectorCommit:
		if msg.Destination == p.sceneSelector {
			p.loadScenePath(u, data.Path)
		}

	case ui.ButtonClick:
		switch msg.Destination {
		case p.loadScene:
			u.SendMessage(ui.WindowOpenModalMessage(p.sceneSelector, ui.ToWidget, true))
		case p.cancel:
			u.SendMessage(ui.WindowCloseMessage(p.window, ui.ToWidget))
		case p.ok:
			u.SendMessage(ui.WindowCloseMessage(p.window, ui.ToWidget))
		case p.fix:
			p.fixSelected()
		}

	case ui.ListViewSelectionChanged:
		if msg.Destination == p.resourcesList {
			p.setSelection(u, data.Index)
		}
	}
}

// loadScenePath loads the scene synchronously. On failure the resource
// list is left as it was.
func (p *PathFixer) loadScenePath(u *ui.UserInterface, path string) {
	s, err := p.load(path)
	if err != nil {
		log.Printf("path fixer: failed to load %s: %v", path, err)
		u.SendMessage(ui.TextMessage(p.scenePath, ui.ToWidget,
			fmt.Sprintf("Failed to load a scene %s\nReason: %v", path, err)))
		return
	}

	p.resources = FilterMissing(CollectResources(s), p.exists)
	items := make([]ui.Handle, len(p.resources))
	for i, r := range p.resources {
		items[i] = p.makeItem(u, r.Path())
	}
	u.SendMessage(ui.ListViewItemsMessage(p.resourcesList, ui.ToWidget, items))
	u.SendMessage(ui.ListViewSelectionMessage(p.resourcesList, ui.ToWidget, ui.NoSelection))
	p.setSelection(u, ui.NoSelection)

	p.scene = s
	log.Printf("path fixer: %s has %d missing resources", path, len(p.resources))
	u.SendMessage(ui.TextMessage(p.scenePath, ui.ToWidget, "Scene: "+path))
}

func (p *PathFixer) makeItem(u *ui.UserInterface, path string) ui.Handle {
	text := ui.NewTextBuilder(ui.NewWidgetBuilder().
		WithBounds(1, 1, 1000, itemHeight-2).
		WithForeground(missingBrush)).
		WithText(path).
		Build(u)
	return ui.NewBorderBuilder(ui.NewWidgetBuilder().
		WithHeight(itemHeight).
		WithChild(text)).
		Build(u)
}

func (p *PathFixer) setSelection(u *ui.UserInterface, index int) {
	if index < 0 || index >= len(p.resources) {
		index = ui.NoSelection
	}
	p.selection = index

	if index != ui.NoSelection {
		u.SendMessage(ui.TextMessage(p.resourcePath, ui.ToWidget, "Resource: "+p.resources[index].Path()))
	} else {
		u.SendMessage(ui.TextMessage(p.resourcePath, ui.ToWidget, NoSelectionText))
	}
	u.SendMessage(ui.EnabledMessage(p.fix, ui.ToWidget, index != ui.NoSelection))
}

// fixSelected only reports candidates; rewriting the scene is not done.
func (p *PathFixer) fixSelected() {
	if p.selection == ui.NoSelection {
		return
	}
	r := p.resources[p.selection]
	missing := r.Path()
	candidates := resource.Suggest(missing, r.Kind(), p.searchRoots, p.suggestions)
	if len(candidates) == 0 {
		log.Printf("path fixer: no replacement found for %s", missing)
		return
	}
	for _, c := range candidates {
		log.Printf("path fixer: %s could be %s (distance %d)", missing, c.Path, c.Distance)
	}
}
