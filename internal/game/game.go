package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"mirgo/internal/config"
	"mirgo/internal/pathfix"
	"mirgo/internal/platform"
	"mirgo/internal/ui"
	"mirgo/internal/ui/absm"
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	topBarHeight = 36
	exportPath   = "absm_export.png"
)

type Game struct {
	UI        *ui.UserInterface
	DebugMode bool

	cfg      config.Config
	prefs    *EditorPrefs
	poller   *platform.Poller
	renderer draw.RaylibRenderer
	fixer    *pathfix.PathFixer
	canvas   *absm.Canvas
	cursor   ui.CursorIcon

	// Status line shown in the top bar
	statusMsg  string
	statusTime float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the editor UI. No window is needed until Run.
func New(cfg config.Config, prefs *EditorPrefs) *Game {
	if prefs == nil {
		prefs = &EditorPrefs{}
	}
	g := &Game{
		UI:    ui.New(float32(cfg.Editor.WindowWidth), float32(cfg.Editor.WindowHeight)),
		cfg:   cfg,
		prefs: prefs,
	}

	sceneDir := prefs.SceneDir
	if sceneDir == "" {
		sceneDir = cfg.Editor.AssetsDir
	}
	g.fixer = pathfix.New(g.UI,
		pathfix.WithSceneExtensions(cfg.Editor.SceneExtensions...),
		pathfix.WithSceneDir(sceneDir),
		pathfix.WithSearchRoots(cfg.PathFix.SearchRoots...),
		pathfix.WithMaxSuggestions(cfg.PathFix.MaxSuggestions))

	g.canvas = g.buildCanvas()
	return g
}

// buildCanvas lays out the locomotion state machine shown in the editor.
// Saved positions override the defaults.
func (g *Game) buildCanvas() *absm.Canvas {
	size := g.UI.ScreenSize()
	h := absm.NewCanvasBuilder(ui.NewWidgetBuilder().
		WithName("absm").
		WithBounds(0, topBarHeight, size.X, size.Y-topBarHeight).
		WithBackground(draw.SolidBrush(colorBgPanel))).
		Build(g.UI)
	canvas, _ := ui.NodeAs[*absm.Canvas](g.UI, h)

	defaults := []struct {
		name string
		pos  rl.Vector2
	}{
		{"Idle", rl.Vector2{X: 80, Y: 80}},
		{"Walk", rl.Vector2{X: 320, Y: 80}},
		{"Run", rl.Vector2{X: 560, Y: 80}},
		{"Jump", rl.Vector2{X: 320, Y: 260}},
	}
	states := map[string]ui.Handle{}
	for _, d := range defaults {
		pos := d.pos
		if saved, ok := g.prefs.StatePositions[d.name]; ok {
			pos = saved
		}
		states[d.name] = canvas.AddState(g.UI, d.name, pos)
	}

	for _, link := range [][2]string{{"Idle", "Walk"}, {"Walk", "Run"}, {"Run", "Walk"}, {"Walk", "Jump"}, {"Jump", "Idle"}} {
		if _, err := canvas.Connect(g.UI, states[link[0]], states[link[1]]); err != nil {
			log.Printf("absm: %v", err)
		}
	}
	return canvas
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(int32(g.cfg.Editor.WindowWidth), int32(g.cfg.Editor.WindowHeight), "Mirgo Editor")
	defer rl.CloseWindow()

	if g.prefs.WindowWidth > 0 && g.prefs.WindowHeight > 0 {
		rl.SetWindowSize(g.prefs.WindowWidth, g.prefs.WindowHeight)
		rl.SetWindowPosition(g.prefs.WindowX, g.prefs.WindowY)
	}
	g.UI.SetScreenSize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	rl.SetTargetFPS(int32(g.cfg.Editor.TargetFPS))
	rl.SetExitKey(rl.KeyNull)

	initRayguiStyle(g.cfg.Editor.AssetsDir)
	defer unloadEditorFonts()
	g.renderer.Font = editorFont
	g.poller = platform.NewPoller()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.SavePrefs(EditorPrefsFile)
}

func (g *Game) Update() {
	updateStart := time.Now()

	for _, ev := range g.poller.Poll() {
		g.handleWindowEvent(ev)
	}
	g.UI.Update(rl.GetFrameTime())
	g.dispatch()

	if icon := g.UI.Cursor(); icon != g.cursor {
		g.cursor = icon
		rl.SetMouseCursor(platform.TranslateCursorIcon(icon))
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleWindowEvent(ev platform.WindowEvent) {
	switch e := ev.(type) {
	case platform.Resized:
		g.resize(float32(e.Width), float32(e.Height))
		return
	case platform.KeyboardInput:
		if e.Pressed && g.handleShortcut(platform.TranslateKeyToUI(e.Key), g.UI.KeyboardModifiers()) {
			return
		}
	}
	if osEvent, ok := platform.TranslateEvent(ev); ok {
		g.UI.ProcessOsEvent(osEvent)
	}
}

func (g *Game) resize(width, height float32) {
	g.UI.SetScreenSize(width, height)
	g.canvas.Bounds.Width = width
	g.canvas.Bounds.Height = height - topBarHeight
}

// handleShortcut runs editor-wide key bindings. It reports whether the
// key was consumed.
func (g *Game) handleShortcut(code ui.KeyCode, mods ui.KeyboardModifiers) bool {
	switch {
	case code == ui.KeyF1:
		g.DebugMode = !g.DebugMode
	case mods.Control && code == ui.KeyP:
		g.OpenPathFixer()
	case mods.Control && code == ui.KeyE:
		g.ExportCanvas(exportPath)
	default:
		return false
	}
	return true
}

// dispatch drains the UI message queue, handing every message to the
// dialogs that listen for it.
func (g *Game) dispatch() {
	for {
		msg, ok := g.UI.PollMessage()
		if !ok {
			return
		}
		g.fixer.HandleUIMessage(g.UI, &msg)
		g.handleMessage(&msg)
	}
}

func (g *Game) handleMessage(msg *ui.UiMessage) {
	if data, ok := msg.Data.(ui.FileSelectorCommit); ok && msg.Destination == g.fixer.SceneSelector() {
		g.prefs.SceneDir = filepath.Dir(data.Path)
	}
}

func (g *Game) OpenPathFixer() {
	g.fixer.Open(g.UI)
}

func (g *Game) ExportCanvas(path string) {
	if err := g.canvas.ExportPNG(g.UI, path); err != nil {
		log.Printf("Failed to export state machine: %v", err)
		g.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	g.setStatus("Exported " + path)
}

func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusTime = now()
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)
	g.renderer.Render(g.UI.Draw())
	g.DrawUI()
	rl.EndDrawing()

	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}
