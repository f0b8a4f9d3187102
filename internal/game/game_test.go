package game

import (
	"os"
	"path/filepath"
	"testing"

	"mirgo/internal/config"
	"mirgo/internal/ui"
	"mirgo/internal/ui/absm"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	var c config.Config
	c.Editor.WindowWidth = 1280
	c.Editor.WindowHeight = 720
	c.Editor.TargetFPS = 60
	c.Editor.AssetsDir = t.TempDir()
	c.Editor.SceneExtensions = []string{".json"}
	c.PathFix.MaxSuggestions = 3
	return c
}

func stateNamed(t *testing.T, g *Game, name string) *absm.StateNode {
	t.Helper()
	for _, h := range g.canvas.States() {
		if s, ok := ui.NodeAs[*absm.StateNode](g.UI, h); ok && s.Name() == name {
			return s
		}
	}
	t.Fatalf("no state %q", name)
	return nil
}

func TestNewBuildsStateMachine(t *testing.T) {
	g := New(testConfig(t), nil)
	assert.Len(t, g.canvas.States(), 4)
	assert.Len(t, g.canvas.Connections(), 5)
	assert.Equal(t, float32(320), stateNamed(t, g, "Walk").Bounds.X)
}

func TestSavedStatePositionsAreRestored(t *testing.T) {
	prefs := &EditorPrefs{StatePositions: map[string]rl.Vector2{"Run": {X: 700, Y: 400}}}
	g := New(testConfig(t), prefs)

	run := stateNamed(t, g, "Run")
	assert.Equal(t, float32(700), run.Bounds.X)
	assert.Equal(t, float32(400), run.Bounds.Y)
}

func TestPrefsRoundTrip(t *testing.T) {
	g := New(testConfig(t), nil)
	stateNamed(t, g, "Idle").Bounds.X = 42
	g.prefs.SceneDir = "levels"

	path := filepath.Join(t.TempDir(), EditorPrefsFile)
	require.NoError(t, g.capturePrefs().Save(path))

	prefs := LoadEditorPrefs(path)
	require.NotNil(t, prefs)
	assert.Equal(t, "levels", prefs.SceneDir)
	assert.Equal(t, rl.Vector2{X: 42, Y: 80}, prefs.StatePositions["Idle"])
	assert.Len(t, prefs.StatePositions, 4)
}

func TestLoadEditorPrefsMissingOrBroken(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, LoadEditorPrefs(filepath.Join(dir, "none.json")))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	assert.Nil(t, LoadEditorPrefs(broken))
}

func TestShortcuts(t *testing.T) {
	g := New(testConfig(t), nil)
	window, ok := ui.NodeAs[*ui.Window](g.UI, g.fixer.Window())
	require.True(t, ok)
	require.False(t, window.IsOpen())

	assert.False(t, g.handleShortcut(ui.KeyP, ui.KeyboardModifiers{}))
	assert.True(t, g.handleShortcut(ui.KeyP, ui.KeyboardModifiers{Control: true}))
	g.dispatch()
	assert.True(t, window.IsOpen())

	assert.True(t, g.handleShortcut(ui.KeyF1, ui.KeyboardModifiers{}))
	assert.True(t, g.DebugMode)
}

func TestExportCanvasSetsStatus(t *testing.T) {
	now = func() float64 { return 12 }
	t.Cleanup(func() { now = rl.GetTime })

	g := New(testConfig(t), nil)
	path := filepath.Join(t.TempDir(), "graph.png")
	g.ExportCanvas(path)

	assert.FileExists(t, path)
	assert.Equal(t, "Exported "+path, g.statusMsg)
	assert.Equal(t, float64(12), g.statusTime)
}

func TestSceneCommitRemembersDirectory(t *testing.T) {
	g := New(testConfig(t), nil)
	g.UI.SendMessage(ui.FileSelectorCommitMessage(g.fixer.SceneSelector(), ui.FromWidget, filepath.Join("levels", "one.json")))
	g.dispatch()

	assert.Equal(t, "levels", g.prefs.SceneDir)
}

func TestResizeStretchesCanvas(t *testing.T) {
	g := New(testConfig(t), nil)
	g.resize(1600, 900)
	assert.Equal(t, rl.Vector2{X: 1600, Y: 900}, g.UI.ScreenSize())
	assert.Equal(t, float32(1600), g.canvas.Bounds.Width)
	assert.Equal(t, float32(900-topBarHeight), g.canvas.Bounds.Height)

	g.UI.Update(0)
	conn, ok := ui.NodeAs[*absm.Connection](g.UI, g.canvas.Connections()[0])
	require.True(t, ok)
	assert.Equal(t, rl.Rectangle{X: 0, Y: topBarHeight, Width: 1600, Height: 900 - topBarHeight}, conn.ClipBounds())
}
