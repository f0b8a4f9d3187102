package game

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"mirgo/internal/ui"
	"mirgo/internal/ui/absm"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EditorPrefs holds persistent editor preferences saved between sessions
type EditorPrefs struct {
	WindowWidth    int                   `json:"windowWidth"`
	WindowHeight   int                   `json:"windowHeight"`
	WindowX        int                   `json:"windowX"`
	WindowY        int                   `json:"windowY"`
	SceneDir       string                `json:"sceneDir,omitempty"`
	StatePositions map[string]rl.Vector2 `json:"statePositions,omitempty"`
}

const EditorPrefsFile = ".editor_prefs.json"

// LoadEditorPrefs loads editor preferences from disk. A missing or broken
// file yields nil.
func LoadEditorPrefs(path string) *EditorPrefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Failed to parse editor prefs: %v", err)
		return nil
	}
	return &prefs
}

func (p *EditorPrefs) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal editor prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write editor prefs: %w", err)
	}
	return nil
}

// capturePrefs copies the canvas layout into the prefs.
func (g *Game) capturePrefs() *EditorPrefs {
	positions := make(map[string]rl.Vector2, len(g.canvas.States()))
	for _, h := range g.canvas.States() {
		if state, ok := ui.NodeAs[*absm.StateNode](g.UI, h); ok {
			positions[state.Name()] = rl.Vector2{X: state.Bounds.X, Y: state.Bounds.Y}
		}
	}
	g.prefs.StatePositions = positions
	return g.prefs
}

// SavePrefs saves the window placement and canvas layout to path.
func (g *Game) SavePrefs(path string) {
	prefs := g.capturePrefs()
	if rl.IsWindowReady() {
		prefs.WindowWidth = rl.GetScreenWidth()
		prefs.WindowHeight = rl.GetScreenHeight()
		prefs.WindowX = int(rl.GetWindowPosition().X)
		prefs.WindowY = int(rl.GetWindowPosition().Y)
	}
	if err := prefs.Save(path); err != nil {
		log.Printf("Failed to save editor prefs: %v", err)
	}
}
