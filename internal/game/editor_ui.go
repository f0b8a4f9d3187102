package game

import (
	"fmt"
	"log"
	"path/filepath"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Editor fonts - Outfit for UI, JetBrains Mono for values
var editorFont rl.Font     // Outfit Regular - main UI font
var editorFontBold rl.Font // Outfit Bold - headers
var editorFontMono rl.Font // JetBrains Mono - numeric values
var editorFontsLoaded bool

// now is the clock used for status messages.
var now = rl.GetTime

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255) // #6c63ff
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder = rl.NewColor(255, 255, 255, 13)
)

func loadEditorFont(assetsDir, name string) rl.Font {
	font := rl.LoadFontEx(filepath.Join(assetsDir, "fonts", name), 48, nil)
	if font.Texture.ID > 0 {
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		log.Printf("Loaded %s font", name)
	} else {
		log.Printf("Failed to load %s font", name)
	}
	return font
}

// initRayguiStyle loads the editor fonts and sets up the dark theme.
func initRayguiStyle(assetsDir string) {
	if !editorFontsLoaded {
		editorFontsLoaded = true
		editorFont = loadEditorFont(assetsDir, "Outfit-Regular.ttf")
		if editorFont.Texture.ID > 0 {
			gui.SetFont(editorFont)
		}
		editorFontBold = loadEditorFont(assetsDir, "Outfit-Bold.ttf")
		editorFontMono = loadEditorFont(assetsDir, "JetBrainsMono-Regular.ttf")
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func unloadEditorFonts() {
	if !editorFontsLoaded {
		return
	}
	for _, f := range []rl.Font{editorFont, editorFontBold, editorFontMono} {
		if f.Texture.ID > 0 {
			rl.UnloadFont(f)
		}
	}
	editorFontsLoaded = false
}

// drawTextEx draws text using the specified font scaled to the requested size
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}

// DrawUI draws the top bar over the retained UI.
func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)

	drawTextEx(editorFontBold, "EDITOR", 12, 7, 22, colorAccent)
	drawTextEx(editorFont, "Ctrl+P: Path Fixer  |  Ctrl+E: Export Graph  |  F1: Debug", 330, 9, 18, colorTextMuted)

	if gui.Button(rl.Rectangle{X: 110, Y: 6, Width: 100, Height: 24}, "Path Fixer") {
		g.OpenPathFixer()
	}
	if gui.Button(rl.Rectangle{X: 216, Y: 6, Width: 100, Height: 24}, "Export Graph") {
		g.ExportCanvas(exportPath)
	}
	g.DebugMode = gui.CheckBox(rl.Rectangle{X: float32(screenW) - 90, Y: 10, Width: 16, Height: 16}, "Debug", g.DebugMode)

	if g.statusMsg != "" && now()-g.statusTime < 2.0 {
		drawTextEx(editorFontBold, g.statusMsg, screenW/2-50, topBarHeight+8, 16, colorAccentLight)
	}

	if g.DebugMode {
		y := int32(rl.GetScreenHeight()) - 70
		rl.DrawFPS(10, y)
		drawTextEx(editorFontMono, fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y+22, 16, rl.Green)
		drawTextEx(editorFontMono, fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+40, 16, rl.Green)
	}
}
