package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"mirgo/internal/config"
	"mirgo/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g := game.New(cfg, game.LoadEditorPrefs(game.EditorPrefsFile))
	if len(os.Args) > 1 && os.Args[1] == "--path-fixer" {
		g.OpenPathFixer()
	}
	g.Run()
}
