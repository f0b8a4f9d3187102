package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds editor and path fixer settings.
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor"`
	PathFix PathFixConfig `mapstructure:"pathfix"`
}

type EditorConfig struct {
	WindowWidth     int      `mapstructure:"window_width"`
	WindowHeight    int      `mapstructure:"window_height"`
	TargetFPS       int      `mapstructure:"target_fps"`
	AssetsDir       string   `mapstructure:"assets_dir"`
	SceneExtensions []string `mapstructure:"scene_extensions"`
}

type PathFixConfig struct {
	SearchRoots    []string `mapstructure:"search_roots"`
	MaxSuggestions int      `mapstructure:"max_suggestions"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// MIRGO_, e.g. MIRGO_EDITOR_TARGET_FPS.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("editor.window_width", 1280)
	v.SetDefault("editor.window_height", 720)
	v.SetDefault("editor.target_fps", 60)
	v.SetDefault("editor.assets_dir", "assets")
	v.SetDefault("editor.scene_extensions", []string{".json", ".scene"})
	v.SetDefault("pathfix.search_roots", []string{"assets"})
	v.SetDefault("pathfix.max_suggestions", 3)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MIRGO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mirgo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MIRGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only the implicit home config may be absent.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || (!errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() error {
	if c.Editor.WindowWidth <= 0 || c.Editor.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Editor.WindowWidth, c.Editor.WindowHeight)
	}
	if c.Editor.TargetFPS <= 0 {
		c.Editor.TargetFPS = 60
	}
	if c.PathFix.MaxSuggestions < 0 {
		c.PathFix.MaxSuggestions = 0
	}
	for i, ext := range c.Editor.SceneExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Editor.SceneExtensions[i] = ext
	}
	return nil
}
