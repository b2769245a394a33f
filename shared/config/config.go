package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the settings shared by the shape server and the viewer.
type Config struct {
	// Server
	ListenAddr   string `json:"listen_addr"`
	DatabasePath string `json:"database_path"`

	// Viewer
	ServerURL    string     `json:"server_url"`
	WindowWidth  int32      `json:"window_width"`
	WindowHeight int32      `json:"window_height"`
	WindowTitle  string     `json:"window_title"`
	TargetFPS    int32      `json:"target_fps"`
	ShowGrid     bool       `json:"show_grid"`
	MeshScale    [3]float64 `json:"mesh_scale"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:   ":8077",
		DatabasePath: "shapes.db",
		ServerURL:    "ws://127.0.0.1:8077/ws",
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "ShapeForge",
		TargetFPS:    60,
		ShowGrid:     true,
		MeshScale:    [3]float64{1, 1, 1},
	}
}

// configPath returns the path of the configuration file, next to the
// executable.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load reads the configuration from a JSON file. A missing or invalid file
// yields the defaults without creating anything.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save writes the configuration as JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
