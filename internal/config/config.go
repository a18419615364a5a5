package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FileConfig holds planner defaults the CLI persists between runs, so a
// returning user only overrides what changed.
type FileConfig struct {
	MaxJumpRange float64 `json:"max_jump_range"`
	Filename     string  `json:"filename"`
	Mode         string  `json:"mode"`
}

func DefaultFileConfig() FileConfig {
	return FileConfig{
		MaxJumpRange: 65.0,
		Filename:     "sys_coor.csv",
		Mode:         "end_at_last",
	}
}

// LoadFile returns the persisted planner defaults, falling back to
// DefaultFileConfig when the file is missing or unreadable.
func LoadFile(path string) FileConfig {
	cfg := DefaultFileConfig()

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return DefaultFileConfig()
	}
	return cfg
}

// Save writes the planner defaults back to disk.
func (c FileConfig) Save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save config: marshal: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("save config: write %q: %w", path, err)
	}
	return nil
}
