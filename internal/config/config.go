package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"todomatic/internal/tasks"
)

const (
	DefaultConfigFileName = "config.toml"
	AppDirName            = "todomatic"
	EnvConfigPath         = "TODOMATIC_CONFIG"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Edit       string `toml:"edit"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	NextFilter string `toml:"next_filter"`
	PrevFilter string `toml:"prev_filter"`
}

type Config struct {
	// SeedPath points at a .db/.sqlite or .yaml/.yml file with the initial
	// tasks. When empty, Seed is used.
	SeedPath      string       `toml:"seed_path"`
	DefaultFilter string       `toml:"default_filter"`
	LogDir        string       `toml:"log_dir"`
	Keys          Keymap       `toml:"keys"`
	Seed          []tasks.Task `toml:"seed"`
}

// ResolveConfigPath picks $TODOMATIC_CONFIG, then the user config dir, then
// the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	// A file without [[seed]] entries starts empty.
	cfg.Seed = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = string(tasks.FilterAll)
	}
	if _, err := tasks.ParseFilter(cfg.DefaultFilter); err != nil {
		return cfg, fmt.Errorf("default_filter: %w", err)
	}
	return cfg, nil
}

// StartFilter returns the filter named by DefaultFilter. LoadOrCreate has
// already validated it.
func (c Config) StartFilter() tasks.Filter {
	f, err := tasks.ParseFilter(c.DefaultFilter)
	if err != nil {
		return tasks.FilterAll
	}
	return f
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultSeed() []tasks.Task {
	return []tasks.Task{
		{ID: "todo-0", Name: "Eat", Completed: true},
		{ID: "todo-1", Name: "Sleep"},
		{ID: "todo-2", Name: "Repeat"},
	}
}

func defaultConfig() Config {
	return Config{
		DefaultFilter: string(tasks.FilterAll),
		Seed:          DefaultSeed(),
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Edit:       "e",
			Confirm:    "enter",
			Cancel:     "esc",
			NextFilter: "tab",
			PrevFilter: "shift+tab",
		},
	}
}
