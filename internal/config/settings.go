package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/JackWReid/quill/internal/theme"
)

const (
	DefaultSavePath    = "temp.txt"
	DefaultHistorySize = 32
	MaxHistorySize     = 255
)

type Settings struct {
	AccentColor string `toml:"accent_color"`
	SavePath    string `toml:"save_path"`
	LogFile     string `toml:"log_file"`
	HistorySize int    `toml:"history_size"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		AccentColor: theme.Default.Name,
		SavePath:    DefaultSavePath,
		HistorySize: DefaultHistorySize,
	}
}

// Normalise fills blank fields with defaults and clamps the history size.
func (s Settings) Normalise() Settings {
	if s.AccentColor == "" {
		s.AccentColor = theme.Default.Name
	}
	if s.SavePath == "" {
		s.SavePath = DefaultSavePath
	}
	if s.HistorySize <= 0 {
		s.HistorySize = DefaultHistorySize
	}
	if s.HistorySize > MaxHistorySize {
		s.HistorySize = MaxHistorySize
	}
	return s
}

// Accent resolves AccentColor against the theme palette.
func (s Settings) Accent() (theme.Accent, error) {
	if s.AccentColor == "" {
		return theme.Default, nil
	}
	return theme.Parse(s.AccentColor)
}

// Dir returns the directory holding settings.toml. QUILL_CONFIG_DIR wins,
// then $XDG_CONFIG_HOME/quill, then the platform config directory.
func Dir() string {
	if dir := os.Getenv("QUILL_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill")
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "quill")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "quill")
	}
	return "."
}

// Load reads settings.toml from dir. A missing file yields defaults; a file
// that fails to parse or names an unknown accent is an error.
func Load(dir string) (Settings, string, error) {
	path := filepath.Join(dir, "settings.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), path, nil
	}
	if err != nil {
		return Settings{}, path, fmt.Errorf("read settings %q: %w", path, err)
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, path, fmt.Errorf("parse settings %q: %w", path, err)
	}
	settings = settings.Normalise()
	if _, err := settings.Accent(); err != nil {
		return Settings{}, path, fmt.Errorf("settings %q: %w", path, err)
	}
	return settings, path, nil
}

// Save writes settings to path, creating its directory when needed.
func Save(settings Settings, path string) error {
	settings = settings.Normalise()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}

// write to a temp file then rename so readers never see a partial file.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".quill-settings-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
