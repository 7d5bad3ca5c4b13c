package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Theme and font size choices offered by the UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	FontSizeSmall  = "small"
	FontSizeMedium = "medium"
	FontSizeLarge  = "large"
)

const (
	DefaultTheme    = ThemeLight
	DefaultFontSize = FontSizeMedium
)

// ErrInvalidSetting is returned when a value is outside the allowed set
var ErrInvalidSetting = errors.New("invalid setting value")

// Settings holds display preferences persisted to a TOML file. Unknown
// or invalid stored values fall back to the defaults rather than
// failing the load.
type Settings struct {
	path  string
	viper *viper.Viper

	mu       sync.RWMutex
	theme    string
	fontSize string
}

// LoadSettings reads preferences from the given TOML file, creating
// the in-memory defaults when the file does not exist yet
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("fontSize", DefaultFontSize)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			var notFound viper.ConfigFileNotFoundError
			var pathErr *os.PathError
			if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("reading settings file: %w", err)
			}
		}
	}

	s := &Settings{
		path:     path,
		viper:    v,
		theme:    v.GetString("theme"),
		fontSize: v.GetString("fontSize"),
	}
	if !validTheme(s.theme) {
		s.theme = DefaultTheme
	}
	if !validFontSize(s.fontSize) {
		s.fontSize = DefaultFontSize
	}
	return s, nil
}

// Theme returns the current theme
func (s *Settings) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// FontSize returns the current font size
func (s *Settings) FontSize() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fontSize
}

// SetTheme validates, applies, and persists a new theme
func (s *Settings) SetTheme(theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("%w: theme must be %q or %q", ErrInvalidSetting, ThemeLight, ThemeDark)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.persist()
}

// SetFontSize validates, applies, and persists a new font size
func (s *Settings) SetFontSize(fontSize string) error {
	if !validFontSize(fontSize) {
		return fmt.Errorf("%w: fontSize must be %q, %q, or %q",
			ErrInvalidSetting, FontSizeSmall, FontSizeMedium, FontSizeLarge)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontSize = fontSize
	return s.persist()
}

// persist writes the current values to the settings file. Callers must
// hold the write lock.
func (s *Settings) persist() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}

	s.viper.Set("theme", s.theme)
	s.viper.Set("fontSize", s.fontSize)
	if err := s.viper.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

func validFontSize(fontSize string) bool {
	return fontSize == FontSizeSmall || fontSize == FontSizeMedium || fontSize == FontSizeLarge
}
