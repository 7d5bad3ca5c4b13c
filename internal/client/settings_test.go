package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")

		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, ThemeLight, s.Theme())
		assert.Equal(t, FontSizeMedium, s.FontSize())
	})

	t.Run("reads stored values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\nfontSize = \"large\"\n"), 0o644))

		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, ThemeDark, s.Theme())
		assert.Equal(t, FontSizeLarge, s.FontSize())
	})

	t.Run("invalid stored values fall back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("theme = \"neon\"\nfontSize = \"enormous\"\n"), 0o644))

		s, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, ThemeLight, s.Theme())
		assert.Equal(t, FontSizeMedium, s.FontSize())
	})
}

func TestSettings_SetTheme(t *testing.T) {
	t.Run("valid value persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		s, err := LoadSettings(path)
		require.NoError(t, err)

		require.NoError(t, s.SetTheme(ThemeDark))
		assert.Equal(t, ThemeDark, s.Theme())

		reloaded, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, ThemeDark, reloaded.Theme())
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
		require.NoError(t, err)

		err = s.SetTheme("neon")
		require.ErrorIs(t, err, ErrInvalidSetting)
		assert.Equal(t, ThemeLight, s.Theme())
	})
}

func TestSettings_SetFontSize(t *testing.T) {
	t.Run("valid value persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		s, err := LoadSettings(path)
		require.NoError(t, err)

		require.NoError(t, s.SetFontSize(FontSizeSmall))

		reloaded, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, FontSizeSmall, reloaded.FontSize())
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
		require.NoError(t, err)

		err = s.SetFontSize("enormous")
		require.ErrorIs(t, err, ErrInvalidSetting)
		assert.Equal(t, FontSizeMedium, s.FontSize())
	})
}

func TestSettings_PersistCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")
	s, err := LoadSettings(path)
	require.NoError(t, err)

	require.NoError(t, s.SetTheme(ThemeDark))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSettings_OnlyChangedFieldKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s, err := LoadSettings(path)
	require.NoError(t, err)

	require.NoError(t, s.SetTheme(ThemeDark))
	require.NoError(t, s.SetFontSize(FontSizeLarge))
	require.NoError(t, s.SetTheme(ThemeLight))

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, reloaded.Theme())
	assert.Equal(t, FontSizeLarge, reloaded.FontSize())
}
