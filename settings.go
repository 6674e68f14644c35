package pix

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// BrushSettings are the brush defaults applied at session start.
type BrushSettings struct {
	Size      int    `toml:"size"`
	Mode      string `toml:"mode"`
	SnapAngle int    `toml:"snap_angle"`
}

// GridSettings control the alignment grid drawn over the canvas.
type GridSettings struct {
	Enabled  bool   `toml:"enabled"`
	Color    string `toml:"color"`
	SpacingX int    `toml:"spacing_x"`
	SpacingY int    `toml:"spacing_y"`
}

// Settings are session settings, loadable from a TOML file.
type Settings struct {
	Checker    bool          `toml:"checker"`
	Background string        `toml:"background"`
	Scale      float64       `toml:"scale"`
	Animation  bool          `toml:"animation"`
	Grid       GridSettings  `toml:"grid"`
	Brush      BrushSettings `toml:"brush"`
}

// DefaultSettings returns the default session settings.
func DefaultSettings() Settings {
	return Settings{
		Checker:    false,
		Background: "#00000000",
		Scale:      1.0,
		Animation:  true,
		Grid: GridSettings{
			Enabled:  false,
			Color:    Blue.String(),
			SpacingX: 8,
			SpacingY: 8,
		},
		Brush: BrushSettings{
			Size: 1,
			Mode: ModeNormal.String(),
		},
	}
}

// LoadSettings reads settings from a TOML file, filling unset fields
// with defaults. A missing file is not an error: the defaults are
// returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("pix: load settings: %w", err)
	}
	return s, nil
}

// BackgroundColor parses the configured background color.
func (s Settings) BackgroundColor() (RGBA8, error) {
	return ParseHex(s.Background)
}

// GridColor parses the configured grid color.
func (s Settings) GridColor() (RGBA8, error) {
	return ParseHex(s.Grid.Color)
}

// Apply configures a brush from the settings.
func (s Settings) Apply(b *Brush) error {
	mode, err := ParseMode(s.Brush.Mode)
	if err != nil {
		return err
	}
	b.mode = mode
	b.SetSize(s.Brush.Size)
	b.SetSnapAngle(s.Brush.SnapAngle)
	return nil
}

// ParseMode parses a brush mode display name ("brush", "erase",
// "pencil", "line").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "brush", "":
		return ModeNormal, nil
	case "erase":
		return ModeErase, nil
	case "pencil":
		return ModePencil, nil
	case "line":
		return ModeLine, nil
	default:
		return ModeNormal, fmt.Errorf("pix: unknown brush mode %q", s)
	}
}
