// Package theme holds the two Catppuccin palettes the dashboard renders with.
// https://catppuccin.com/palette
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Toggle flips between light and dark.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// GlamourStyle names the glamour standard style matching the mode.
func (m Mode) GlamourStyle() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

func (m Mode) Label() string {
	if m == Light {
		return "Light"
	}
	return "Dark"
}

// Palette is the semantic color set passed to every panel at render time.
type Palette struct {
	Mode Mode

	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color

	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
	Money   lipgloss.Color
}

// For returns the palette for mode. Anything but Light is dark.
func For(mode Mode) Palette {
	if mode == Light {
		return Latte()
	}
	return Mocha()
}

// Mocha is the dark variant.
func Mocha() Palette {
	return Palette{
		Mode:     Dark,
		Text:     "#cdd6f4",
		Subtext:  "#a6adc8",
		Muted:    "#7f849c",
		Border:   "#585b70",
		Base:     "#1e1e2e",
		Mantle:   "#181825",
		Surface0: "#313244",
		Surface1: "#45475a",
		Accent:   "#cba6f7",
		Focus:    "#b4befe",
		Success:  "#a6e3a1",
		Warning:  "#f9e2af",
		Error:    "#f38ba8",
		Info:     "#89dceb",
		Money:    "#94e2d5",
	}
}

// Latte is the light variant.
func Latte() Palette {
	return Palette{
		Mode:     Light,
		Text:     "#4c4f69",
		Subtext:  "#6c6f85",
		Muted:    "#8c8fa1",
		Border:   "#acb0be",
		Base:     "#eff1f5",
		Mantle:   "#e6e9ef",
		Surface0: "#ccd0da",
		Surface1: "#bcc0cc",
		Accent:   "#8839ef",
		Focus:    "#7287fd",
		Success:  "#40a02b",
		Warning:  "#df8e1d",
		Error:    "#d20f39",
		Info:     "#04a5e5",
		Money:    "#179299",
	}
}

// Colors lists every color in the palette, for validation.
func (p Palette) Colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Text, p.Subtext, p.Muted, p.Border,
		p.Base, p.Mantle, p.Surface0, p.Surface1,
		p.Accent, p.Focus, p.Success, p.Warning,
		p.Error, p.Info, p.Money,
	}
}
