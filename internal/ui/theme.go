package ui

// ThemeConfig controls theme construction.
type ThemeConfig struct {
	// NoColor disables all styling and animation.
	NoColor bool
}

// Colors holds the palette for interactive output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette with the global color switch.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme builds a Theme from the given config.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		NoColor: cfg.NoColor,
		Colors: Colors{
			Primary:   "#00A86B",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
	}
}

// DefaultTheme returns the standard palette with color enabled.
func DefaultTheme() *Theme {
	return NewTheme(ThemeConfig{})
}
