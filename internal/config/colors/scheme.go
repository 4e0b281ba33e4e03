package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the active workflow, titles, highlights)
	Accent string `yaml:"accent"`

	// Board element colors
	StageBorder string `yaml:"stage_border"`
	CardBorder  string `yaml:"card_border"`
	Placeholder string `yaml:"placeholder"` // Drop gap shown while previewing a move

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status colors
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.StageBorder == "" {
		c.StageBorder = preset.StageBorder
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.Placeholder == "" {
		c.Placeholder = preset.Placeholder
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}

// MergeFrom overrides every color set in other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		*c = *GetPreset(other.Preset)
	}
	for dst, src := range map[*string]string{
		&c.Accent:      other.Accent,
		&c.StageBorder: other.StageBorder,
		&c.CardBorder:  other.CardBorder,
		&c.Placeholder: other.Placeholder,
		&c.Title:       other.Title,
		&c.Subtle:      other.Subtle,
		&c.Normal:      other.Normal,
		&c.Success:     other.Success,
		&c.Error:       other.Error,
	} {
		if src != "" {
			*dst = src
		}
	}
}
