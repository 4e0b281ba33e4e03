package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		StageBorder: "#FFFFFF",
		CardBorder:  "#585858",
		Placeholder: "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
