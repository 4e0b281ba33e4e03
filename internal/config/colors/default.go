package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Board
		StageBorder: "#5F87D7",
		CardBorder:  "#585858",
		Placeholder: "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status
		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}
