package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark returns true for the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
