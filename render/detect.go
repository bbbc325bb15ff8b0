package render

import "strings"

// ResolveColorMode honors an explicit "256" or "truecolor" and detects otherwise
func ResolveColorMode(s string, getenv func(string) string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	}
	return DetectColorMode(getenv)
}

// DetectColorMode guesses terminal color support from the environment
func DetectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, key := range []string{
		"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
	} {
		if getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	term := getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}
