package render

import "testing"

func TestResolveColorMode(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}
	tests := []struct {
		name string
		flag string
		env  map[string]string
		want ColorMode
	}{
		{"explicit 256", "256", map[string]string{"COLORTERM": "truecolor"}, ColorMode256},
		{"explicit truecolor", "24bit", nil, ColorModeTrueColor},
		{"colorterm", "auto", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"kitty", "", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"term direct", "auto", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", "auto", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.flag, env(tt.env)); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
