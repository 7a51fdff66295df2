package tui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		env       string
		colorfgbg string
		want      string
	}{
		{"flag wins", "light", "dark", "", "light"},
		{"env when flag empty", "", "light", "", "light"},
		{"auto falls through to env", "auto", "light", "", "light"},
		{"colorfgbg light background", "", "", "0;15", "light"},
		{"colorfgbg dark background", "", "", "15;0", "dark"},
		{"default dark", "", "", "", "dark"},
		{"unknown env ignored", "", "solarized", "", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENROLL_THEME", tt.env)
			t.Setenv("COLORFGBG", tt.colorfgbg)
			if got := DetectTheme(tt.flag).Name; got != tt.want {
				t.Errorf("DetectTheme(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestRenderBanner(t *testing.T) {
	out := RenderBanner(NewStyleSet(DarkTheme), "", 80)
	if !strings.Contains(out, "E N R O L L") {
		t.Errorf("banner missing title: %q", out)
	}
	if !strings.Contains(out, "vdev") {
		t.Errorf("banner missing default version: %q", out)
	}
}

func TestExpandHome(t *testing.T) {
	orig := osUserHomeDir
	defer func() { osUserHomeDir = orig }()
	osUserHomeDir = func() (string, error) { return "/home/ada", nil }

	tests := map[string]string{
		"~/pics/me.png": "/home/ada/pics/me.png",
		"~":             "/home/ada",
		"/abs/me.png":   "/abs/me.png",
		"rel/me.png":    "rel/me.png",
		"~other/x":      "~other/x",
	}
	for in, want := range tests {
		if got := expandHome(in); got != want {
			t.Errorf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
