package textshape

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "hello world", "hello world"},
		{"collapses spaces", "hello   world", "hello world"},
		{"collapses tabs and newlines", "hello\t\tworld\n\ngoodbye", "hello world goodbye"},
		{"windows line endings", "hello\r\nworld\rgoodbye", "hello world goodbye"},
		{"trims", "  hello world \n", "hello world"},
		{"strips control characters", "hel\x00lo\x07 wor\x1bld", "hello world"},
		{"keeps unicode letters", "straße über 12°", "straße über 12°"},
		{"dehyphenates line break", "recog-\nnition works", "recognition works"},
		{"dehyphenation keeps rest of line", "hy-\nphen ation", "hyphen ation"},
		{"dehyphenation consumes single-word line", "hy-\nphen\nnext", "hyphen next"},
		{"lone hyphen line untouched", "-\nword", "- word"},
		{"empty", "", ""},
		{"only noise", "\x00\x01 \n\t", ""},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShapeKeepsRawText(t *testing.T) {
	raw := "hello\n\n  world\x00"
	r := Shape(raw, "eng")
	if r.RawText != raw {
		t.Error("RawText must be untouched")
	}
	if r.CleanedText != "hello world" {
		t.Errorf("CleanedText = %q", r.CleanedText)
	}
	if r.LanguageKey != "eng" {
		t.Errorf("LanguageKey = %q", r.LanguageKey)
	}
}
