package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/maksimkurb/engutil/src/internal/errors"
)

func TestExpandHexShorthand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc", "aabbcc"},
		{"#abc", "#aabbcc"},
		{"F0A", "FF00AA"},
		{"red", "red"},
		{"", ""},
		{"abcd", "abcd"},
		{"#abcd", "#abcd"},
		{"ab", "ab"},
		{"#ab", "#ab"},
		{"#", "#"},
		{"aabbcc", "aabbcc"},
		{"xyz", "xxyyzz"},
		{"éa", "éa"},
		{"#é1", "#éé11"},
		{"é1f", "éé11ff"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandHexShorthand(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Expected valid UTF-8, got %q", got)
			}
		})
	}
}

func TestColorHexRGB(t *testing.T) {
	tests := []struct {
		name     string
		color    Colorer
		expected string
	}{
		{"Float red", Color{R: 1, A: 1}, "FF0000"},
		{"Float mid grey", Color{R: 0.5, G: 0.5, B: 0.5}, "808080"},
		{"Float clamped", Color{R: 2, G: -1, B: 1}, "FF00FF"},
		{"Alpha ignored", Color{R: 0, G: 1, B: 0, A: 0.25}, "00FF00"},
		{"Byte channels", Color32{R: 0x12, G: 0xAB, B: 0x05, A: 0}, "12AB05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.HexRGB(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestColorizeText(t *testing.T) {
	got := ColorizeText("hello", Color32{R: 255, G: 128, B: 0, A: 10})
	expected := "<color=#FF8000>hello</color>"
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	got = ColorizeText("{{text}}", Color{})
	expected = "<color=#000000>{{text}}</color>"
	if got != expected {
		t.Errorf("Expected text to be inserted verbatim, got %s", got)
	}
}

func TestColorTag(t *testing.T) {
	if got := ColorTag("red", "msg"); got != "<color=red>msg</color>" {
		t.Errorf("Expected <color=red>msg</color>, got %s", got)
	}
}

func TestColor32_RoundTrip(t *testing.T) {
	c := Color32{R: 10, G: 20, B: 30, A: 255}
	if got := c.ToColor().To32(); got != c {
		t.Errorf("Expected %+v, got %+v", c, got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color32
		wantErr  bool
	}{
		{"#FF8000", Color32{R: 255, G: 128, B: 0, A: 255}, false},
		{"ff8000", Color32{R: 255, G: 128, B: 0, A: 255}, false},
		{"#abc", Color32{R: 0xAA, G: 0xBB, B: 0xCC, A: 255}, false},
		{"abc", Color32{R: 0xAA, G: 0xBB, B: 0xCC, A: 255}, false},
		{"red", Color32{}, true},
		{"#abcd", Color32{}, true},
		{"zzzzzz", Color32{}, true},
		{"", Color32{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.input)
				}
				if !errors.HasCode(err, errors.ErrCodeValidation) {
					t.Errorf("Expected VALIDATION_ERROR, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestIsMarkupColor(t *testing.T) {
	valid := []string{"red", "Yellow", "#fff", "00ff00"}
	for _, v := range valid {
		if !IsMarkupColor(v) {
			t.Errorf("Expected %q to be a markup color", v)
		}
	}

	invalid := []string{"", "reddish", "#12", "#ggg"}
	for _, v := range invalid {
		if IsMarkupColor(v) {
			t.Errorf("Expected %q to not be a markup color", v)
		}
	}
}
