package layout

import "testing"

func TestValidTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "simple tag", tag: "pico", want: true},
		{name: "upper case allowed", tag: "PICO", want: true},
		{name: "digits and underscore", tag: "tiny_2040", want: true},
		{name: "trailing hyphen digit", tag: "abc-1", want: true},
		{name: "leading hyphen", tag: "-abc", want: false},
		{name: "leading underscore", tag: "_abc", want: false},
		{name: "leading digit", tag: "1abc", want: false},
		{name: "too short", tag: "a", want: false},
		{name: "empty", tag: "", want: false},
		{name: "space", tag: "pi co", want: false},
		{name: "punctuation", tag: "pico!", want: false},
		{name: "multibyte", tag: "picó", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTag(tt.tag); got != tt.want {
				t.Errorf("ValidTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "simple name", value: "Pico", want: true},
		{name: "spaces allowed", value: "Raspberry Pi Pico", want: true},
		{name: "brackets allowed", value: "Pico W [rev 2]", want: true},
		{name: "parens and braces", value: "Board (proto) {x}", want: true},
		{name: "pipe and at", value: "board|x @lab", want: true},
		{name: "leading digit allowed", value: "2040 Board", want: true},
		{name: "single char", value: "P", want: false},
		{name: "empty", value: "", want: false},
		{name: "punctuation rejected", value: "Pico!", want: false},
		{name: "multibyte rejected", value: "Picó", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.value); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
