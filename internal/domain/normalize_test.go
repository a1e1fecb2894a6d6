package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "capitalized noun", input: "Hund", want: "hund"},
		{name: "sentence start", input: "Die", want: "die"},
		{name: "umlaut", input: "Ärger", want: "ärger"},
		{name: "eszett kept", input: "Straße", want: "straße"},
		{name: "hyphen kept", input: "E-Mail", want: "e-mail"},
		{name: "apostrophe kept", input: "geht's", want: "geht's"},
		{name: "trim", input: "  Katze  ", want: "katze"},
		{name: "collapse spaces", input: "zu   Hause", want: "zu hause"},
		{name: "tabs and newlines", input: "zu\t\nHause", want: "zu hause"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
