package ui

import "testing"

func TestTrayText(t *testing.T) {
	tests := []struct {
		language, greeting string
		wantTitle          string
		wantTooltip        string
	}{
		{"Language", "", "Language", "Greeter - Language"},
		{"French", "Bonjour le monde!", "Bonjour le monde!", "French: Bonjour le monde!"},
	}

	for _, tt := range tests {
		title, tooltip := trayText(tt.language, tt.greeting)
		if title != tt.wantTitle {
			t.Errorf("trayText(%q, %q) title = %q, want %q", tt.language, tt.greeting, title, tt.wantTitle)
		}
		if tooltip != tt.wantTooltip {
			t.Errorf("trayText(%q, %q) tooltip = %q, want %q", tt.language, tt.greeting, tooltip, tt.wantTooltip)
		}
	}
}
