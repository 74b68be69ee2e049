// Package ui provides the graphical user interface for Greeter.
// This file contains the CSS styles for the greeting window.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; colors come from the libadwaita palette.
const appCSS = `
/* Language caption above the greeting */
.language-label {
    font-size: 14px;
    font-style: italic;
    opacity: 0.7;
}

/* The greeting itself */
.greeting-label {
    font-size: 32px;
    font-weight: 700;
    color: @accent_color;
}

/* Placeholder text before the first tick */
.greeting-label.placeholder,
.language-label.placeholder {
    opacity: 0.4;
    font-weight: 400;
}

/* Progress through the rotation */
.rotation-progress {
    min-height: 6px;
}

.rotation-progress.finished progress {
    background-color: @success_color;
}

/* Status line */
.status-label {
    font-size: 11px;
    opacity: 0.6;
}

.status-label.finished {
    color: @success_color;
    opacity: 1;
    font-weight: 600;
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
