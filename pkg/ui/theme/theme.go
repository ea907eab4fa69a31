// Package theme centralizes the terminal colors used by the TUI.
package theme

// ANSI 256 color codes shared across views.
const (
	ColorCyan   = "86"
	ColorGreen  = "78"
	ColorRed    = "196"
	ColorYellow = "220"
	ColorGray   = "245"
	ColorMuted  = "240"
	ColorBorder = "240"
)
