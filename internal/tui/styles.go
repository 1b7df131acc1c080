// Package tui renders evaluated series for terminals: a styled summary box
// and an interactive table for browsing rows.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette (ANSI 256).
const (
	ColorHeader    = lipgloss.Color("86")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
)

// Recovery factor bands used for colouring.
const (
	rfGood = 0.9
	rfFair = 0.5
)

// Default terminal size before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 24
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyS     = "s"
)

// ViewState is the screen the model is showing.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// RecoveryFactorColor picks a colour for an X_RF value.
func RecoveryFactorColor(rf float64) lipgloss.Color {
	switch {
	case rf >= rfGood:
		return ColorOK
	case rf >= rfFair:
		return ColorWarning
	default:
		return ColorCritical
	}
}
