package tui

import "github.com/rgehrsitz/paygo/internal/tui/tuistyles"

// Re-export the styles the root model renders with
var (
	TitleStyle       = tuistyles.TitleStyle
	SubtitleStyle    = tuistyles.SubtitleStyle
	StatusBarStyle   = tuistyles.StatusBarStyle
	StatusKeyStyle   = tuistyles.StatusKeyStyle
	ActiveTabStyle   = tuistyles.ActiveTabStyle
	InactiveTabStyle = tuistyles.InactiveTabStyle
	HelpKeyStyle     = tuistyles.HelpKeyStyle
	HelpDescStyle    = tuistyles.HelpDescStyle
	ErrorStyle       = tuistyles.ErrorStyle
	InfoStyle        = tuistyles.InfoStyle
	BorderStyle      = tuistyles.BorderStyle
)
