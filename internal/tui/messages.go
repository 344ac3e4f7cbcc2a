package tui

import (
	"github.com/rgehrsitz/paygo/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneCalculator Scene = iota
	SceneResults
	SceneCompare
	SceneGrossUp
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// Messages emitted by scenes live in tuimsg; these aliases keep the root
// package's switch readable.
type (
	FormLoadedMsg         = tuimsg.FormLoadedMsg
	ErrorMsg              = tuimsg.ErrorMsg
	ComparisonStartedMsg  = tuimsg.ComparisonStartedMsg
	ComparisonCompleteMsg = tuimsg.ComparisonCompleteMsg
	GrossUpStartedMsg     = tuimsg.GrossUpStartedMsg
	GrossUpCompleteMsg    = tuimsg.GrossUpCompleteMsg
	ExportRequestedMsg    = tuimsg.ExportRequestedMsg
	ExportCompleteMsg     = tuimsg.ExportCompleteMsg
)
