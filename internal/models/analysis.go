package models

import (
	"strings"

	"github.com/fatih/color"
)

// Gap is one piece of information the backend identified as missing from the
// source document
type Gap struct {
	Gap      string `json:"gap"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// Analysis is the backend's gap analysis for a case
type Analysis struct {
	RawGaps        string              `json:"rawGaps"`
	StructuredGaps []Gap               `json:"structuredGaps"`
	Drafts         map[Language]string `json:"drafts"`
}

// Priority buckets a gap's free-form priority string into a fixed tag level
type Priority string

const (
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityLow     Priority = "low"
	PriorityUnknown Priority = "unknown"
)

// PriorityLevel maps a priority string to its tag level, case-insensitively.
// Anything outside high/medium/low falls into the neutral bucket.
func PriorityLevel(priority string) Priority {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// Color returns the terminal color used to tag the priority level
func (p Priority) Color() *color.Color {
	switch p {
	case PriorityHigh:
		return color.New(color.FgRed)
	case PriorityMedium:
		return color.New(color.FgYellow)
	case PriorityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

// Tag renders a priority string as a colored bracket tag
func (g Gap) Tag() string {
	return PriorityLevel(g.Priority).Color().Sprintf("[%s]", g.Priority)
}
