package models

import (
	"strings"

	"github.com/fatih/color"
)

// RTISummary is one submitted case as returned by the backend's listing
// endpoint. ResponseStatus is an opaque backend categorization; nothing here
// recomputes it.
type RTISummary struct {
	Filename       string `json:"filename"`
	Timestamp      string `json:"timestamp"`
	Language       string `json:"language"`
	Department     string `json:"department"`
	Status         string `json:"status"`
	ResponseStatus string `json:"responseStatus"`
}

// ResponseStatus tag levels
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseReceived ResponseStatus = "received"
	ResponseOverdue  ResponseStatus = "overdue"
	ResponseUnknown  ResponseStatus = "unknown"
)

// ResponseStatusLevel buckets a backend response status into a fixed tag level,
// case-insensitively. Unknown values land in the neutral bucket.
func ResponseStatusLevel(status string) ResponseStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending":
		return ResponsePending
	case "received":
		return ResponseReceived
	case "overdue":
		return ResponseOverdue
	default:
		return ResponseUnknown
	}
}

// Color returns the terminal color used to tag the response status
func (r ResponseStatus) Color() *color.Color {
	switch r {
	case ResponseReceived:
		return color.New(color.FgGreen)
	case ResponsePending:
		return color.New(color.FgYellow)
	case ResponseOverdue:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

// StatusTag renders the summary's response status as a colored bracket tag
func (s RTISummary) StatusTag() string {
	return ResponseStatusLevel(s.ResponseStatus).Color().Sprintf("[%s]", s.ResponseStatus)
}

// Title derives a display title from the stored filename
func (s RTISummary) Title() string {
	name := strings.TrimSuffix(s.Filename, ".pdf")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToUpper(name)
}
