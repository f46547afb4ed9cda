package services

import (
	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/models"
)

// Alert is the content of an informational modal dialog
type Alert struct {
	Icon               string `json:"icon"`
	Title              string `json:"title"`
	Text               string `json:"text"`
	ConfirmButtonText  string `json:"confirm_button_text"`
	ConfirmButtonColor string `json:"confirm_button_color"`
	Background         string `json:"background"`
	Color              string `json:"color"`
}

// PrivateSourceAlert is shown instead of opening a private source link
var PrivateSourceAlert = Alert{
	Icon:               "info",
	Title:              "Source Code is Private",
	Text:               "Sorry, this project's source code is private.",
	ConfirmButtonText:  "OK",
	ConfirmButtonColor: "#3085d6",
	Background:         "#030014",
	Color:              "#ffffff",
}

// Dialog shows a modal alert
type Dialog interface {
	Show(alert Alert)
}

// SourceGuard decides what activating a source repository link does
type SourceGuard struct {
	metrics *metrics.Metrics
}

// NewSourceGuard creates a new SourceGuard
func NewSourceGuard(m *metrics.Metrics) *SourceGuard {
	return &SourceGuard{metrics: m}
}

// Click handles one activation of the project's source link. It returns
// whether navigation should proceed. For the "Private" sentinel navigation is
// cancelled and dialog receives exactly one PrivateSourceAlert.
func (g *SourceGuard) Click(project models.Project, dialog Dialog) bool {
	if !project.IsPrivateSource() {
		return true
	}
	if dialog != nil {
		dialog.Show(PrivateSourceAlert)
	}
	g.metrics.ObservePrivateSource()
	return false
}
