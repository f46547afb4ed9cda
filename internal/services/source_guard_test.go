package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio.dev/internal/metrics"
	"portfolio.dev/internal/models"
)

type recordingDialog struct {
	shown []Alert
}

func (d *recordingDialog) Show(alert Alert) {
	d.shown = append(d.shown, alert)
}

func TestClickPrivateShowsOneDialog(t *testing.T) {
	guard := NewSourceGuard(metrics.New())
	dialog := &recordingDialog{}

	navigate := guard.Click(models.Project{Github: "Private"}, dialog)

	assert.False(t, navigate)
	assert.Equal(t, []Alert{PrivateSourceAlert}, dialog.shown)
}

func TestClickPublicNavigates(t *testing.T) {
	guard := NewSourceGuard(nil)

	for _, github := range []string{"https://github.com/me/site", models.DefaultGithubURL, "private", "Private "} {
		dialog := &recordingDialog{}
		assert.True(t, guard.Click(models.Project{Github: github}, dialog), github)
		assert.Empty(t, dialog.shown, github)
	}
}

func TestClickPrivateWithoutDialog(t *testing.T) {
	assert.False(t, NewSourceGuard(nil).Click(models.Project{Github: "Private"}, nil))
}

func TestPrivateSourceAlertContent(t *testing.T) {
	assert.Equal(t, "info", PrivateSourceAlert.Icon)
	assert.Equal(t, "Source Code is Private", PrivateSourceAlert.Title)
	assert.Equal(t, "Sorry, this project's source code is private.", PrivateSourceAlert.Text)
	assert.Equal(t, "OK", PrivateSourceAlert.ConfirmButtonText)
	assert.Equal(t, "#3085d6", PrivateSourceAlert.ConfirmButtonColor)
	assert.Equal(t, "#030014", PrivateSourceAlert.Background)
	assert.Equal(t, "#ffffff", PrivateSourceAlert.Color)
}
