package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/view"
)

var (
	colorBlue   = lipgloss.Color("#93c5fd")
	colorPurple = lipgloss.Color("#d8b4fe")
	colorMuted  = lipgloss.Color("#9ca3af")
	colorBorder = lipgloss.Color("#1e2a3d")
)

// Terminal renders snapshots as styled text. Styling adapts to the color
// support of the writer it was created for.
type Terminal struct {
	w     io.Writer
	table *icons.Table

	title   lipgloss.Style
	crumb   lipgloss.Style
	muted   lipgloss.Style
	stat    lipgloss.Style
	badge   lipgloss.Style
	section lipgloss.Style
	panel   lipgloss.Style
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer, table *icons.Table) *Terminal {
	if table == nil {
		table = icons.TechTable()
	}
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		w:       w,
		table:   table,
		title:   r.NewStyle().Bold(true).MarginBottom(1),
		crumb:   r.NewStyle().Foreground(colorMuted),
		muted:   r.NewStyle().Foreground(colorMuted).Italic(true),
		stat:    r.NewStyle().Foreground(colorBlue).Bold(true),
		badge:   r.NewStyle().Foreground(colorBlue).Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		section: r.NewStyle().Foreground(colorPurple).Bold(true).MarginTop(1),
		panel:   r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorBorder).Padding(0, 1),
	}
}

// Observe writes snap. It satisfies view.Observer.
func (t *Terminal) Observe(snap view.Snapshot) {
	fmt.Fprintln(t.w, t.Render(snap))
}

// Render returns the text for snap.
func (t *Terminal) Render(snap view.Snapshot) string {
	if snap.State != view.Loaded || snap.Project == nil {
		return t.muted.Render(LoadingText)
	}
	p := *snap.Project
	stats := p.Stats()

	var blocks []string
	blocks = append(blocks,
		t.crumb.Render("< Back   Projects > "+p.Title),
		t.title.Render(p.Title),
		p.Description,
		t.panel.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			t.stat.Render(fmt.Sprintf("%d", stats.Technologies))+" Technologies    ",
			t.stat.Render(fmt.Sprintf("%d", stats.Features))+" Key Features",
		)),
		"Live Demo: "+p.Link,
	)
	if p.IsPrivateSource() {
		blocks = append(blocks, "Github: "+t.muted.Render("private"))
	} else {
		blocks = append(blocks, "Github: "+p.Github)
	}
	blocks = append(blocks, "Image: "+p.ImageURL())

	blocks = append(blocks, t.section.Render("Technologies Used"))
	if len(p.TechStack) == 0 {
		blocks = append(blocks, t.muted.Render(NoTechnologiesText))
	} else {
		badges := make([]string, 0, len(p.TechStack))
		for _, tag := range p.TechStack {
			badges = append(badges, t.badge.Render(string(t.table.IconFor(tag))+" "+tag))
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	}

	blocks = append(blocks, t.section.Render("Key Features"))
	if len(p.Features) == 0 {
		blocks = append(blocks, t.muted.Render(NoFeaturesText))
	} else {
		items := make([]string, 0, len(p.Features))
		for _, feature := range p.Features {
			items = append(items, "• "+feature)
		}
		blocks = append(blocks, strings.Join(items, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
