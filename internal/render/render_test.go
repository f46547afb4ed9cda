package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
	"portfolio.dev/internal/view"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func sampleProject() models.Project {
	return models.Normalize(models.Project{
		ID:          "1",
		Title:       "Portfolio",
		Description: "My site",
		Link:        "https://example.com",
		Github:      "https://github.com/me/portfolio",
		TechStack:   []string{"React", "Go"},
		Features:    []string{"Fast", "Dark mode", "Responsive"},
		Img:         "https://example.com/shot.png",
	})
}

func TestLoadingRendersIndicator(t *testing.T) {
	t.Parallel()

	got := renderString(t, Loading())
	assert.Contains(t, got, LoadingText)
	assert.Contains(t, got, `data-state="unloaded"`)
	assert.Contains(t, got, "animate-spin")
}

func TestViewPicksComponentByState(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	assert.Contains(t, renderString(t, View(view.Snapshot{ID: "1"}, nil)), LoadingText)

	loaded := renderString(t, View(view.Snapshot{ID: "1", State: view.Loaded, Project: &p}, nil))
	assert.NotContains(t, loaded, LoadingText)
	assert.Contains(t, loaded, `data-state="loaded"`)
}

func TestDetailRendersProject(t *testing.T) {
	t.Parallel()

	got := renderString(t, Detail(sampleProject(), icons.TechTable()))

	assert.Contains(t, got, "<h1")
	assert.Contains(t, got, ">Portfolio</h1>")
	assert.Contains(t, got, "My site")
	assert.Contains(t, got, `onclick="history.back()"`)
	assert.Contains(t, got, ">Projects</span>")
	assert.Contains(t, got, `data-stat="technologies">2<`)
	assert.Contains(t, got, `data-stat="features">3<`)
	assert.Contains(t, got, `href="https://example.com"`)
	assert.Contains(t, got, `href="https://github.com/me/portfolio"`)
	assert.Contains(t, got, `rel="noopener noreferrer"`)
	assert.Contains(t, got, `src="https://example.com/shot.png"`)
	assert.Contains(t, got, `alt="Portfolio"`)
	assert.Equal(t, 2, strings.Count(got, "data-tag="))
	assert.Equal(t, 3, strings.Count(got, "data-feature="))
	assert.NotContains(t, got, NoTechnologiesText)
	assert.NotContains(t, got, NoFeaturesText)
	assert.Contains(t, got, `id="dialog-root"`)
}

func TestDetailBadgeIcons(t *testing.T) {
	t.Parallel()

	got := renderString(t, TechList([]string{"React", "Go", "Python"}, icons.TechTable()))

	assert.Contains(t, got, `data-lucide="globe"`)
	assert.Contains(t, got, `data-lucide="package"`)
	assert.Contains(t, got, `data-lucide="code"`)
	assert.Less(t, strings.Index(got, `data-tag="React"`), strings.Index(got, `data-tag="Go"`))
	assert.Less(t, strings.Index(got, `data-tag="Go"`), strings.Index(got, `data-tag="Python"`))
}

func TestDetailEmptyLists(t *testing.T) {
	t.Parallel()

	p := models.Normalize(models.Project{ID: "2", Title: "Bare"})
	got := renderString(t, Detail(p, nil))

	assert.Contains(t, got, NoTechnologiesText)
	assert.Contains(t, got, NoFeaturesText)
	assert.Contains(t, got, `data-stat="technologies">0<`)
	assert.Contains(t, got, `data-stat="features">0<`)
	assert.Contains(t, got, `src="`+templ.EscapeString(models.PlaceholderImageURL)+`"`)
	assert.Contains(t, got, `href="`+models.DefaultGithubURL+`"`)
}

func TestDetailPrivateSourceLink(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	p.Github = models.PrivateSource
	got := renderString(t, Links(p))

	assert.Contains(t, got, `href="/projects/1/source"`)
	assert.Contains(t, got, `hx-get="/projects/1/source"`)
	assert.Contains(t, got, `hx-target="#dialog-root"`)
	assert.Contains(t, got, `data-private="true"`)
	assert.NotContains(t, got, `href="Private"`)
}

func TestDetailEscapesText(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	p.Title = `<script>alert(1)</script>`
	p.Link = "javascript:alert(1)"
	got := renderString(t, Detail(p, nil))

	assert.NotContains(t, got, "<script>alert(1)</script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, `href="javascript:`)
}

func TestDetailOmitsMissingDemoLink(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	p.Link = ""
	got := renderString(t, Links(p))

	assert.Contains(t, got, `data-link="demo"`)
	assert.NotContains(t, got, `href=""`)
	assert.Equal(t, 1, strings.Count(got, "href="))
}

func TestSourcePathEscapesID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/projects/a%2Fb/source", SourcePath("a/b"))
}

func TestAlertDialog(t *testing.T) {
	t.Parallel()

	got := renderString(t, AlertDialog(services.PrivateSourceAlert, true))

	assert.Contains(t, got, "<dialog")
	assert.Contains(t, got, `open="open"`)
	assert.Contains(t, got, "Source Code is Private")
	assert.Contains(t, got, "Sorry, this project&#39;s source code is private.")
	assert.Contains(t, got, ">OK</button>")
	assert.Contains(t, got, "background:#3085d6")
	assert.Contains(t, got, "background:#030014;color:#ffffff")
	assert.Contains(t, got, `data-icon="info"`)

	closed := renderString(t, AlertDialog(services.PrivateSourceAlert, false))
	assert.NotContains(t, closed, "open=")
}

func TestHTMLDialogCollectsAlerts(t *testing.T) {
	t.Parallel()

	d := &HTMLDialog{}
	assert.Empty(t, renderString(t, d.Component()))

	d.Show(services.PrivateSourceAlert)
	require.Len(t, d.Alerts(), 1)
	assert.Equal(t, 1, strings.Count(renderString(t, d.Component()), "<dialog"))
}

func TestPageLayout(t *testing.T) {
	t.Parallel()

	got := renderString(t, Page(PageTitle("Portfolio"), true, Loading()))

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Portfolio | Project</title>")
	assert.Contains(t, got, HTMXScript)
	assert.Contains(t, got, LucideScript)
	assert.Contains(t, got, `<main id="main" data-scroll-top="true">`)
	assert.Contains(t, got, LoadingText)

	plain := renderString(t, Page("x", false, nil))
	assert.NotContains(t, plain, "data-scroll-top")
	assert.Contains(t, plain, `<main id="main">`)
	assert.Equal(t, "Project", PageTitle("  "))
}

func TestHTMLViewFollowsController(t *testing.T) {
	t.Parallel()

	p := sampleProject()
	machine := view.NewMachine("1")
	hv := NewHTMLView(nil)
	unsub := machine.Subscribe(hv.Observe)
	defer unsub()

	assert.Equal(t, 1, hv.Renders())
	assert.Contains(t, renderString(t, hv.Component()), LoadingText)

	require.True(t, machine.Commit(p))
	assert.Equal(t, 2, hv.Renders())
	assert.Equal(t, view.Loaded, hv.Snapshot().State)
	assert.Contains(t, renderString(t, hv.Component()), ">Portfolio</h1>")
}

func TestTerminalRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := NewTerminal(&buf, nil)

	assert.Contains(t, term.Render(view.Snapshot{}), LoadingText)

	p := sampleProject()
	term.Observe(view.Snapshot{ID: "1", State: view.Loaded, Project: &p})
	got := buf.String()
	assert.Contains(t, got, "Portfolio")
	assert.Contains(t, got, "Technologies")
	assert.Contains(t, got, "Key Features")
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "Dark mode")

	bare := models.Normalize(models.Project{ID: "2", Title: "Bare", Github: models.PrivateSource})
	out := term.Render(view.Snapshot{ID: "2", State: view.Loaded, Project: &bare})
	assert.Contains(t, out, NoTechnologiesText)
	assert.Contains(t, out, NoFeaturesText)
	assert.Contains(t, out, "private")
}
