package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Client-side assets
const (
	TailwindScript = "https://cdn.tailwindcss.com"
	HTMXScript     = "https://unpkg.com/htmx.org@2.0.4"
	LucideScript   = "https://unpkg.com/lucide@latest"
	AppScript      = "/static/app.js"
)

// MainID is the swap target for htmx navigations.
const MainID = "main"

// PageTitle builds the document title for a project page.
func PageTitle(projectTitle string) string {
	projectTitle = strings.TrimSpace(projectTitle)
	if projectTitle == "" {
		return "Project"
	}
	return projectTitle + " | Project"
}

// Page wraps body in the full document. scrollTop marks the page as freshly
// navigated so the client script resets the viewport.
func Page(title string, scrollTop bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw("<!DOCTYPE html>")
		h.open("html", "", "lang", "en")
		h.open("head", "")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.open("title", "")
		h.text(title)
		h.close("title")
		for _, src := range []string{TailwindScript, HTMXScript, LucideScript} {
			h.open("script", "", "src", src)
			h.close("script")
		}
		h.open("script", "", "src", AppScript, "defer", "defer")
		h.close("script")
		h.close("head")

		h.open("body", "bg-[#030014] text-white antialiased")
		mainAttrs := []string{"id", MainID}
		if scrollTop {
			mainAttrs = append(mainAttrs, "data-scroll-top", "true")
		}
		h.open("main", "", mainAttrs...)
		h.component(body)
		h.close("main")
		h.close("body")
		h.close("html")
		return h.err
	})
}
