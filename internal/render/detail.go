package render

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/view"
)

// Empty-state messages
const (
	NoTechnologiesText = "No technologies added."
	NoFeaturesText     = "No features added."
	LoadingText        = "Loading Project..."
)

// DialogRootID is the element that receives the private source dialog.
const DialogRootID = "dialog-root"

// SourcePath is the guarded-click endpoint for a project's source link.
func SourcePath(id string) string {
	return "/projects/" + url.PathEscape(id) + "/source"
}

// View renders a snapshot: the loading indicator until a record is loaded.
func View(snap view.Snapshot, table *icons.Table) templ.Component {
	if snap.State != view.Loaded || snap.Project == nil {
		return Loading()
	}
	return Detail(*snap.Project, table)
}

// Loading renders the indefinite loading indicator.
func Loading() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "min-h-screen bg-[#030014] flex items-center justify-center", "data-state", view.Unloaded.String())
		h.open("div", "text-center space-y-6")
		h.open("div", "w-16 h-16 mx-auto border-4 border-blue-500/30 border-t-blue-500 rounded-full animate-spin", "role", "status")
		h.close("div")
		h.open("h2", "text-xl font-bold text-white")
		h.text(LoadingText)
		h.close("h2")
		h.close("div")
		h.close("div")
		return h.err
	})
}

// Detail renders a loaded, normalized project.
func Detail(p models.Project, table *icons.Table) templ.Component {
	if table == nil {
		table = icons.TechTable()
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "min-h-screen bg-[#030014] px-[2%] sm:px-0 relative overflow-hidden", "data-state", view.Loaded.String())
		h.open("div", "max-w-7xl mx-auto px-4 md:px-6 py-8 md:py-16")

		h.component(Breadcrumb(p.Title))

		h.open("div", "grid lg:grid-cols-2 gap-8")

		h.open("div", "space-y-6")
		h.open("h1", "text-3xl md:text-6xl font-bold text-white")
		h.text(p.Title)
		h.close("h1")
		h.open("p", "text-base text-gray-300")
		h.text(p.Description)
		h.close("p")
		h.component(Stats(p.Stats()))
		h.component(Links(p))
		h.component(TechList(p.TechStack, table))
		h.close("div")

		h.open("div", "space-y-6")
		h.raw("<img")
		h.attr("src", safeURL(p.ImageURL()))
		h.attr("alt", p.Title)
		h.attr("class", "w-full rounded-2xl object-cover")
		h.raw(">")
		h.component(FeatureList(p.Features))
		h.close("div")

		h.close("div")
		h.close("div")
		h.open("div", "", "id", DialogRootID)
		h.close("div")
		h.close("div")
		return h.err
	})
}

// Breadcrumb renders the back button and the Projects > title trail.
func Breadcrumb(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("nav", "flex items-center space-x-2 mb-8", "aria-label", "Breadcrumb")
		h.open("button", "group inline-flex items-center space-x-1 px-3 py-2 bg-white/5 rounded-xl text-white/90 hover:bg-white/10 border border-white/10 text-sm",
			"type", "button", "onclick", "history.back()", "data-action", "back")
		h.icon(icons.ArrowLeft, "w-4 h-4")
		h.open("span", "")
		h.text("Back")
		h.close("span")
		h.close("button")
		h.open("div", "flex items-center space-x-1 text-sm text-white/50")
		h.open("span", "")
		h.text("Projects")
		h.close("span")
		h.icon(icons.ChevronRight, "w-3 h-3")
		h.open("span", "text-white/90 truncate")
		h.text(title)
		h.close("span")
		h.close("div")
		h.close("nav")
		return h.err
	})
}

// Stats renders the Technologies and Key Features counts.
func Stats(stats models.Stats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "grid grid-cols-2 gap-3 md:gap-4 p-3 md:p-4 bg-[#0a0a1a] rounded-xl", "data-section", "stats")
		statCell(h, icons.Code2, "text-blue", stats.Technologies, "Technologies", "technologies")
		statCell(h, icons.Layers, "text-purple", stats.Features, "Key Features", "features")
		h.close("div")
		return h.err
	})
}

func statCell(h *htmlWriter, icon icons.Icon, tone string, count int, label, key string) {
	h.open("div", "flex items-center space-x-2 md:space-x-3 bg-white/5 p-2 md:p-3 rounded-lg")
	h.icon(icon, tone+"-300 w-4 h-4 md:w-6 md:h-6")
	h.open("div", "flex-grow")
	h.open("div", "text-lg md:text-xl font-semibold "+tone+"-200", "data-stat", key)
	h.text(strconv.Itoa(count))
	h.close("div")
	h.open("div", "text-[10px] md:text-xs text-gray-400")
	h.text(label)
	h.close("div")
	h.close("div")
	h.close("div")
}

// Links renders the Live Demo and Github links. A private source link points at
// the guarded endpoint and asks htmx to swap the dialog in instead of leaving
// the page.
func Links(p models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "flex flex-wrap gap-3")

		demo := []string{"target", "_blank", "rel", "noopener noreferrer", "data-link", "demo"}
		if p.Link != "" {
			demo = append([]string{"href", safeURL(p.Link)}, demo...)
		}
		h.open("a", "px-4 py-2 bg-blue-500/20 text-blue-200 rounded-lg", demo...)
		h.icon(icons.ExternalLink, "inline w-4 h-4 mr-1")
		h.text("Live Demo")
		h.close("a")

		if p.IsPrivateSource() {
			source := SourcePath(p.ID)
			h.open("a", "px-4 py-2 bg-purple-500/20 text-purple-200 rounded-lg",
				"href", source, "target", "_blank", "rel", "noopener noreferrer", "data-link", "source",
				"data-private", "true",
				"hx-get", source, "hx-target", "#"+DialogRootID, "hx-swap", "innerHTML")
		} else {
			h.open("a", "px-4 py-2 bg-purple-500/20 text-purple-200 rounded-lg",
				"href", safeURL(p.Github), "target", "_blank", "rel", "noopener noreferrer", "data-link", "source")
		}
		h.icon(icons.Github, "inline w-4 h-4 mr-1")
		h.text("Github")
		h.close("a")

		h.close("div")
		return h.err
	})
}

// TechList renders one badge per tag, or the empty-state message.
func TechList(tags []string, table *icons.Table) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "", "data-section", "tech")
		h.open("h3", "text-lg font-semibold text-white mt-6 flex items-center gap-2")
		h.icon(icons.Code2, "w-4 h-4 text-blue-400")
		h.text("Technologies Used")
		h.close("h3")
		if len(tags) == 0 {
			h.open("p", "text-sm text-gray-400 opacity-50 mt-1")
			h.text(NoTechnologiesText)
			h.close("p")
		} else {
			h.open("div", "flex flex-wrap gap-2 mt-2")
			for _, tag := range tags {
				h.component(TechBadge(tag, table))
			}
			h.close("div")
		}
		h.close("div")
		return h.err
	})
}

// TechBadge renders one technology tag with its icon.
func TechBadge(tag string, table *icons.Table) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "group relative overflow-hidden px-3 py-2 md:px-4 md:py-2.5 bg-gradient-to-r from-blue-600/10 to-purple-600/10 rounded-xl border border-blue-500/10 cursor-default",
			"data-tag", tag)
		h.open("div", "relative flex items-center gap-1.5 md:gap-2")
		h.icon(table.IconFor(tag), "w-3.5 h-3.5 md:w-4 md:h-4 text-blue-400")
		h.open("span", "text-xs md:text-sm font-medium text-blue-300/90")
		h.text(tag)
		h.close("span")
		h.close("div")
		h.close("div")
		return h.err
	})
}

// FeatureList renders the Key Features panel.
func FeatureList(features []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open("div", "bg-white/[0.02] rounded-2xl p-6 border border-white/10", "data-section", "features")
		h.open("h3", "text-xl font-semibold text-white flex items-center gap-3")
		h.icon(icons.Star, "w-5 h-5 text-yellow-400")
		h.text("Key Features")
		h.close("h3")
		if len(features) == 0 {
			h.open("p", "text-gray-400 opacity-50 mt-1")
			h.text(NoFeaturesText)
			h.close("p")
		} else {
			h.open("ul", "list-none mt-2 space-y-2")
			for _, feature := range features {
				h.open("li", "group flex items-start space-x-3 p-2.5 md:p-3.5 rounded-xl hover:bg-white/5", "data-feature", "")
				h.open("span", "relative mt-2 w-1.5 h-1.5 md:w-2 md:h-2 rounded-full bg-gradient-to-r from-blue-400 to-purple-400")
				h.close("span")
				h.open("span", "text-sm md:text-base text-gray-300")
				h.text(feature)
				h.close("span")
				h.close("li")
			}
			h.close("ul")
		}
		h.close("div")
		return h.err
	})
}
