// Package render draws project detail views, as templ components for the web
// and as styled text for the terminal.
package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"portfolio.dev/internal/icons"
)

// htmlWriter stops writing after the first error, which Err reports.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped element content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag with class and extra attributes given as name/value
// pairs.
func (h *htmlWriter) open(tag, class string, attrs ...string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// safeURL sanitizes an outbound URL the way templ does for href/src attributes.
func safeURL(u string) string {
	return string(templ.URL(u))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *htmlWriter) icon(icon icons.Icon, class string) {
	h.open("i", class, "data-lucide", string(icon), "aria-hidden", "true")
	h.close("i")
}

// Icon renders a Lucide placeholder element that the client script replaces
// with an inline SVG.
func Icon(icon icons.Icon, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.icon(icon, class)
		return h.err
	})
}
