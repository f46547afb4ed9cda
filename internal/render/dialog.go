package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/services"
)

// DialogID is the id of the rendered alert dialog.
const DialogID = "private-source-dialog"

// HTMLDialog collects alerts shown through services.Dialog so they can be
// rendered after the guard has run.
type HTMLDialog struct {
	alerts []services.Alert
}

// Show records alert.
func (d *HTMLDialog) Show(alert services.Alert) {
	d.alerts = append(d.alerts, alert)
}

// Alerts returns every alert shown so far.
func (d *HTMLDialog) Alerts() []services.Alert {
	return append([]services.Alert(nil), d.alerts...)
}

// Component renders the shown alerts in order.
func (d *HTMLDialog) Component() templ.Component {
	alerts := d.Alerts()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		for _, alert := range alerts {
			h.component(AlertDialog(alert, true))
		}
		return h.err
	})
}

// AlertDialog renders alert as a modal <dialog>. When open is set the dialog is
// rendered with the open attribute so it is visible without script.
func AlertDialog(alert services.Alert, open bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		style := "background:" + alert.Background + ";color:" + alert.Color
		attrs := []string{"id", DialogID, "style", style, "role", "alertdialog", "aria-labelledby", DialogID + "-title", "data-icon", alert.Icon}
		if open {
			attrs = append(attrs, "open", "open")
		}
		h.open("dialog", "rounded-2xl p-6 max-w-sm w-full border border-white/10 text-center", attrs...)
		h.open("form", "space-y-4", "method", "dialog")
		h.icon(icons.Info, "w-12 h-12 mx-auto text-blue-300")
		h.open("h2", "text-xl font-semibold", "id", DialogID+"-title")
		h.text(alert.Title)
		h.close("h2")
		h.open("p", "text-sm opacity-80")
		h.text(alert.Text)
		h.close("p")
		h.open("button", "px-5 py-2 rounded-lg font-medium text-white",
			"type", "submit", "value", "ok", "style", "background:"+alert.ConfirmButtonColor, "autofocus", "autofocus")
		h.text(alert.ConfirmButtonText)
		h.close("button")
		h.close("form")
		h.close("dialog")
		return h.err
	})
}
