package render

import (
	"sync"

	"github.com/a-h/templ"

	"portfolio.dev/internal/icons"
	"portfolio.dev/internal/view"
)

// HTMLView keeps the component for the latest snapshot it observed. Subscribe
// Observe to a view.Controller or view.Machine.
type HTMLView struct {
	table *icons.Table

	mu      sync.Mutex
	snap    view.Snapshot
	renders int
}

// NewHTMLView creates an HTMLView that resolves badge icons through table.
func NewHTMLView(table *icons.Table) *HTMLView {
	if table == nil {
		table = icons.TechTable()
	}
	return &HTMLView{table: table}
}

// Observe records snap. It satisfies view.Observer.
func (v *HTMLView) Observe(snap view.Snapshot) {
	v.mu.Lock()
	v.snap = snap
	v.renders++
	v.mu.Unlock()
}

// Snapshot returns the last observed snapshot.
func (v *HTMLView) Snapshot() view.Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// Renders counts observed snapshots.
func (v *HTMLView) Renders() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renders
}

// Component renders the last observed snapshot.
func (v *HTMLView) Component() templ.Component {
	return View(v.Snapshot(), v.table)
}
