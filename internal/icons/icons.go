// Package icons maps technology tags and UI affordances to Lucide icon names.
//
// The tag table is built once and never mutated. Lookups are exact: "react"
// and "React " fall through to the default icon, which keeps what a page shows
// reproducible from the stored tag.
package icons

// Icon is a Lucide icon name, e.g. "globe".
type Icon string

// Fixed icons used by the detail view.
const (
	ArrowLeft    Icon = "arrow-left"
	ChevronRight Icon = "chevron-right"
	ExternalLink Icon = "external-link"
	Github       Icon = "github"
	Code2        Icon = "code-2"
	Layers       Icon = "layers"
	Star         Icon = "star"
	Info         Icon = "info"
)

// Tech icons.
const (
	Globe   Icon = "globe"
	Layout  Icon = "layout"
	Cpu     Icon = "cpu"
	Code    Icon = "code"
	Package Icon = "package"
)

// Table resolves technology tags to icons.
type Table struct {
	entries  map[string]Icon
	fallback Icon
}

// NewTable copies entries into a Table with the given fallback icon.
func NewTable(entries map[string]Icon, fallback Icon) *Table {
	copied := make(map[string]Icon, len(entries))
	for tag, icon := range entries {
		copied[tag] = icon
	}
	return &Table{entries: copied, fallback: fallback}
}

var techTable = NewTable(map[string]Icon{
	"React":      Globe,
	"Tailwind":   Layout,
	"Express":    Cpu,
	"Python":     Code,
	"Javascript": Code,
	"HTML":       Code,
	"CSS":        Code,
}, Package)

// TechTable returns the shared technology tag table.
func TechTable() *Table {
	return techTable
}

// Lookup returns the icon for tag and whether the tag had an entry.
func (t *Table) Lookup(tag string) (Icon, bool) {
	icon, ok := t.entries[tag]
	return icon, ok
}

// IconFor returns the icon for tag, or the fallback icon.
func (t *Table) IconFor(tag string) Icon {
	if icon, ok := t.entries[tag]; ok {
		return icon
	}
	return t.fallback
}

// Fallback returns the icon used for unknown tags.
func (t *Table) Fallback() Icon {
	return t.fallback
}

// Len returns the number of tag entries.
func (t *Table) Len() int {
	return len(t.entries)
}
