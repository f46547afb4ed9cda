package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// DecodeCollection reads a serialized project collection without validating
// it. Anything that is not a JSON array yields an empty collection. Entries that
// are not objects are kept as records whose id cannot match a route id.
func DecodeCollection(raw []byte) []Project {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return []Project{}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return []Project{}
	}

	entries := root.Array()
	projects := make([]Project, 0, len(entries))
	for _, entry := range entries {
		projects = append(projects, decodeProject(entry))
	}
	return projects
}

// MatchID reports whether a stored id equals a route id once both are strings.
func MatchID(p Project, id string) bool {
	return p.ID == id && p.ID != unmatchableID
}

// unmatchableID marks entries that are not objects at all.
const unmatchableID = "\x00"

// IsRecord reports whether the entry was a JSON object in the collection.
func (p Project) IsRecord() bool {
	return p.ID != unmatchableID
}

func decodeProject(entry gjson.Result) Project {
	if !entry.IsObject() {
		return Project{ID: unmatchableID}
	}

	p := Project{
		ID:          idString(entry.Get("id")),
		Title:       scalarString(entry.Get("Title")),
		Description: scalarString(entry.Get("Description")),
		Link:        scalarString(entry.Get("Link")),
		Github:      falsyString(entry.Get("Github")),
		TechStack:   stringList(entry.Get("TechStack")),
		Features:    stringList(entry.Get("Features")),
		Img:         falsyString(entry.Get("img")),
	}

	entry.ForEach(func(key, value gjson.Result) bool {
		if _, known := knownFields[key.Str]; known {
			return true
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[key.Str] = json.RawMessage(value.Raw)
		return true
	})

	return p
}

// idString coerces an id the way the page compared it: String(p.id).
func idString(r gjson.Result) string {
	if !r.Exists() {
		return "undefined"
	}
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.JSON:
		if r.IsArray() {
			parts := make([]string, 0, len(r.Array()))
			for _, part := range r.Array() {
				parts = append(parts, elementString(part))
			}
			return strings.Join(parts, ",")
		}
		return "[object Object]"
	default:
		return primitiveString(r)
	}
}

// elementString coerces one array element the way Array.prototype.join does:
// null becomes empty, everything else goes through idString.
func elementString(r gjson.Result) string {
	if r.Type == gjson.Null {
		return ""
	}
	return idString(r)
}

// primitiveString stringifies a scalar; numbers use numberString.
func primitiveString(r gjson.Result) string {
	if r.Type == gjson.Number {
		return numberString(r.Num)
	}
	return r.String()
}

// numberString formats f like Number.prototype.toString: shortest round-trip
// digits, fixed notation for 1e-7 <= |f| < 1e21 and exponent form otherwise.
func numberString(f float64) string {
	if f == 0 {
		return "0"
	}
	if f < 0 {
		return "-" + numberString(-f)
	}

	// d.ddde±x
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k, n := len(digits), exp+1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	e := n - 1
	if e < 0 {
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}

// truthy follows JavaScript truthiness for JSON values.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

func scalarString(r gjson.Result) string {
	if !r.Exists() || r.Type == gjson.Null || r.Type == gjson.JSON {
		return ""
	}
	return primitiveString(r)
}

func falsyString(r gjson.Result) string {
	if !truthy(r) || r.Type == gjson.JSON {
		return ""
	}
	return primitiveString(r)
}

func stringList(r gjson.Result) []string {
	if !truthy(r) || !r.IsArray() {
		return nil
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, primitiveString(item))
	}
	return out
}
