package models

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	// DefaultGithubURL replaces a missing Github field during normalization.
	DefaultGithubURL = "https://github.com/biba"

	// PlaceholderImageURL is shown when a project has no image.
	PlaceholderImageURL = "https://via.placeholder.com/600x400?text=No+Image"

	// PrivateSource is the sentinel stored in Github for closed-source projects.
	PrivateSource = "Private"
)

// knownFields are the keys decoded into typed Project fields. Everything else
// is carried in Extra.
var knownFields = map[string]struct{}{
	"id":          {},
	"Title":       {},
	"Description": {},
	"Link":        {},
	"Github":      {},
	"TechStack":   {},
	"Features":    {},
	"img":         {},
}

// Project represents a portfolio project as stored in the projects collection
type Project struct {
	ID          string
	Title       string
	Description string
	Link        string
	Github      string
	TechStack   []string
	Features    []string
	Img         string

	// Extra holds fields this server does not interpret, verbatim.
	Extra map[string]json.RawMessage
}

// Stats are the derived counts shown next to a project
type Stats struct {
	Technologies int `json:"technologies"`
	Features     int `json:"features"`
}

// Normalize fills absent optional fields with their defaults.
// Applying it more than once yields the same record.
func Normalize(p Project) Project {
	if len(p.Features) == 0 {
		p.Features = []string{}
	}
	if len(p.TechStack) == 0 {
		p.TechStack = []string{}
	}
	if p.Github == "" {
		p.Github = DefaultGithubURL
	}
	return p
}

// Stats returns the technology and feature counts
func (p Project) Stats() Stats {
	return Stats{
		Technologies: len(p.TechStack),
		Features:     len(p.Features),
	}
}

// ImageURL returns the project image or the placeholder
func (p Project) ImageURL() string {
	if p.Img == "" {
		return PlaceholderImageURL
	}
	return p.Img
}

// IsPrivateSource reports whether the source link is the "Private" sentinel.
// The comparison is exact.
func (p Project) IsPrivateSource() bool {
	return p.Github == PrivateSource
}

// MarshalJSON writes the project using its stored field names, including Extra.
func (p Project) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(knownFields)+len(p.Extra))
	for key, raw := range p.Extra {
		out[key] = raw
	}
	out["id"] = p.ID
	out["Title"] = p.Title
	out["Description"] = p.Description
	out["Link"] = p.Link
	out["Github"] = p.Github
	out["TechStack"] = p.TechStack
	out["Features"] = p.Features
	if p.Img != "" {
		out["img"] = p.Img
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal project %s: %w", p.ID, err)
	}
	return data, nil
}

// UnmarshalJSON reads one stored project using the same lenient rules as
// DecodeCollection.
func (p *Project) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid project json")
	}
	*p = decodeProject(gjson.ParseBytes(data))
	return nil
}
