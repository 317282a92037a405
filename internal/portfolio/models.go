// Package portfolio holds the literal page content and lookups over it.
package portfolio

import (
	"github.com/fernandozarate/portfolio/internal/theme"
)

// MediaKind tags a carousel slide.
type MediaKind string

const (
	Image MediaKind = "image"
	Video MediaKind = "video"
)

// Media is one carousel slide. When Illustration is set the source
// depends on the theme mode and Src is ignored.
type Media struct {
	Kind         MediaKind          `json:"kind"`
	Src          string             `json:"src,omitempty"`
	Illustration theme.Illustration `json:"illustration,omitempty"`
	Alt          string             `json:"alt"`
}

// Source returns the URL to load for mode m.
func (m Media) Source(mode theme.Mode) string {
	if m.Illustration != "" {
		if u, err := theme.URL(mode, m.Illustration); err == nil {
			return u
		}
	}
	return m.Src
}

// Feature is one entry of a project's collapsible feature list.
type Feature struct {
	Value string `json:"value"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Link is an outbound link. A link without Href, or marked Disabled, is inert.
type Link struct {
	Label    string `json:"label"`
	Href     string `json:"href,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Active reports whether the link navigates anywhere.
func (l Link) Active() bool {
	return l.Href != "" && !l.Disabled
}

// Status is a project's current state. Text is markdown and may carry a link.
type Status struct {
	Text string `json:"text"`
}

// Project is a showcased project.
type Project struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Media          []Media   `json:"media"`
	Description    string    `json:"description"`
	Technologies   []string  `json:"technologies"`
	Infrastructure []string  `json:"infrastructure"`
	Features       []Feature `json:"features"`
	Status         Status    `json:"status"`
	Links          []Link    `json:"links"`
}

// FeatureIDs returns the feature identifiers in order.
func (p *Project) FeatureIDs() []string {
	ids := make([]string, len(p.Features))
	for i, f := range p.Features {
		ids[i] = f.Value
	}
	return ids
}

// Profile is the page header.
type Profile struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline"`
	Skills   []string `json:"skills"`
	Bio      string   `json:"bio"`
}

// TechCategory groups technologies under a label.
type TechCategory struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Experience is a work experience entry.
type Experience struct {
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Items        []string `json:"items"`
}

// Study is an education entry.
type Study struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// Content is every table the page renders.
type Content struct {
	Profile    Profile        `json:"profile"`
	Projects   []Project      `json:"projects"`
	Stack      []TechCategory `json:"stack"`
	Experience []Experience   `json:"experience"`
	Studies    []Study        `json:"studies"`
	Contacts   []Link         `json:"contacts"`
}
