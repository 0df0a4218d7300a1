package domain

import "time"

// FAQ is a static question and answer shown on a page.
type FAQ struct {
	ID       string   `json:"id"                 yaml:"id"`
	Question string   `json:"question"           yaml:"question"`
	Answer   string   `json:"answer"             yaml:"answer"`
	PageSlug string   `json:"pageSlug"           yaml:"pageSlug"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords"`
	// SortOrder orders entries on a page, lower first.
	SortOrder int `json:"sortOrder" yaml:"sortOrder"`
}

// Secret is an "industry secret" content card.
type Secret struct {
	ID       string   `json:"id"                 yaml:"id"`
	Title    string   `json:"title"              yaml:"title"`
	Body     string   `json:"body"               yaml:"body"`
	Category string   `json:"category"           yaml:"category"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords"`
}

// Fact is a headline stat shown in the facts bar.
type Fact struct {
	ID          string `json:"id"          yaml:"id"`
	Stat        string `json:"stat"        yaml:"stat"`
	Label       string `json:"label"       yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category"    yaml:"category"`
	PageSlug    string `json:"pageSlug"    yaml:"pageSlug"`
	SortOrder   int    `json:"sortOrder"   yaml:"sortOrder"`
}

// Event is an occasion the fleet is commonly booked for.
type Event struct {
	ID          string    `json:"id"                yaml:"id"`
	Slug        string    `json:"slug"              yaml:"slug"`
	Title       string    `json:"title"             yaml:"title"`
	Description string    `json:"description"       yaml:"description"`
	Tags        []string  `json:"tags"              yaml:"tags"`
	Featured    bool      `json:"featured"          yaml:"featured"`
	Date        time.Time `json:"date,omitzero"     yaml:"date"`
	ImageURL    string    `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

// ToolCard is a marketing card linking to a planning tool.
type ToolCard struct {
	ID          string   `json:"id"                 yaml:"id"`
	Slug        string   `json:"slug"               yaml:"slug"`
	Title       string   `json:"title"              yaml:"title"`
	Description string   `json:"description"        yaml:"description"`
	Category    string   `json:"category"           yaml:"category"`
	IconName    string   `json:"iconName"           yaml:"iconName"`
	CTAText     string   `json:"ctaText"            yaml:"ctaText"`
	CTALink     string   `json:"ctaLink"            yaml:"ctaLink"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords"`
}
