package catalog

import (
	"bus2ride/pkg/domain"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const (
	// DefaultEventLimit is used when an event filter has no limit.
	DefaultEventLimit = 12
	// MaxEventLimit caps event pages.
	MaxEventLimit = 100
)

// Matches reports whether any field contains query, comparing case-folded
// text. An empty or blank query matches everything.
func Matches(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	// Casers keep state and must not be shared between goroutines.
	folder := cases.Fold()
	q := folder.String(query)
	for _, f := range fields {
		if strings.Contains(folder.String(f), q) {
			return true
		}
	}

	return false
}

func withKeywords(keywords []string, fields ...string) []string {
	return append(fields, keywords...)
}

// Vehicles filters the fleet by name, description and keywords. An empty
// category keeps every category.
func (c *Catalog) Vehicles(query string, category domain.VehicleCategory) []domain.Vehicle {
	res := make([]domain.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if category != "" && v.Category != category {
			continue
		}
		if !Matches(query, withKeywords(v.Keywords, v.Name, v.Description)...) {
			continue
		}
		res = append(res, v)
	}

	return res
}

// FAQs filters by question, answer and keywords, optionally limited to a page.
func (c *Catalog) FAQs(query, page string) []domain.FAQ {
	res := make([]domain.FAQ, 0, len(c.faqs))
	for _, f := range c.faqs {
		if page != "" && f.PageSlug != page {
			continue
		}
		if !Matches(query, withKeywords(f.Keywords, f.Question, f.Answer)...) {
			continue
		}
		res = append(res, f)
	}

	return res
}

// Secrets filters by title, body and keywords.
func (c *Catalog) Secrets(query string) []domain.Secret {
	res := make([]domain.Secret, 0, len(c.secrets))
	for _, s := range c.secrets {
		if Matches(query, withKeywords(s.Keywords, s.Title, s.Body)...) {
			res = append(res, s)
		}
	}

	return res
}

// Tools filters tool cards by title, description and keywords.
func (c *Catalog) Tools(query string) []domain.ToolCard {
	res := make([]domain.ToolCard, 0, len(c.tools))
	for _, t := range c.tools {
		if Matches(query, withKeywords(t.Keywords, t.Title, t.Description)...) {
			res = append(res, t)
		}
	}

	return res
}

// Facts returns facts for a page (all pages when empty), at most limit of
// them when limit is positive.
func (c *Catalog) Facts(page string, limit int) []domain.Fact {
	res := make([]domain.Fact, 0, len(c.facts))
	for _, f := range c.facts {
		if page != "" && f.PageSlug != page {
			continue
		}
		res = append(res, f)
		if limit > 0 && len(res) == limit {
			break
		}
	}

	return res
}

// EventFilter selects a page of events.
type EventFilter struct {
	// Limit defaults to DefaultEventLimit and is capped at MaxEventLimit.
	Limit  int
	Offset int
	// Featured keeps only featured events when set.
	Featured bool
	// Tag keeps events carrying the tag.
	Tag string
}

// Events returns the requested page and the number of events matching the
// filter before paging.
func (c *Catalog) Events(filter EventFilter) ([]domain.Event, int) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	limit = min(limit, MaxEventLimit)
	offset := max(filter.Offset, 0)

	matched := make([]domain.Event, 0, len(c.events))
	for _, e := range c.events {
		if filter.Featured && !e.Featured {
			continue
		}
		if filter.Tag != "" && !slices.Contains(e.Tags, filter.Tag) {
			continue
		}
		matched = append(matched, e)
	}

	total := len(matched)
	if offset >= total {
		return []domain.Event{}, total
	}

	return matched[offset:min(offset+limit, total)], total
}
