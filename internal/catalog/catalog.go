// Package catalog serves the authored site content: the fleet, FAQs, industry
// secrets, facts, events, tool cards, the poll registry and seed reviews.
// Content is loaded once from YAML files and never changes at runtime, so a
// Catalog is safe for concurrent use without locking.
package catalog

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog holds the loaded content.
type Catalog struct {
	vehicles []domain.Vehicle
	faqs     []domain.FAQ
	secrets  []domain.Secret
	facts    []domain.Fact
	events   []domain.Event
	tools    []domain.ToolCard
	polls    []domain.Poll
	reviews  []domain.Review

	pollIndex map[domain.PollID]int
}

// Load reads every content file from fsys. Ids must be unique within a file.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}

	if err := decode(fsys, "vehicles.yaml", &c.vehicles); err != nil {
		return nil, err
	}
	if err := decode(fsys, "faqs.yaml", &c.faqs); err != nil {
		return nil, err
	}
	if err := decode(fsys, "secrets.yaml", &c.secrets); err != nil {
		return nil, err
	}
	if err := decode(fsys, "facts.yaml", &c.facts); err != nil {
		return nil, err
	}
	if err := decode(fsys, "events.yaml", &c.events); err != nil {
		return nil, err
	}
	if err := decode(fsys, "tools.yaml", &c.tools); err != nil {
		return nil, err
	}
	if err := decode(fsys, "polls.yaml", &c.polls); err != nil {
		return nil, err
	}
	if err := decode(fsys, "reviews.yaml", &c.reviews); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(c.faqs, func(a, b domain.FAQ) int { return cmp.Compare(a.SortOrder, b.SortOrder) })
	slices.SortStableFunc(c.facts, func(a, b domain.Fact) int { return cmp.Compare(a.SortOrder, b.SortOrder) })

	c.pollIndex = make(map[domain.PollID]int, len(c.polls))
	for i, p := range c.polls {
		c.pollIndex[p.ID] = i
	}

	return c, nil
}

func decode(fsys fs.FS, name string, out any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not parse %s: %w", name, err)
	}

	return nil
}

func (c *Catalog) validate() error {
	errs := []error{
		unique("vehicle", c.vehicles, func(v domain.Vehicle) string { return v.ID }),
		unique("vehicle slug", c.vehicles, func(v domain.Vehicle) string { return v.Slug }),
		unique("faq", c.faqs, func(f domain.FAQ) string { return f.ID }),
		unique("secret", c.secrets, func(s domain.Secret) string { return s.ID }),
		unique("fact", c.facts, func(f domain.Fact) string { return f.ID }),
		unique("event", c.events, func(e domain.Event) string { return e.ID }),
		unique("tool", c.tools, func(t domain.ToolCard) string { return t.ID }),
		unique("poll", c.polls, func(p domain.Poll) string { return string(p.ID) }),
	}

	for _, v := range c.vehicles {
		if !v.Category.Valid() {
			errs = append(errs, fmt.Errorf("vehicle %q has unknown category %q", v.ID, v.Category))
		}
		if v.CapacityMin > v.CapacityMax {
			errs = append(errs, fmt.Errorf("vehicle %q capacity range is inverted", v.ID))
		}
	}
	for _, p := range c.polls {
		if len(p.Options) < 2 {
			errs = append(errs, fmt.Errorf("poll %q needs at least two options", p.ID))
		}
		if err := unique("poll "+string(p.ID)+" option", p.Options, func(o string) string { return o }); err != nil {
			errs = append(errs, err)
		}
	}
	for i, r := range c.reviews {
		if r.Rating < 1 || r.Rating > 5 {
			errs = append(errs, fmt.Errorf("review %d rating %d is out of range", i, r.Rating))
		}
	}

	return errors.Join(errs...)
}

func unique[T any](kind string, items []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			return fmt.Errorf("%s with empty id", kind)
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("duplicate %s id %q", kind, k)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// VehicleBySlug returns a NOT_FOUND error for unknown slugs.
func (c *Catalog) VehicleBySlug(slug string) (domain.Vehicle, error) {
	for _, v := range c.vehicles {
		if v.Slug == slug {
			return v, nil
		}
	}

	return domain.Vehicle{}, serrors.With(serrors.ErrNotFound, "vehicle not found")
}

// Polls returns the poll registry in authored order.
func (c *Catalog) Polls() []domain.Poll {
	return slices.Clone(c.polls)
}

// Poll looks a poll up by id.
func (c *Catalog) Poll(id domain.PollID) (domain.Poll, bool) {
	i, ok := c.pollIndex[id]
	if !ok {
		return domain.Poll{}, false
	}

	return c.polls[i], true
}

// SeedReviews returns the authored reviews used to seed an empty database.
func (c *Catalog) SeedReviews() []domain.Review {
	return slices.Clone(c.reviews)
}
