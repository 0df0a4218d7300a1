package catalog_test

import (
	"bus2ride"
	"bus2ride/internal/catalog"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func loadContent(t *testing.T) *catalog.Catalog {
	t.Helper()

	sub, err := fs.Sub(bus2ride.Content, "content")
	require.NoError(t, err)
	c, err := catalog.Load(sub)
	require.NoError(t, err)

	return c
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		"vehicles.yaml": {Data: []byte(`
- {id: v1, slug: small-bus, name: Small Bus, category: party-bus, capacityMin: 10, capacityMax: 20, description: Cozy, keywords: [birthday]}
- {id: v2, slug: big-coach, name: Big Coach, category: coach-bus, capacityMin: 40, capacityMax: 56, description: Roomy}
`)},
		"faqs.yaml":    {Data: []byte(`[{id: f1, question: "Q?", answer: A, pageSlug: home, sortOrder: 2}, {id: f2, question: "Deposit?", answer: "Yes", pageSlug: pricing, sortOrder: 1}]`)},
		"secrets.yaml": {Data: []byte(`[]`)},
		"facts.yaml":   {Data: []byte(`[{id: a, stat: "1", label: One, pageSlug: home, sortOrder: 2}, {id: b, stat: "2", label: Two, pageSlug: home, sortOrder: 1}]`)},
		"events.yaml":  {Data: []byte(`[]`)},
		"tools.yaml":   {Data: []byte(`[]`)},
		"polls.yaml":   {Data: []byte(`[{id: p1, question: Pick one, options: [A, B], category: general}]`)},
		"reviews.yaml": {Data: []byte(`[{author: Ann, body: Great, rating: 5}]`)},
	}
}

func TestLoad_Content(t *testing.T) {
	c := loadContent(t)

	require.NotEmpty(t, c.Vehicles("", ""))
	require.NotEmpty(t, c.FAQs("", ""))
	require.NotEmpty(t, c.Secrets(""))
	require.NotEmpty(t, c.Tools(""))
	require.NotEmpty(t, c.Facts("", 0))
	require.NotEmpty(t, c.SeedReviews())

	p, ok := c.Poll("partybus_vs_limo")
	require.True(t, ok)
	require.Equal(t, []string{"Party Bus", "Limo"}, p.Options)
	require.Equal(t, domain.PollID("partybus_vs_limo"), c.Polls()[0].ID)
}

func TestLoad_Minimal(t *testing.T) {
	c, err := catalog.Load(minimalFS())
	require.NoError(t, err)

	faqs := c.FAQs("", "")
	require.Equal(t, "f2", faqs[0].ID)
	facts := c.Facts("home", 1)
	require.Len(t, facts, 1)
	require.Equal(t, "b", facts[0].ID)

	_, ok := c.Poll("nope")
	require.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		wantErr string
	}{
		{
			name:    "duplicate vehicle id",
			file:    "vehicles.yaml",
			data:    `[{id: v1, slug: a, name: A, category: party-bus}, {id: v1, slug: b, name: B, category: party-bus}]`,
			wantErr: `duplicate vehicle id "v1"`,
		},
		{
			name:    "duplicate faq id",
			file:    "faqs.yaml",
			data:    `[{id: f1, question: A}, {id: f1, question: B}]`,
			wantErr: `duplicate faq id "f1"`,
		},
		{
			name:    "unknown category",
			file:    "vehicles.yaml",
			data:    `[{id: v1, slug: a, name: A, category: boat}]`,
			wantErr: `unknown category "boat"`,
		},
		{
			name:    "poll with one option",
			file:    "polls.yaml",
			data:    `[{id: p1, question: Q, options: [A]}]`,
			wantErr: "needs at least two options",
		},
		{
			name:    "duplicate poll option",
			file:    "polls.yaml",
			data:    `[{id: p1, question: Q, options: [A, A]}]`,
			wantErr: `duplicate poll p1 option id "A"`,
		},
		{
			name:    "review rating out of range",
			file:    "reviews.yaml",
			data:    `[{author: Ann, body: Meh, rating: 9}]`,
			wantErr: "rating 9 is out of range",
		},
		{
			name:    "malformed yaml",
			file:    "tools.yaml",
			data:    `{not: [a list`,
			wantErr: "could not parse tools.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := minimalFS()
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.data)}

			_, err := catalog.Load(fsys)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		fsys := minimalFS()
		delete(fsys, "events.yaml")

		_, err := catalog.Load(fsys)
		require.ErrorContains(t, err, "could not read events.yaml")
	})
}

func TestMatches(t *testing.T) {
	require.True(t, catalog.Matches("", "anything"))
	require.True(t, catalog.Matches("   ", "anything"))
	require.True(t, catalog.Matches("PARTY", "30 passenger party bus"))
	require.True(t, catalog.Matches("ÉVÉNEMENT", "un événement privé"))
	require.False(t, catalog.Matches("limo", "coach", "shuttle"))
	require.False(t, catalog.Matches("limo"))
}

func TestCatalog_Vehicles(t *testing.T) {
	c, err := catalog.Load(minimalFS())
	require.NoError(t, err)

	require.Len(t, c.Vehicles("", ""), 2)
	require.Len(t, c.Vehicles("", domain.VehicleCategoryCoachBus), 1)
	require.Len(t, c.Vehicles("BIRTHDAY", ""), 1)
	require.Len(t, c.Vehicles("roomy", domain.VehicleCategoryPartyBus), 0)

	v, err := c.VehicleBySlug("big-coach")
	require.NoError(t, err)
	require.Equal(t, "v2", v.ID)

	_, err = c.VehicleBySlug("missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_FAQs(t *testing.T) {
	c := loadContent(t)

	for _, f := range c.FAQs("deposit", "") {
		require.True(t, catalog.Matches("deposit", append(f.Keywords, f.Question, f.Answer)...))
	}
	for _, f := range c.FAQs("", "pricing") {
		require.Equal(t, "pricing", f.PageSlug)
	}
	require.Empty(t, c.FAQs("zzzz-no-match", ""))
}

func TestCatalog_Events(t *testing.T) {
	c := loadContent(t)

	all, total := c.Events(catalog.EventFilter{Limit: catalog.MaxEventLimit})
	require.Len(t, all, total)

	page, total2 := c.Events(catalog.EventFilter{Limit: 2, Offset: 1})
	require.Equal(t, total, total2)
	require.Len(t, page, 2)
	require.Equal(t, all[1].ID, page[0].ID)

	featured, _ := c.Events(catalog.EventFilter{Featured: true})
	require.NotEmpty(t, featured)
	for _, e := range featured {
		require.True(t, e.Featured)
	}

	tagged, _ := c.Events(catalog.EventFilter{Tag: "prom"})
	require.NotEmpty(t, tagged)
	for _, e := range tagged {
		require.Contains(t, e.Tags, "prom")
	}

	beyond, n := c.Events(catalog.EventFilter{Offset: 1000})
	require.Empty(t, beyond)
	require.Equal(t, total, n)

	capped, _ := c.Events(catalog.EventFilter{Limit: 1000})
	require.LessOrEqual(t, len(capped), catalog.MaxEventLimit)
}
