package web

import (
	"bus2ride/pkg/domain"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// html is a small writer that remembers the first error so components can
// emit markup without checking every write.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) rawf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)

		return h.err
	})
}

// title turns slugs like "party-bus" into "Party Bus".
func title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

// Layout wraps body in the shared page shell.
func Layout(pageTitle string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(pageTitle)
		h.raw(` | Bus2Ride</title></head><body><main>`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

// PollCard renders one poll with a bar per option.
func PollCard(result domain.PollResult) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<section class="poll" id="poll-%s"><h3>`, templ.EscapeString(string(result.Poll.ID)))
		h.text(result.Poll.Question)
		h.raw(`</h3><ul class="options">`)
		for _, opt := range result.Options {
			h.raw(`<li><span class="option">`)
			h.text(opt.Option)
			h.rawf(`</span><span class="bar" style="width:%d%%"></span>`, opt.Percent)
			h.rawf(`<span class="percent">%d%%</span> <span class="votes">(%s)</span></li>`,
				opt.Percent, votes(opt.Votes))
		}
		h.rawf(`</ul><p class="total">%s</p></section>`, votes(result.TotalVotes))
	})
}

func votes(n int64) string {
	if n == 1 {
		return "1 vote"
	}

	return strconv.FormatInt(n, 10) + " votes"
}

// ResultsPage lists poll results under one heading per category.
func ResultsPage(results []domain.PollResult) templ.Component {
	return Layout("Poll Results", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>Poll Results</h1>`)
		if len(results) == 0 {
			h.raw(`<p class="empty">No polls yet.</p>`)

			return
		}

		current := ""
		for i, result := range results {
			if i == 0 || result.Poll.Category != current {
				if i > 0 {
					h.raw(`</div>`)
				}
				current = result.Poll.Category
				h.rawf(`<h2 id="%s">`, templ.EscapeString(current))
				h.text(title(current))
				h.raw(`</h2><div class="polls">`)
			}
			h.render(ctx, PollCard(result))
		}
		h.raw(`</div>`)
	}))
}

// EmbedPage is a chrome-less poll card meant for iframes.
func EmbedPage(result domain.PollResult) templ.Component {
	return Layout(result.Poll.Question, PollCard(result))
}

// FleetPage renders the vehicle listing with its search form.
func FleetPage(vehicles []domain.Vehicle, query string, category domain.VehicleCategory) templ.Component {
	return Layout("Our Fleet", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>Our Fleet</h1><form method="get" action="/fleet">`)
		h.raw(`<input type="search" name="q" placeholder="Search vehicles" value="`)
		h.text(query)
		h.raw(`"><select name="category"><option value="">All</option>`)
		for _, c := range []domain.VehicleCategory{
			domain.VehicleCategoryPartyBus, domain.VehicleCategoryLimousine, domain.VehicleCategoryCoachBus,
		} {
			selected := ""
			if c == category {
				selected = " selected"
			}
			h.rawf(`<option value="%s"%s>`, templ.EscapeString(string(c)), selected)
			h.text(title(string(c)))
			h.raw(`</option>`)
		}
		h.raw(`</select><button type="submit">Search</button></form>`)

		if len(vehicles) == 0 {
			h.raw(`<p class="empty">No vehicles match your search.</p>`)

			return
		}

		h.raw(`<div class="fleet">`)
		for _, v := range vehicles {
			h.render(ctx, VehicleCard(v))
		}
		h.raw(`</div>`)
	}))
}

// VehicleCard renders a single fleet listing.
func VehicleCard(v domain.Vehicle) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<article class="vehicle" id="%s">`, templ.EscapeString(v.Slug))
		if len(v.Images) > 0 {
			h.rawf(`<img src="%s" alt="`, templ.EscapeString(string(templ.URL(v.Images[0]))))
			h.text(v.Name)
			h.raw(`">`)
		}
		h.raw(`<h2>`)
		h.text(v.Name)
		h.rawf(`</h2><p class="capacity">%d-%d passengers</p>`, v.CapacityMin, v.CapacityMax)
		if v.HourlyRate > 0 {
			h.rawf(`<p class="rate">From $%d/hr, %d hour minimum</p>`, v.HourlyRate, v.MinHours)
		}
		h.raw(`<p>`)
		h.text(v.Description)
		h.raw(`</p>`)
		if len(v.Highlights) > 0 {
			h.raw(`<ul class="highlights">`)
			for _, hl := range v.Highlights {
				h.raw(`<li>`)
				h.text(hl)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</article>`)
	})
}

// ErrorPage is shown when a page cannot be rendered.
func ErrorPage(message string) templ.Component {
	return Layout("Error", component(func(_ context.Context, h *html) {
		h.raw(`<h1>Something went wrong</h1><p class="error">`)
		h.text(message)
		h.raw(`</p>`)
	}))
}
