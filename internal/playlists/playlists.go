// Package playlists backs the party playlist starter: searching Spotify for
// public playlists and resolving the ids visitors saved.
package playlists

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/spotify"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// SearchLimit is how many playlists a search returns.
	SearchLimit = 8
	// MinQueryLength is the shortest search query accepted.
	MinQueryLength = 2
	// MaxLookupIDs bounds one lookup.
	MaxLookupIDs = 50
)

const (
	ReasonNotFound  = "not_found_or_private"
	ReasonForbidden = "forbidden"
	ReasonException = "exception"
)

var (
	validID = regexp.MustCompile(`^[A-Za-z0-9]{5,}$`) //nolint: gochecknoglobals
	htmlTag = regexp.MustCompile(`<[^>]+>`)           //nolint: gochecknoglobals
)

type playlists struct {
	client spotify.Client
}

// StripHTML removes tags Spotify leaves in playlist descriptions.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
}

// WebURL is the public player link for a playlist id.
func WebURL(id string) string {
	return "https://open.spotify.com/playlist/" + id
}

func clean(p domain.Playlist) domain.Playlist {
	p.Description = StripHTML(p.Description)
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "(untitled)"
	}
	if p.URL == "" && p.ID != "" {
		p.URL = WebURL(p.ID)
	}

	return p
}

func (p *playlists) authorize(ctx context.Context) error {
	if err := p.client.Authorize(ctx); err != nil {
		logger.Error(ctx, "spotify auth error", zap.Error(err))

		return serrors.Wrap(serrors.ErrUnavailable, err, "spotify_auth_failed")
	}

	return nil
}

// Search finds public playlists matching query.
func (p *playlists) Search(ctx context.Context, query string) ([]domain.Playlist, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, serrors.With(serrors.ErrBadRequest, "query_too_short")
	}
	if err := p.authorize(ctx); err != nil {
		return nil, err
	}

	found, err := p.client.SearchPlaylists(ctx, query, SearchLimit)
	if err != nil {
		logger.Warn(ctx, "spotify search failed", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrUpstream, err, "search_failed")
	}

	out := make([]domain.Playlist, 0, len(found))
	for _, pl := range found {
		out = append(out, clean(pl))
	}

	return out, nil
}

// ValidIDs dedupes ids keeping the first occurrence and drops anything that
// does not look like a Spotify id.
func ValidIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if !validID.MatchString(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// reason explains a failed fetch from its upstream status.
func reason(status int) string {
	switch status {
	case http.StatusNotFound:
		return ReasonNotFound
	case http.StatusForbidden:
		return ReasonForbidden
	case 0:
		return ReasonException
	default:
		return "http_" + strconv.Itoa(status)
	}
}

// Lookup fetches playlist metadata one id at a time to stay within Spotify's
// rate limits. Ids that fail still get an entry with the reason.
func (p *playlists) Lookup(ctx context.Context, ids []string) (map[string]domain.PlaylistLookup, error) {
	if len(ids) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "ids array required")
	}
	valid := ValidIDs(ids)
	if len(valid) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no valid ids")
	}
	if len(valid) > MaxLookupIDs {
		return nil, serrors.With(serrors.ErrBadRequest, "at most %d ids are allowed", MaxLookupIDs)
	}
	if err := p.authorize(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]domain.PlaylistLookup, len(valid))
	for _, id := range valid {
		pl, err := p.client.Playlist(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, serrors.Wrap(serrors.ErrTimeout, err, "playlist lookup interrupted")
			}
			status := upstream.StatusCode(err)
			logger.Warn(ctx, "spotify playlist fetch failed", zap.String("id", id), zap.Int("status", status), zap.Error(err))

			r := reason(status)
			if status == 0 {
				status = http.StatusInternalServerError
			}
			out[id] = domain.PlaylistLookup{
				Playlist: domain.Playlist{ID: id, Name: id, URL: WebURL(id)},
				Status:   status,
				Reason:   r,
			}

			continue
		}

		cleaned := clean(*pl)
		if cleaned.ID == "" {
			cleaned.ID = id
			cleaned.URL = WebURL(id)
		}
		out[id] = domain.PlaylistLookup{Playlist: cleaned, Fetched: true, Status: http.StatusOK}
	}

	return out, nil
}

// New returns a Playlists service over the given Spotify client.
func New(client spotify.Client) Playlists {
	return &playlists{client: client}
}
