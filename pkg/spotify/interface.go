// Package spotify defines the read-only Spotify Web API surface used by the
// party playlist starter.
package spotify

import (
	"bus2ride/pkg/domain"
	"context"
)

// Client reads public playlist metadata.
//
//go:generate mockgen -package mockspotify -source=interface.go -destination=mock/mockspotify.go *
type Client interface {
	// Authorize makes sure an access token is available, fetching one when
	// the cached token is missing or expired. Failures are ErrUnauthorized.
	Authorize(ctx context.Context) error
	// SearchPlaylists returns up to limit playlists matching query.
	SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.Playlist, error)
	// Playlist fetches one playlist by id. Non-2xx responses carry an
	// *upstream.StatusError with the Spotify status code.
	Playlist(ctx context.Context, id string) (*domain.Playlist, error)
}
