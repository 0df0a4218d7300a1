package playlists

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockplaylists -source=interface.go -destination=mock/mockplaylists.go *
type Playlists interface {
	Search(ctx context.Context, query string) ([]domain.Playlist, error)
	Lookup(ctx context.Context, ids []string) (map[string]domain.PlaylistLookup, error)
}
