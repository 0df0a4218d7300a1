package domain

// Playlist is Spotify playlist metadata used by the playlist starter.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url"`
}

// PlaylistLookup is the per-id outcome of a batch lookup.
type PlaylistLookup struct {
	Playlist

	Fetched bool `json:"fetched"`
	// Status is the upstream HTTP status, 0 when the request never completed.
	Status int `json:"status"`
	// Reason explains a failed fetch: not_found_or_private, forbidden, http_<N> or exception.
	Reason string `json:"reason,omitempty"`
}
