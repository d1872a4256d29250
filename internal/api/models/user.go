package models

// User represents a user in the database. The password hash never leaves
// the server.
type User struct {
	ID           string `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// WatchEntry is a single tracked anime in a user's watch-list.
type WatchEntry struct {
	UserID    string `db:"user_id" json:"-"`
	AnimeName string `db:"anime_name" json:"-"`
	Progress  int    `db:"progress" json:"progress"`
}

// WatchList maps anime names to the caller's tracked progress, optionally
// enriched with catalog and schedule fields.
type WatchList map[string]EnrichedEntry

// EnrichedEntry is a watch-list entry joined with catalog data. The
// pointer fields stay nil (and unserialized) when the anime is no longer
// in the catalog.
type EnrichedEntry struct {
	Progress       int     `json:"progress"`
	AirDate        *string `json:"airDate,omitempty"`
	NumOfEpisodes  *int    `json:"numOfEpisodes,omitempty"`
	NextEpisode    *string `json:"nextEpisode,omitempty"`
	LastEpisode    *string `json:"lastEpisode,omitempty"`
	EpisodesBehind *int    `json:"episodesBehind,omitempty"`
}

// RegisterRequest defines the structure for a user registration request.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest defines the structure for a user login request. No
// binding constraints: missing fields must fail the same way wrong
// credentials do, without hinting which part was absent.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the structure for a successful login response.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UpdateProgressRequest carries the new progress for a watch-list entry.
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,min=0"`
}
