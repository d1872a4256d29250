package models

import "time"

// AirDateFormat is the wire format for air dates in responses.
const AirDateFormat = "02.01.2006"

// Anime represents a catalog entry. An empty owner means the anime is
// global/shared: anyone may track it, nobody may mutate it.
type Anime struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	AirDate       time.Time `db:"air_date" json:"airDate"`
	NumOfEpisodes int       `db:"num_of_episodes" json:"numOfEpisodes"`
	Owner         string    `db:"owner" json:"owner,omitempty"`
}

// CreateAnimeRequest defines the structure for an anime creation request.
type CreateAnimeRequest struct {
	Name          string `json:"name" binding:"required"`
	AirDate       string `json:"airDate" binding:"required,airdate"`
	NumOfEpisodes int    `json:"numOfEpisodes" binding:"omitempty,min=0"`
}

// UpdateAnimeRequest carries the mutable anime fields. At least one must
// be present; the controller enforces that.
type UpdateAnimeRequest struct {
	AirDate       *string `json:"airDate" binding:"omitempty,airdate"`
	NumOfEpisodes *int    `json:"numOfEpisodes" binding:"omitempty,min=0"`
}
