package models

// CatalogFields are the fields an enrichment lookup can provide.
type CatalogFields struct {
	Period        *string  `json:"period"`
	CriticsRating *float64 `json:"critics_rating"`
	Genres        *string  `json:"genres"`
	Director      *string  `json:"director"`
	Stars         *string  `json:"stars"`
	Studio        *string  `json:"studio"`
	Runtime       *int     `json:"runtime"`
}

// MediaEntry is a movie or show record as resolved from a write request.
type MediaEntry struct {
	ID                 uint     `json:"id,omitempty"`
	Title              string   `json:"title"`
	Status             Status   `json:"status"`
	SubStatus          *string  `json:"sub_status,omitempty"`
	Favorite           *bool    `json:"favorite,omitempty"`
	MyRating           *float64 `json:"my_rating"`
	FirstWatchDate     *string  `json:"first_watch_date,omitempty"`
	LastWatchDate      *string  `json:"last_watch_date"`
	WatchedWith        *string  `json:"watched_with"`
	Comments           *string  `json:"comments"`
	LastWatchedSeason  *int     `json:"last_watched_season,omitempty"`
	LastWatchedEpisode *int     `json:"last_watched_episode,omitempty"`
	CatalogFields
}

// TitleRow is the projection returned by the query endpoint.
type TitleRow struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Period *string `json:"period"`
}

// Display renders the row the way listings show it.
func (r TitleRow) Display() string {
	return DisplayTitle(r.Title, r.Period)
}

// QueryFilter carries validated read parameters.
type QueryFilter struct {
	Genre     string
	Status    Status
	MaxLength *int
	SortKey   string
	Order     string
	Limit     int
}

// NaturalKey identifies the rows an upsert or delete targets. The period only
// narrows the match when MatchPeriod is set.
type NaturalKey struct {
	Title       string
	Period      *string
	MatchPeriod bool
}

// DeleteResult reports how many rows a delete removed.
type DeleteResult struct {
	Title   string `json:"title"`
	Year    string `json:"year,omitempty"`
	Deleted int64  `json:"deleted"`
}
