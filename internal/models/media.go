package models

import "strings"

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "show"
)

type Status string

const (
	StatusWatched     Status = "Watched"
	StatusDropped     Status = "Dropped"
	StatusPlanToWatch Status = "Plan to Watch"
	StatusInProgress  Status = "In Progress"
	StatusCaughtUp    Status = "Caught Up"
	StatusCasualWatch Status = "Casual Watch"
)

// Queryable reports whether s may be used as a read filter.
func (s Status) Queryable() bool {
	switch s {
	case StatusWatched, StatusDropped, StatusPlanToWatch, StatusInProgress:
		return true
	}
	return false
}

// Valid reports whether s may be stored on a record.
func (s Status) Valid() bool {
	return s.Queryable() || s == StatusCaughtUp || s == StatusCasualWatch
}

// Sort keys accepted by the query endpoint.
const (
	SortLength        = "length"
	SortRandom        = "random"
	SortReleaseDate   = "releasedate"
	SortCriticsRating = "criticsrating"
	SortMyRating      = "myrating"
	SortWatchDate     = "watchdate"
)

// MediaKind maps a media type onto its table and column layout. Every piece of
// SQL that differs between movies and shows is derived from here.
type MediaKind struct {
	Type             MediaType
	Table            string
	PeriodColumn     string
	FirstWatchColumn string
	LastWatchColumn  string
	RuntimeColumn    string
	LookupType       string
	Episodic         bool
	ExportColumns    []string
	newModel         func() interface{}
}

var mediaKinds = map[MediaType]MediaKind{
	MediaTypeMovie: {
		Type:            MediaTypeMovie,
		Table:           Movie{}.TableName(),
		PeriodColumn:    "release_date",
		LastWatchColumn: "watch_date",
		RuntimeColumn:   "runtime",
		LookupType:      "movie",
		ExportColumns: []string{
			"id", "title", "release_date", "status", "sub_status", "favorite", "my_rating",
			"critics_rating", "watch_date", "watched_with", "genres", "director", "stars",
			"studio", "comments", "runtime",
		},
		newModel: func() interface{} { return &Movie{} },
	},
	MediaTypeShow: {
		Type:             MediaTypeShow,
		Table:            Show{}.TableName(),
		PeriodColumn:     "airing_dates",
		FirstWatchColumn: "first_watch_date",
		LastWatchColumn:  "last_watch_date",
		RuntimeColumn:    "runtime",
		LookupType:       "series",
		Episodic:         true,
		ExportColumns: []string{
			"id", "title", "airing_dates", "status", "sub_status", "last_watched_season",
			"last_watched_episode", "favorite", "my_rating", "critics_rating", "first_watch_date",
			"last_watch_date", "watched_with", "genres", "director", "stars", "studio", "comments",
			"runtime",
		},
		newModel: func() interface{} { return &Show{} },
	},
}

// LookupMediaKind resolves a path segment such as "movie" or "show".
func LookupMediaKind(name string) (MediaKind, bool) {
	kind, ok := mediaKinds[MediaType(name)]
	return kind, ok
}

// MediaKinds returns every known kind, movies first.
func MediaKinds() []MediaKind {
	return []MediaKind{mediaKinds[MediaTypeMovie], mediaKinds[MediaTypeShow]}
}

// Model returns a fresh gorm model value for the kind's table.
func (k MediaKind) Model() interface{} {
	return k.newModel()
}

// SortColumn resolves a sort key to a column. The random key resolves to an
// empty column and true.
func (k MediaKind) SortColumn(key string) (string, bool) {
	switch strings.ToLower(key) {
	case SortLength:
		return k.RuntimeColumn, true
	case SortRandom:
		return "", true
	case SortReleaseDate:
		return k.PeriodColumn, true
	case SortCriticsRating:
		return "critics_rating", true
	case SortMyRating:
		return "my_rating", true
	case SortWatchDate:
		return k.LastWatchColumn, true
	}
	return "", false
}

// CatalogColumnNames lists the columns a backfill considers. A row missing any
// of them is incomplete. Studio is written but never required.
func (k MediaKind) CatalogColumnNames() []string {
	return []string{k.PeriodColumn, "critics_rating", "genres", "director", "stars", k.RuntimeColumn}
}

// CatalogColumns maps catalog fields to column values, including the period.
func (k MediaKind) CatalogColumns(c CatalogFields) map[string]interface{} {
	return map[string]interface{}{
		k.PeriodColumn:   nullable(c.Period),
		"critics_rating": nullable(c.CriticsRating),
		"genres":         nullable(c.Genres),
		"director":       nullable(c.Director),
		"stars":          nullable(c.Stars),
		"studio":         nullable(c.Studio),
		k.RuntimeColumn:  nullable(c.Runtime),
	}
}

// UpsertColumns maps an entry to the columns written by insert and replace.
// Optional extras are only present when the entry carries them.
func (k MediaKind) UpsertColumns(e *MediaEntry) map[string]interface{} {
	cols := k.CatalogColumns(e.CatalogFields)
	cols["title"] = e.Title
	cols["status"] = string(e.Status)
	cols["my_rating"] = nullable(e.MyRating)
	cols["watched_with"] = nullable(e.WatchedWith)
	cols["comments"] = nullable(e.Comments)
	cols[k.LastWatchColumn] = nullable(e.LastWatchDate)
	if k.FirstWatchColumn != "" {
		cols[k.FirstWatchColumn] = nullable(e.FirstWatchDate)
	}

	if e.SubStatus != nil {
		cols["sub_status"] = *e.SubStatus
	}
	if e.Favorite != nil {
		cols["favorite"] = *e.Favorite
	}
	if k.Episodic {
		if e.LastWatchedSeason != nil {
			cols["last_watched_season"] = *e.LastWatchedSeason
		}
		if e.LastWatchedEpisode != nil {
			cols["last_watched_episode"] = *e.LastWatchedEpisode
		}
	}
	return cols
}

// DisplayTitle renders "Title (Period)", or just the title when the period is unknown.
func DisplayTitle(title string, period *string) string {
	if period == nil || *period == "" {
		return title
	}
	return title + " (" + *period + ")"
}

func nullable[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
