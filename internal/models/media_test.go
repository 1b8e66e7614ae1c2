package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSets(t *testing.T) {
	for _, s := range []Status{StatusWatched, StatusDropped, StatusPlanToWatch, StatusInProgress} {
		assert.True(t, s.Queryable(), s)
		assert.True(t, s.Valid(), s)
	}
	for _, s := range []Status{StatusCaughtUp, StatusCasualWatch} {
		assert.False(t, s.Queryable(), s)
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("watched").Valid())
	assert.False(t, Status("").Valid())
}

func TestLookupMediaKind(t *testing.T) {
	movie, ok := LookupMediaKind("movie")
	require.True(t, ok)
	assert.Equal(t, "movies", movie.Table)
	assert.Equal(t, "release_date", movie.PeriodColumn)

	show, ok := LookupMediaKind("show")
	require.True(t, ok)
	assert.Equal(t, "shows", show.Table)
	assert.Equal(t, "series", show.LookupType)

	_, ok = LookupMediaKind("book")
	assert.False(t, ok)
	_, ok = LookupMediaKind("Movie")
	assert.False(t, ok)
}

func TestSortColumn(t *testing.T) {
	movie, _ := LookupMediaKind("movie")
	show, _ := LookupMediaKind("show")

	tests := []struct {
		kind MediaKind
		key  string
		want string
		ok   bool
	}{
		{movie, "length", "runtime", true},
		{movie, "ReleaseDate", "release_date", true},
		{show, "releasedate", "airing_dates", true},
		{movie, "watchdate", "watch_date", true},
		{show, "watchdate", "last_watch_date", true},
		{show, "criticsrating", "critics_rating", true},
		{movie, "myrating", "my_rating", true},
		{movie, "random", "", true},
		{movie, "title; DROP TABLE movies", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.kind.SortColumn(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestUpsertColumns(t *testing.T) {
	title := "Breaking Bad"
	period := "2008–2013"
	first := "2019-06-01"
	last := "2019-08-20"
	season := 5
	entry := &MediaEntry{
		Title:             title,
		Status:            StatusWatched,
		FirstWatchDate:    &first,
		LastWatchDate:     &last,
		LastWatchedSeason: &season,
		CatalogFields:     CatalogFields{Period: &period},
	}

	show, _ := LookupMediaKind("show")
	cols := show.UpsertColumns(entry)
	assert.Equal(t, title, cols["title"])
	assert.Equal(t, "Watched", cols["status"])
	assert.Equal(t, period, cols["airing_dates"])
	assert.Equal(t, first, cols["first_watch_date"])
	assert.Equal(t, last, cols["last_watch_date"])
	assert.Equal(t, 5, cols["last_watched_season"])
	assert.NotContains(t, cols, "last_watched_episode")
	assert.NotContains(t, cols, "favorite")
	assert.Contains(t, cols, "genres")
	assert.Nil(t, cols["genres"])

	movie, _ := LookupMediaKind("movie")
	cols = movie.UpsertColumns(entry)
	assert.Equal(t, last, cols["watch_date"])
	assert.Equal(t, period, cols["release_date"])
	assert.NotContains(t, cols, "first_watch_date")
	assert.NotContains(t, cols, "last_watched_season")
}

func TestDisplayTitle(t *testing.T) {
	year := "1999"
	empty := ""
	assert.Equal(t, "Fight Club (1999)", DisplayTitle("Fight Club", &year))
	assert.Equal(t, "Fight Club", DisplayTitle("Fight Club", nil))
	assert.Equal(t, "Fight Club", DisplayTitle("Fight Club", &empty))
}
