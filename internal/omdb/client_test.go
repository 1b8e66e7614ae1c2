package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchlog/internal/omdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fightClubJSON = `{
	"Title":"Fight Club","Year":"1999","Runtime":"139 min","Genre":"Drama, Thriller",
	"Director":"David Fincher","Actors":"Brad Pitt, Edward Norton, Meat Loaf",
	"Ratings":[{"Source":"Rotten Tomatoes","Value":"79%"},{"Source":"Internet Movie Database","Value":"8.8/10"}],
	"Type":"movie","Production":"N/A","Response":"True"
}`

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := omdb.New("", "https://example.com")
	require.Error(t, err)
	_, err = omdb.New("key", " ")
	require.Error(t, err)
}

func TestLookupSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("apikey"))
		assert.Equal(t, "Fight Club", q.Get("t"))
		assert.Equal(t, "movie", q.Get("type"))
		assert.Equal(t, "1999", q.Get("y"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fightClubJSON))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	require.NoError(t, err)

	title, err := client.Lookup(context.Background(), "Fight Club", omdb.LookupOptions{Year: "1999", Type: "movie"})
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", title.Title)

	catalog := title.Catalog()
	require.NotNil(t, catalog.Period)
	assert.Equal(t, "1999", *catalog.Period)
	require.NotNil(t, catalog.CriticsRating)
	assert.InDelta(t, 8.8, *catalog.CriticsRating, 0.0001)
	require.NotNil(t, catalog.Runtime)
	assert.Equal(t, 139, *catalog.Runtime)
	assert.Equal(t, "Drama,Thriller", *catalog.Genres)
	assert.Equal(t, "David Fincher", *catalog.Director)
	assert.Equal(t, "N/A", *catalog.Studio)
}

func TestLookupOmitsEmptyOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("y"))
		assert.False(t, q.Has("type"))
		_, _ = w.Write([]byte(fightClubJSON))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	require.NoError(t, err)
	_, err = client.Lookup(context.Background(), "Fight Club", omdb.LookupOptions{})
	require.NoError(t, err)
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "Nothing Here", omdb.LookupOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, omdb.ErrNotFound))
	assert.Contains(t, err.Error(), "Movie not found!")
}

func TestLookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "Fight Club", omdb.LookupOptions{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, omdb.ErrNotFound))
	assert.Contains(t, err.Error(), "401")
}

func TestLookupEmptyTitle(t *testing.T) {
	client, err := omdb.New("key", "https://example.com")
	require.NoError(t, err)
	_, err = client.Lookup(context.Background(), "  ", omdb.LookupOptions{})
	require.Error(t, err)
}

func TestCriticsRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []omdb.Rating
		want    *float64
	}{
		{name: "no ratings"},
		{name: "no canonical entry", ratings: []omdb.Rating{{Source: "Metacritic", Value: "66/100"}}},
		{name: "canonical entry", ratings: []omdb.Rating{{Source: "Internet Movie Database", Value: "7.4/10"}}, want: ptr(7.4)},
		{name: "unparsable", ratings: []omdb.Rating{{Source: "Internet Movie Database", Value: "N/A"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := &omdb.Title{Ratings: tt.ratings}
			got := title.CriticsRating()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestRuntimeMinutes(t *testing.T) {
	assert.Equal(t, 49, *(&omdb.Title{Runtime: "49 min"}).RuntimeMinutes())
	assert.Nil(t, (&omdb.Title{Runtime: "N/A"}).RuntimeMinutes())
	assert.Nil(t, (&omdb.Title{}).RuntimeMinutes())
}

func ptr[T any](v T) *T {
	return &v
}
