package services

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"watchlog/internal/config"
	"watchlog/internal/database"
	"watchlog/internal/models"
	"watchlog/internal/omdb"
	"watchlog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupCall struct {
	Title string
	Opts  omdb.LookupOptions
}

type fakeLookup struct {
	mu     sync.Mutex
	titles map[string]*omdb.Title
	errs   map[string]error
	calls  []lookupCall
	onCall func(title string)
}

func (f *fakeLookup) Lookup(_ context.Context, title string, opts omdb.LookupOptions) (*omdb.Title, error) {
	f.mu.Lock()
	f.calls = append(f.calls, lookupCall{Title: title, Opts: opts})
	f.mu.Unlock()
	if f.onCall != nil {
		f.onCall(title)
	}
	if err, ok := f.errs[title]; ok {
		return nil, err
	}
	if found, ok := f.titles[title]; ok {
		return found, nil
	}
	return nil, omdb.ErrNotFound
}

type memoryStore struct {
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (m *memoryStore) Upload(_ context.Context, objectPath, _ string, body []byte) error {
	m.objects[objectPath] = append([]byte(nil), body...)
	return nil
}

func (m *memoryStore) Download(_ context.Context, objectPath string) ([]byte, error) {
	body, ok := m.objects[objectPath]
	if !ok {
		return nil, errors.New("no such object")
	}
	return body, nil
}

func (m *memoryStore) PresignedGetURL(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://storage.test/watchlog/" + objectPath + "?X-Amz-Signature=test", nil
}

func (m *memoryStore) PublicURL(string) string { return "" }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(&config.Config{Database: config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "watchlog.db"),
		QueryTimeout: 5 * time.Second,
	}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func kindOf(t *testing.T, name string) models.MediaKind {
	t.Helper()
	kind, ok := models.LookupMediaKind(name)
	require.True(t, ok)
	return kind
}

func ptr[T any](v T) *T { return &v }

func fightClub() *omdb.Title {
	return &omdb.Title{
		Title:      "Fight Club",
		Year:       "1999",
		Runtime:    "139 min",
		Genre:      "Drama",
		Director:   "David Fincher",
		Actors:     "Brad Pitt, Edward Norton, Meat Loaf",
		Production: "N/A",
		Ratings:    []omdb.Rating{{Source: omdb.CanonicalRatingSource, Value: "8.8/10"}},
		Response:   "True",
	}
}

func rowsByTitle(t *testing.T, repo repository.MediaRepository, kind models.MediaKind, title string) []map[string]interface{} {
	t.Helper()
	rows, err := repo.ExportRows(context.Background(), kind)
	require.NoError(t, err)
	var out []map[string]interface{}
	for _, row := range rows {
		if row["title"] == title {
			out = append(out, row)
		}
	}
	return out
}

func TestUpsertCreateEnrichesAndInserts(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	lookup := &fakeLookup{titles: map[string]*omdb.Title{"Fight Club": fightClub()}}
	svc := NewMediaService(repo, lookup, quietLogger())
	movie := kindOf(t, "movie")

	result, err := svc.Upsert(context.Background(), movie, UpsertRequest{
		Entry: models.MediaEntry{
			Title:         "Fight Club",
			Status:        models.StatusWatched,
			MyRating:      ptr(9.0),
			LastWatchDate: ptr("2024-02-11"),
		},
		Policy: PolicyCreate,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionInserted, result.Action)
	assert.NotZero(t, result.Entry.ID)

	require.Len(t, lookup.calls, 1)
	assert.Equal(t, omdb.LookupOptions{Type: "movie"}, lookup.calls[0].Opts)

	rows := rowsByTitle(t, repo, movie, "Fight Club")
	require.Len(t, rows, 1)
	assert.Equal(t, "1999", rows[0]["release_date"])
	assert.Equal(t, "Drama", rows[0]["genres"])
	assert.Equal(t, "David Fincher", rows[0]["director"])
	assert.Equal(t, "N/A", rows[0]["studio"])
	assert.Equal(t, "2024-02-11", rows[0]["watch_date"])
	assert.EqualValues(t, 139, rows[0]["runtime"])
	assert.EqualValues(t, 8.8, rows[0]["critics_rating"])
	assert.EqualValues(t, 9, rows[0]["my_rating"])
	assert.Equal(t, "Watched", rows[0]["status"])
}

func TestUpsertCreateRejectsExisting(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	lookup := &fakeLookup{titles: map[string]*omdb.Title{"Fight Club": fightClub()}}
	svc := NewMediaService(repo, lookup, quietLogger())
	movie := kindOf(t, "movie")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, movie, UpsertRequest{
		Entry:  models.MediaEntry{Title: "Fight Club", Comments: ptr("first")},
		Policy: PolicyCreate,
	})
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, movie, UpsertRequest{
		Entry:  models.MediaEntry{Title: "Fight Club", Comments: ptr("second")},
		Policy: PolicyCreate,
	})
	require.ErrorIs(t, err, ErrAlreadyExists)

	rows := rowsByTitle(t, repo, movie, "Fight Club")
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0]["comments"])
}

func TestUpsertReplaceOverwritesPersonalFields(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	svc := NewMediaService(repo, nil, quietLogger())
	movie := kindOf(t, "movie")
	ctx := context.Background()

	_, err := svc.Upsert(ctx, movie, UpsertRequest{
		Entry: models.MediaEntry{
			Title:     "Heat",
			Status:    models.StatusWatched,
			SubStatus: ptr("Rewatch"),
			Favorite:  ptr(true),
			Comments:  ptr("great"),
			MyRating:  ptr(8.5),
		},
		Policy: PolicyPatch,
	})
	require.NoError(t, err)

	result, err := svc.Upsert(ctx, movie, UpsertRequest{
		Entry:  models.MediaEntry{Title: "Heat", Status: models.StatusDropped},
		Policy: PolicyPatch,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionReplaced, result.Action)

	rows := rowsByTitle(t, repo, movie, "Heat")
	require.Len(t, rows, 1)
	assert.Equal(t, "Dropped", rows[0]["status"])
	assert.Nil(t, rows[0]["comments"])
	assert.Nil(t, rows[0]["my_rating"])
	assert.Equal(t, "Rewatch", rows[0]["sub_status"])
	assert.Contains(t, []interface{}{true, int64(1)}, rows[0]["favorite"])
}

func TestUpsertPatchNeverLooksUp(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	lookup := &fakeLookup{}
	svc := NewMediaService(repo, lookup, quietLogger())

	result, err := svc.Upsert(context.Background(), kindOf(t, "show"), UpsertRequest{
		Entry: models.MediaEntry{
			Title:              "Severance",
			Status:             models.StatusCaughtUp,
			LastWatchedSeason:  ptr(2),
			LastWatchedEpisode: ptr(10),
		},
		Policy: PolicyPatch,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionInserted, result.Action)
	assert.Empty(t, lookup.calls)

	rows := rowsByTitle(t, repo, kindOf(t, "show"), "Severance")
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0]["last_watched_season"])
	assert.EqualValues(t, 10, rows[0]["last_watched_episode"])
}

func TestUpsertUpdateOnlyRejectsMissing(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	svc := NewMediaService(repo, nil, quietLogger())

	_, err := svc.Upsert(context.Background(), kindOf(t, "movie"), UpsertRequest{
		Entry:  models.MediaEntry{Title: "Heat"},
		Policy: UpsertPolicy{Replace: true},
	})
	require.ErrorIs(t, err, ErrNotPresent)

	rows, err := repo.Query(context.Background(), kindOf(t, "movie"), models.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpsertSuppliedYearNarrowsMatch(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	svc := NewMediaService(repo, nil, quietLogger())
	movie := kindOf(t, "movie")
	ctx := context.Background()

	for _, year := range []string{"1984", "2021"} {
		_, err := repo.Create(ctx, movie, map[string]interface{}{"title": "Dune", "release_date": year, "comments": "old"})
		require.NoError(t, err)
	}

	result, err := svc.Upsert(ctx, movie, UpsertRequest{
		Entry:          models.MediaEntry{Title: "Dune", Comments: ptr("new"), CatalogFields: models.CatalogFields{Period: ptr("2021")}},
		PeriodSupplied: true,
		Policy:         PolicyPatch,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionReplaced, result.Action)

	for _, row := range rowsByTitle(t, repo, movie, "Dune") {
		if row["release_date"] == "2021" {
			assert.Equal(t, "new", row["comments"])
		} else {
			assert.Equal(t, "old", row["comments"])
		}
	}

	result, err = svc.Upsert(ctx, movie, UpsertRequest{
		Entry:          models.MediaEntry{Title: "Dune", CatalogFields: models.CatalogFields{Period: ptr("2000")}},
		PeriodSupplied: true,
		Policy:         PolicyPatch,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionInserted, result.Action)
	assert.Len(t, rowsByTitle(t, repo, movie, "Dune"), 3)
}

func TestUpsertShowLookupUsesFirstYear(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	lookup := &fakeLookup{titles: map[string]*omdb.Title{"Breaking Bad": {
		Title: "Breaking Bad", Year: "2008–2013", Genre: "Crime, Drama, Thriller", Runtime: "49 min", Response: "True",
	}}}
	svc := NewMediaService(repo, lookup, quietLogger())
	show := kindOf(t, "show")

	_, err := svc.Upsert(context.Background(), show, UpsertRequest{
		Entry:          models.MediaEntry{Title: "Breaking Bad", CatalogFields: models.CatalogFields{Period: ptr("2008–2013")}},
		PeriodSupplied: true,
		Policy:         PolicyReplace,
	})
	require.NoError(t, err)
	require.Len(t, lookup.calls, 1)
	assert.Equal(t, omdb.LookupOptions{Year: "2008", Type: "series"}, lookup.calls[0].Opts)

	rows := rowsByTitle(t, repo, show, "Breaking Bad")
	require.Len(t, rows, 1)
	assert.Equal(t, "2008–2013", rows[0]["airing_dates"])
	assert.Equal(t, "Crime,Drama,Thriller", rows[0]["genres"])
	assert.Nil(t, rows[0]["critics_rating"])
}

func TestUpsertLookupErrors(t *testing.T) {
	movie := kindOf(t, "movie")
	lookup := &fakeLookup{errs: map[string]error{"Broken": errors.New("connection reset")}}

	tests := []struct {
		name   string
		lookup omdb.Lookuper
		title  string
		want   error
	}{
		{name: "not found", lookup: lookup, title: "Nope", want: ErrLookupNotFound},
		{name: "transport", lookup: lookup, title: "Broken", want: ErrLookupFailed},
		{name: "no client", lookup: nil, title: "Heat", want: ErrLookupFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMediaRepository(newTestDB(t))
			svc := NewMediaService(repo, tt.lookup, quietLogger())

			_, err := svc.Upsert(context.Background(), movie, UpsertRequest{
				Entry:  models.MediaEntry{Title: tt.title},
				Policy: PolicyCreate,
			})
			require.ErrorIs(t, err, tt.want)

			rows, err := repo.Query(context.Background(), movie, models.QueryFilter{})
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := NewMediaService(repository.NewMediaRepository(newTestDB(t)), nil, quietLogger())
	movie := kindOf(t, "movie")

	_, err := svc.Upsert(context.Background(), movie, UpsertRequest{Entry: models.MediaEntry{Title: "  "}, Policy: PolicyPatch})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = svc.Upsert(context.Background(), movie, UpsertRequest{Entry: models.MediaEntry{Title: "Heat", Status: "Binged"}, Policy: PolicyPatch})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	for _, rating := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		r := rating
		_, err = svc.Upsert(context.Background(), movie, UpsertRequest{Entry: models.MediaEntry{Title: "Heat", MyRating: &r}, Policy: PolicyPatch})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
	}
}

func TestQueryValidation(t *testing.T) {
	svc := NewMediaService(repository.NewMediaRepository(newTestDB(t)), nil, quietLogger())
	movie := kindOf(t, "movie")

	tests := []struct {
		filter models.QueryFilter
		field  string
	}{
		{models.QueryFilter{Status: models.StatusCaughtUp}, "status"},
		{models.QueryFilter{SortKey: "title"}, "sort"},
		{models.QueryFilter{SortKey: "length", Order: "up"}, "order"},
		{models.QueryFilter{Limit: -1}, "num"},
	}
	for _, tt := range tests {
		_, err := svc.Query(context.Background(), movie, tt.filter)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tt.field, verr.Field)
	}

	rows, err := svc.Query(context.Background(), movie, models.QueryFilter{SortKey: "LENGTH", Order: "DESC"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDeleteByTitleAndYear(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	svc := NewMediaService(repo, nil, quietLogger())
	show := kindOf(t, "show")
	ctx := context.Background()

	for _, years := range []string{"2003–2005", "2013–2019"} {
		_, err := repo.Create(ctx, show, map[string]interface{}{"title": "Arrested Development", "airing_dates": years})
		require.NoError(t, err)
	}

	result, err := svc.Delete(ctx, show, "Arrested Development", "2013–2019")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Deleted)

	result, err = svc.Delete(ctx, show, "Arrested Development", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Deleted)

	_, err = svc.Delete(ctx, show, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBackfillRecordsOutcomes(t *testing.T) {
	db := newTestDB(t)
	media := repository.NewMediaRepository(db)
	logs := repository.NewBackfillRepository(db)
	movie := kindOf(t, "movie")
	ctx := context.Background()

	for _, title := range []string{"Fight Club", "Fight Club", "Nope", "Broken"} {
		_, err := media.Create(ctx, movie, map[string]interface{}{"title": title})
		require.NoError(t, err)
	}
	_, err := media.Create(ctx, movie, map[string]interface{}{
		"title": "Complete", "release_date": "2000", "critics_rating": 7.0, "genres": "Drama",
		"director": "Someone", "stars": "Someone", "runtime": 100,
	})
	require.NoError(t, err)

	lookup := &fakeLookup{
		titles: map[string]*omdb.Title{"Fight Club": fightClub(), "Complete": fightClub()},
		errs:   map[string]error{"Broken": errors.New("timeout")},
	}
	svc := NewBackfillService(media, logs, lookup, 10, quietLogger())

	runLog, err := svc.Backfill(ctx, movie, 0)
	require.NoError(t, err)
	assert.Equal(t, models.BackfillStatusSuccess, runLog.Status)
	assert.Equal(t, 10, runLog.Requested)
	assert.Equal(t, 3, runLog.Selected)
	assert.Equal(t, 1, runLog.Updated)
	assert.Equal(t, int64(2), runLog.RowsAffected)
	assert.Equal(t, []string{"Fight Club"}, runLog.UpdatedTitles)
	assert.Equal(t, []string{"Nope"}, runLog.NotFound)
	assert.Equal(t, []string{"Broken"}, runLog.Failed)
	assert.NotEmpty(t, runLog.RunID)

	for _, call := range lookup.calls {
		assert.Equal(t, omdb.LookupOptions{Type: "movie"}, call.Opts)
		assert.NotEqual(t, "Complete", call.Title)
	}
	for _, row := range rowsByTitle(t, media, movie, "Fight Club") {
		assert.Equal(t, "1999", row["release_date"])
		assert.Equal(t, "David Fincher", row["director"])
	}

	last, err := svc.GetLastBackfillLog(ctx, movie)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, runLog.RunID, last.RunID)
	assert.Equal(t, []string{"Broken"}, last.Failed)

	last, err = svc.GetLastBackfillLog(ctx, kindOf(t, "show"))
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestBackfillStopsOnCancel(t *testing.T) {
	db := newTestDB(t)
	media := repository.NewMediaRepository(db)
	logs := repository.NewBackfillRepository(db)
	movie := kindOf(t, "movie")

	for _, title := range []string{"A", "B", "C"} {
		_, err := media.Create(context.Background(), movie, map[string]interface{}{"title": title})
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	lookup := &fakeLookup{onCall: func(string) { cancel() }}
	svc := NewBackfillService(media, logs, lookup, 10, quietLogger())

	runLog, err := svc.Backfill(ctx, movie, 3)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, runLog)
	assert.Equal(t, models.BackfillStatusCancelled, runLog.Status)
	assert.Len(t, lookup.calls, 1)

	last, err := logs.GetLastLog(context.Background(), models.MediaTypeMovie)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, models.BackfillStatusCancelled, last.Status)
}

func TestBackfillRejectsNegativeNum(t *testing.T) {
	db := newTestDB(t)
	svc := NewBackfillService(repository.NewMediaRepository(db), repository.NewBackfillRepository(db), &fakeLookup{}, 10, quietLogger())

	_, err := svc.Backfill(context.Background(), kindOf(t, "movie"), -2)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSnapshotExportAndRestore(t *testing.T) {
	source := repository.NewMediaRepository(newTestDB(t))
	store := newMemoryStore()
	movie := kindOf(t, "movie")
	ctx := context.Background()

	_, err := source.Create(ctx, movie, map[string]interface{}{
		"title": "Heat", "release_date": "1995", "status": "Watched", "my_rating": 9.5,
		"comments": "bank, \"heist\"", "runtime": 170, "favorite": true,
	})
	require.NoError(t, err)
	_, err = source.Create(ctx, movie, map[string]interface{}{"title": "Ronin"})
	require.NoError(t, err)

	exported, err := NewSnapshotService(source, store, quietLogger()).Export(ctx, movie)
	require.NoError(t, err)
	assert.Equal(t, 2, exported.Rows)
	assert.True(t, strings.HasPrefix(exported.Object, "snapshots/movie/"))
	assert.True(t, strings.HasSuffix(exported.Object, ".csv"))
	assert.Contains(t, exported.PresignedURL, exported.Object)

	target := repository.NewMediaRepository(newTestDB(t))
	_, err = target.Create(ctx, movie, map[string]interface{}{"title": "Heat", "release_date": "1995", "comments": "kept"})
	require.NoError(t, err)

	restored, err := NewSnapshotService(target, store, quietLogger()).Restore(ctx, movie, exported.Object)
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Inserted)
	assert.Equal(t, 1, restored.Skipped)

	heat := rowsByTitle(t, target, movie, "Heat")
	require.Len(t, heat, 1)
	assert.Equal(t, "kept", heat[0]["comments"])

	ronin := rowsByTitle(t, target, movie, "Ronin")
	require.Len(t, ronin, 1)
	assert.Nil(t, ronin[0]["release_date"])
	assert.Equal(t, "Plan to Watch", ronin[0]["status"])
}

func TestSnapshotRestoreParsesCells(t *testing.T) {
	repo := repository.NewMediaRepository(newTestDB(t))
	store := newMemoryStore()
	show := kindOf(t, "show")
	store.objects["snapshots/show/manual.csv"] = []byte(
		"id,title,airing_dates,status,last_watched_season,favorite,my_rating,extra\n" +
			"7,Severance,2022–,In Progress,2,true,9.25,ignored\n" +
			",,2000,Watched,,,,\n")

	restored, err := NewSnapshotService(repo, store, quietLogger()).Restore(context.Background(), show, "snapshots/show/manual.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Inserted)
	assert.Equal(t, 1, restored.Skipped)

	rows := rowsByTitle(t, repo, show, "Severance")
	require.Len(t, rows, 1)
	assert.Equal(t, "2022–", rows[0]["airing_dates"])
	assert.EqualValues(t, 2, rows[0]["last_watched_season"])
	assert.EqualValues(t, 9.25, rows[0]["my_rating"])

	store.objects["bad.csv"] = []byte("title,runtime\nHeat,long\n")
	_, err = NewSnapshotService(repo, store, quietLogger()).Restore(context.Background(), show, "bad.csv")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "line 2")

	store.objects["bad_status.csv"] = []byte("title,status\nHeat,Bogus Status\n")
	_, err = NewSnapshotService(repo, store, quietLogger()).Restore(context.Background(), show, "bad_status.csv")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "line 2 column status")

	store.objects["bad_rating.csv"] = []byte("title,my_rating\nHeat,+Inf\n")
	_, err = NewSnapshotService(repo, store, quietLogger()).Restore(context.Background(), show, "bad_rating.csv")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "column my_rating")
	assert.Empty(t, rowsByTitle(t, repo, show, "Heat"))
}

func TestSnapshotsDisabledWithoutStore(t *testing.T) {
	svc := NewSnapshotService(repository.NewMediaRepository(newTestDB(t)), nil, quietLogger())

	_, err := svc.Export(context.Background(), kindOf(t, "movie"))
	require.ErrorIs(t, err, ErrSnapshotsDisabled)
	_, err = svc.Restore(context.Background(), kindOf(t, "movie"), "x.csv")
	require.ErrorIs(t, err, ErrSnapshotsDisabled)
}

func TestLookupYear(t *testing.T) {
	assert.Equal(t, "2008", lookupYear("2008–2013"))
	assert.Equal(t, "2022", lookupYear("2022–"))
	assert.Equal(t, "1999", lookupYear(" 1999 "))
	assert.Equal(t, "2001", lookupYear("2001-2003"))
}
