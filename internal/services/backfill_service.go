package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"watchlog/internal/models"
	"watchlog/internal/omdb"
	"watchlog/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BackfillService interface {
	Backfill(ctx context.Context, kind models.MediaKind, num int) (*models.BackfillLog, error)
	GetLastBackfillLog(ctx context.Context, kind models.MediaKind) (*models.BackfillLog, error)
}

type backfillService struct {
	media      repository.MediaRepository
	logs       repository.BackfillRepository
	lookup     omdb.Lookuper
	defaultNum int
	logger     *logrus.Logger
}

func NewBackfillService(media repository.MediaRepository, logs repository.BackfillRepository, lookup omdb.Lookuper, defaultNum int, logger *logrus.Logger) BackfillService {
	if defaultNum < 1 {
		defaultNum = 10
	}
	return &backfillService{
		media:      media,
		logs:       logs,
		lookup:     lookup,
		defaultNum: defaultNum,
		logger:     logger,
	}
}

// Backfill fills missing catalog fields for up to num randomly chosen rows.
// Lookups use the title and media type only. Updates are matched by title, so
// rows that share a title all receive the same catalog data.
//
// The returned log is non-nil whenever the run started, including failed and
// cancelled runs.
func (s *backfillService) Backfill(ctx context.Context, kind models.MediaKind, num int) (*models.BackfillLog, error) {
	if num == 0 {
		num = s.defaultNum
	}
	if num < 0 {
		return nil, invalid("num", "must be positive")
	}
	if s.lookup == nil {
		return nil, fmt.Errorf("%w: enrichment client is not configured", ErrLookupFailed)
	}

	runLog := &models.BackfillLog{
		RunID:         uuid.New().String(),
		MediaType:     string(kind.Type),
		Status:        models.BackfillStatusFailed,
		Requested:     num,
		UpdatedTitles: []string{},
		NotFound:      []string{},
		Failed:        []string{},
		StartedAt:     time.Now().UTC(),
	}
	entry := s.logger.WithFields(logrus.Fields{
		"run_id":     runLog.RunID,
		"media_type": kind.Type,
		"num":        num,
	})
	entry.Info("Starting backfill")

	titles, err := s.media.FindIncomplete(ctx, kind, num)
	if err != nil {
		runLog.ErrorMessage = fmt.Sprintf("failed to select incomplete rows: %s", err.Error())
		s.saveLog(ctx, runLog)
		return runLog, fmt.Errorf("failed to select incomplete %s rows: %w", kind.Type, err)
	}
	titles = uniqueTitles(titles)
	runLog.Selected = len(titles)

	updates := make([]models.BackfillUpdate, 0, len(titles))
	for _, title := range titles {
		if ctx.Err() != nil {
			break
		}

		found, err := s.lookup.Lookup(ctx, title, omdb.LookupOptions{Type: kind.LookupType})
		switch {
		case err == nil:
			updates = append(updates, models.BackfillUpdate{Title: title, Catalog: found.Catalog()})
		case errors.Is(err, omdb.ErrNotFound):
			entry.WithField("title", title).Debug("Title not found during backfill")
			runLog.NotFound = append(runLog.NotFound, title)
		case ctx.Err() != nil:
			// The lookup was interrupted, not failed.
		default:
			entry.WithError(err).WithField("title", title).Warn("Lookup failed during backfill")
			runLog.Failed = append(runLog.Failed, title)
		}
	}

	if err := ctx.Err(); err != nil {
		runLog.Status = models.BackfillStatusCancelled
		runLog.ErrorMessage = err.Error()
		s.saveLog(ctx, runLog)
		entry.WithError(err).Warn("Backfill cancelled")
		return runLog, err
	}

	affected, err := s.media.ApplyBackfill(ctx, kind, updates)
	if err != nil {
		runLog.ErrorMessage = fmt.Sprintf("failed to apply updates: %s", err.Error())
		s.saveLog(ctx, runLog)
		return runLog, fmt.Errorf("failed to apply %s backfill: %w", kind.Type, err)
	}

	for _, update := range updates {
		runLog.UpdatedTitles = append(runLog.UpdatedTitles, update.Title)
	}
	runLog.Updated = len(updates)
	runLog.RowsAffected = affected
	runLog.Status = models.BackfillStatusSuccess
	s.saveLog(ctx, runLog)

	entry.WithFields(logrus.Fields{
		"selected":      runLog.Selected,
		"updated":       runLog.Updated,
		"rows_affected": affected,
		"not_found":     len(runLog.NotFound),
		"failed":        len(runLog.Failed),
	}).Info("Backfill completed")

	return runLog, nil
}

func (s *backfillService) GetLastBackfillLog(ctx context.Context, kind models.MediaKind) (*models.BackfillLog, error) {
	return s.logs.GetLastLog(ctx, kind.Type)
}

// saveLog persists the run log even when the caller's context is already done.
func (s *backfillService) saveLog(ctx context.Context, runLog *models.BackfillLog) {
	runLog.FinishedAt = time.Now().UTC()
	if err := s.logs.CreateLog(context.WithoutCancel(ctx), runLog); err != nil {
		s.logger.WithError(err).WithField("run_id", runLog.RunID).Error("Failed to save backfill log")
	}
}

func uniqueTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}
