package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"watchlog/internal/models"
	"watchlog/internal/omdb"
	"watchlog/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	ActionInserted = "inserted"
	ActionReplaced = "replaced"
)

// UpsertPolicy selects which branches of the upsert decision are permitted.
type UpsertPolicy struct {
	Insert  bool
	Replace bool
	Enrich  bool
}

var (
	PolicyCreate  = UpsertPolicy{Insert: true, Enrich: true}
	PolicyReplace = UpsertPolicy{Insert: true, Replace: true, Enrich: true}
	PolicyPatch   = UpsertPolicy{Insert: true, Replace: true}
)

type UpsertRequest struct {
	Entry models.MediaEntry
	// PeriodSupplied is set when the caller named a year, which narrows matching.
	PeriodSupplied bool
	Policy         UpsertPolicy
}

type UpsertResult struct {
	Action string             `json:"action"`
	Entry  *models.MediaEntry `json:"entry"`
}

type MediaService interface {
	Query(ctx context.Context, kind models.MediaKind, filter models.QueryFilter) ([]models.TitleRow, error)
	Upsert(ctx context.Context, kind models.MediaKind, req UpsertRequest) (*UpsertResult, error)
	Delete(ctx context.Context, kind models.MediaKind, title, year string) (*models.DeleteResult, error)
}

type mediaService struct {
	repo   repository.MediaRepository
	lookup omdb.Lookuper
	logger *logrus.Logger
}

// NewMediaService wires the read/write paths. lookup may be nil, in which case
// every enriching write fails with ErrLookupFailed.
func NewMediaService(repo repository.MediaRepository, lookup omdb.Lookuper, logger *logrus.Logger) MediaService {
	return &mediaService{
		repo:   repo,
		lookup: lookup,
		logger: logger,
	}
}

func (s *mediaService) Query(ctx context.Context, kind models.MediaKind, filter models.QueryFilter) ([]models.TitleRow, error) {
	if filter.Status != "" && !filter.Status.Queryable() {
		return nil, invalid("status", "%q is not a valid status", filter.Status)
	}
	if filter.SortKey != "" {
		if _, ok := kind.SortColumn(filter.SortKey); !ok {
			return nil, invalid("sort", "%q is not a valid sort", filter.SortKey)
		}
	}
	filter.Order = strings.ToLower(filter.Order)
	if filter.Order != "" && filter.Order != "asc" && filter.Order != "desc" {
		return nil, invalid("order", "%q is not a valid order", filter.Order)
	}
	if filter.Limit < 0 {
		return nil, invalid("num", "must be positive")
	}

	return s.repo.Query(ctx, kind, filter)
}

func (s *mediaService) Upsert(ctx context.Context, kind models.MediaKind, req UpsertRequest) (*UpsertResult, error) {
	entry := req.Entry
	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		return nil, invalid("title", "title is required")
	}
	if entry.Status == "" {
		entry.Status = models.StatusPlanToWatch
	}
	if !entry.Status.Valid() {
		return nil, invalid("status", "%q is not a valid status", entry.Status)
	}
	if r := entry.MyRating; r != nil && (math.IsNaN(*r) || math.IsInf(*r, 0)) {
		return nil, invalid("rating", "must be a finite number")
	}

	if req.Policy.Enrich {
		catalog, err := s.lookupCatalog(ctx, kind, entry.Title, entry.Period)
		if err != nil {
			return nil, err
		}
		entry.CatalogFields = catalog
	}

	key := models.NaturalKey{
		Title:       entry.Title,
		Period:      entry.Period,
		MatchPeriod: req.PeriodSupplied,
	}

	result := &UpsertResult{Entry: &entry}
	err := s.repo.Transaction(ctx, func(repo repository.MediaRepository) error {
		ids, err := repo.FindIDs(ctx, kind, key)
		if err != nil {
			return fmt.Errorf("failed to check existing %s: %w", kind.Type, err)
		}

		if len(ids) > 0 {
			if !req.Policy.Replace {
				return ErrAlreadyExists
			}
			entry.ID = ids[0]
			result.Action = ActionReplaced
			return repo.Update(ctx, kind, ids[0], kind.UpsertColumns(&entry))
		}

		if !req.Policy.Insert {
			return ErrNotPresent
		}
		id, err := repo.Create(ctx, kind, kind.UpsertColumns(&entry))
		if err != nil {
			return err
		}
		entry.ID = id
		result.Action = ActionInserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"media_type": kind.Type,
		"title":      entry.Title,
		"id":         entry.ID,
		"action":     result.Action,
		"enriched":   req.Policy.Enrich,
	}).Info("Upsert completed")

	return result, nil
}

func (s *mediaService) Delete(ctx context.Context, kind models.MediaKind, title, year string) (*models.DeleteResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("title", "title is required")
	}

	key := models.NaturalKey{Title: title}
	if year = strings.TrimSpace(year); year != "" {
		key.Period = &year
		key.MatchPeriod = true
	}

	deleted, err := s.repo.Delete(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"media_type": kind.Type,
		"title":      title,
		"year":       year,
		"deleted":    deleted,
	}).Info("Delete completed")

	return &models.DeleteResult{Title: title, Year: year, Deleted: deleted}, nil
}

func (s *mediaService) lookupCatalog(ctx context.Context, kind models.MediaKind, title string, period *string) (models.CatalogFields, error) {
	if s.lookup == nil {
		return models.CatalogFields{}, fmt.Errorf("%w: enrichment client is not configured", ErrLookupFailed)
	}

	opts := omdb.LookupOptions{Type: kind.LookupType}
	if period != nil {
		opts.Year = lookupYear(*period)
	}

	found, err := s.lookup.Lookup(ctx, title, opts)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return models.CatalogFields{}, fmt.Errorf("%w: %q", ErrLookupNotFound, title)
		}
		s.logger.WithError(err).WithField("title", title).Warn("Enrichment lookup failed")
		return models.CatalogFields{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return found.Catalog(), nil
}

// lookupYear reduces an airing range such as "2008–2013" to its first year.
func lookupYear(period string) string {
	period = strings.TrimSpace(period)
	if i := strings.IndexAny(period, "–-"); i > 0 {
		return strings.TrimSpace(period[:i])
	}
	return period
}
