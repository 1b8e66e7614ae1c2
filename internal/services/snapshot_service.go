package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"watchlog/internal/models"
	"watchlog/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	snapshotChunkSize   = 100
	snapshotURLExpiry   = 15 * time.Minute
	snapshotContentType = "text/csv"
)

type SnapshotResult struct {
	Object       string `json:"object" example:"snapshots/movie/20260101T120000Z_1a2b3c4d.csv"`
	Rows         int    `json:"rows" example:"120"`
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url,omitempty"`
}

type RestoreResult struct {
	Object   string `json:"object"`
	Inserted int    `json:"inserted" example:"3"`
	Skipped  int    `json:"skipped" example:"117"`
}

type SnapshotService interface {
	Export(ctx context.Context, kind models.MediaKind) (*SnapshotResult, error)
	Restore(ctx context.Context, kind models.MediaKind, object string) (*RestoreResult, error)
}

type snapshotService struct {
	repo   repository.MediaRepository
	store  ObjectStore
	logger *logrus.Logger
}

// NewSnapshotService returns a service that reports ErrSnapshotsDisabled for
// every call when store is nil.
func NewSnapshotService(repo repository.MediaRepository, store ObjectStore, logger *logrus.Logger) SnapshotService {
	return &snapshotService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (s *snapshotService) Export(ctx context.Context, kind models.MediaKind) (*SnapshotResult, error) {
	if s.store == nil {
		return nil, ErrSnapshotsDisabled
	}

	rows, err := s.repo.ExportRows(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", kind.Type, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(kind.ExportColumns); err != nil {
		return nil, err
	}
	record := make([]string, len(kind.ExportColumns))
	for _, row := range rows {
		for i, column := range kind.ExportColumns {
			record[i] = formatCell(row[column])
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	object := fmt.Sprintf("snapshots/%s/%s_%s.csv", kind.Type, time.Now().UTC().Format("20060102T150405Z"), uuid.New().String()[:8])
	if err := s.store.Upload(ctx, object, snapshotContentType, buf.Bytes()); err != nil {
		return nil, err
	}

	url, err := s.store.PresignedGetURL(ctx, object, snapshotURLExpiry)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"media_type": kind.Type,
		"object":     object,
		"rows":       len(rows),
	}).Info("Snapshot exported")

	return &SnapshotResult{
		Object:       object,
		Rows:         len(rows),
		PresignedURL: url,
		PublicURL:    s.store.PublicURL(object),
	}, nil
}

// Restore inserts the snapshot rows whose (title, period) pair is not already
// stored. Existing rows are never modified.
func (s *snapshotService) Restore(ctx context.Context, kind models.MediaKind, object string) (*RestoreResult, error) {
	if s.store == nil {
		return nil, ErrSnapshotsDisabled
	}
	object = strings.TrimSpace(object)
	if object == "" {
		return nil, invalid("object", "object is required")
	}

	body, err := s.store.Download(ctx, object)
	if err != nil {
		return nil, err
	}

	rows, err := parseSnapshot(kind, body)
	if err != nil {
		return nil, err
	}

	inserted, skipped, err := s.repo.InsertMissing(ctx, kind, rows, snapshotChunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to restore %s snapshot: %w", kind.Type, err)
	}

	s.logger.WithFields(logrus.Fields{
		"media_type": kind.Type,
		"object":     object,
		"inserted":   inserted,
		"skipped":    skipped,
	}).Info("Snapshot restored")

	return &RestoreResult{Object: object, Inserted: inserted, Skipped: skipped}, nil
}

func parseSnapshot(kind models.MediaKind, body []byte) ([]map[string]interface{}, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("object", "snapshot is empty")
		}
		return nil, invalid("object", "snapshot is not valid CSV: %v", err)
	}

	allowed := make(map[string]bool, len(kind.ExportColumns))
	for _, column := range kind.ExportColumns {
		allowed[column] = true
	}
	columns := make([]string, len(header))
	hasTitle := false
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		// The id column is reassigned on insert and unknown columns are dropped.
		if name == "id" || !allowed[name] {
			continue
		}
		columns[i] = name
		hasTitle = hasTitle || name == "title"
	}
	if !hasTitle {
		return nil, invalid("object", "snapshot has no title column")
	}

	var rows []map[string]interface{}
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalid("object", "line %d: %v", line, err)
		}

		row := map[string]interface{}{
			"status":     string(models.StatusPlanToWatch),
			"sub_status": "N/A",
			"favorite":   false,
		}
		for i, cell := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			value, err := parseCell(columns[i], strings.TrimSpace(cell))
			if err != nil {
				return nil, invalid("object", "line %d column %s: %v", line, columns[i], err)
			}
			if value == nil {
				if _, hasDefault := row[columns[i]]; hasDefault {
					continue
				}
			}
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCell(column, cell string) (interface{}, error) {
	if cell == "" {
		return nil, nil
	}
	switch column {
	case "my_rating", "critics_rating":
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%q is not a finite number", cell)
		}
		return f, nil
	case "runtime", "last_watched_season", "last_watched_episode":
		return strconv.Atoi(cell)
	case "favorite":
		return strconv.ParseBool(cell)
	case "status":
		if !models.Status(cell).Valid() {
			return nil, fmt.Errorf("%q is not a valid status", cell)
		}
	}
	return cell, nil
}

func formatCell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format("2006-01-02")
	}
	return fmt.Sprint(v)
}
