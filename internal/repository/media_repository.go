package repository

import (
	"context"
	"strings"
	"time"

	"watchlog/internal/database"
	"watchlog/internal/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	// Reads
	Query(ctx context.Context, kind models.MediaKind, filter models.QueryFilter) ([]models.TitleRow, error)
	FindIDs(ctx context.Context, kind models.MediaKind, key models.NaturalKey) ([]uint, error)
	ExportRows(ctx context.Context, kind models.MediaKind) ([]map[string]interface{}, error)

	// Writes
	Create(ctx context.Context, kind models.MediaKind, cols map[string]interface{}) (uint, error)
	Update(ctx context.Context, kind models.MediaKind, id uint, cols map[string]interface{}) error
	Delete(ctx context.Context, kind models.MediaKind, key models.NaturalKey) (int64, error)
	InsertMissing(ctx context.Context, kind models.MediaKind, rows []map[string]interface{}, chunkSize int) (inserted, skipped int, err error)

	// Backfill operations
	FindIncomplete(ctx context.Context, kind models.MediaKind, limit int) ([]string, error)
	ApplyBackfill(ctx context.Context, kind models.MediaKind, updates []models.BackfillUpdate) (int64, error)

	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo MediaRepository) error) error
}

type mediaRepository struct {
	conn    *gorm.DB
	timeout time.Duration
}

func NewMediaRepository(db *database.Database) MediaRepository {
	return &mediaRepository{
		conn:    db.DB,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *mediaRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *mediaRepository) Transaction(ctx context.Context, fn func(repo MediaRepository) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&mediaRepository{conn: tx, timeout: r.timeout})
	})
}

func (r *mediaRepository) Query(ctx context.Context, kind models.MediaKind, filter models.QueryFilter) ([]models.TitleRow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.conn.WithContext(ctx).
		Table(kind.Table).
		Select("id, title, " + kind.PeriodColumn + " AS period")

	if filter.Genre != "" {
		query = query.Where(`LOWER(genres) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.Genre))+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.MaxLength != nil {
		query = query.Where(kind.RuntimeColumn+" < ?", *filter.MaxLength)
	}

	// Column names come from the kind's allow-list, never from the request.
	if filter.SortKey != "" {
		column, ok := kind.SortColumn(filter.SortKey)
		switch {
		case ok && column == "":
			query = query.Order("RANDOM()")
		case ok:
			direction := "ASC"
			if filter.Order == "desc" {
				direction = "DESC"
			}
			query = query.Order(column + " " + direction).Order("id")
		}
	} else {
		query = query.Order("id")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.TitleRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mediaRepository) FindIDs(ctx context.Context, kind models.MediaKind, key models.NaturalKey) ([]uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ids []uint
	err := r.whereKey(r.conn.WithContext(ctx).Table(kind.Table), kind, key).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *mediaRepository) ExportRows(ctx context.Context, kind models.MediaKind) ([]map[string]interface{}, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []map[string]interface{}
	err := r.conn.WithContext(ctx).
		Table(kind.Table).
		Select(kind.ExportColumns).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *mediaRepository) Create(ctx context.Context, kind models.MediaKind, cols map[string]interface{}) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.conn.WithContext(ctx)
	if err := db.Table(kind.Table).Create(cols).Error; err != nil {
		return 0, err
	}

	// Creating from a map does not back-fill the primary key.
	var id uint
	err := db.Table(kind.Table).
		Where("title = ?", cols["title"]).
		Select("MAX(id)").
		Scan(&id).Error
	return id, err
}

func (r *mediaRepository) Update(ctx context.Context, kind models.MediaKind, id uint, cols map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn.WithContext(ctx).
		Table(kind.Table).
		Where("id = ?", id).
		Updates(cols).Error
}

func (r *mediaRepository) Delete(ctx context.Context, kind models.MediaKind, key models.NaturalKey) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.whereKey(r.conn.WithContext(ctx).Table(kind.Table), kind, key).Delete(kind.Model())
	return result.RowsAffected, result.Error
}

func (r *mediaRepository) InsertMissing(ctx context.Context, kind models.MediaKind, rows []map[string]interface{}, chunkSize int) (int, int, error) {
	if chunkSize < 1 {
		chunkSize = 100
	}

	inserted, skipped := 0, 0
	err := r.Transaction(ctx, func(repo MediaRepository) error {
		tx := repo.(*mediaRepository)
		pending := make([]map[string]interface{}, 0, chunkSize)

		flush := func() error {
			if len(pending) == 0 {
				return nil
			}
			if err := tx.conn.WithContext(ctx).Table(kind.Table).Create(pending).Error; err != nil {
				return err
			}
			inserted += len(pending)
			pending = make([]map[string]interface{}, 0, chunkSize)
			return nil
		}

		for _, row := range rows {
			title, _ := row["title"].(string)
			if strings.TrimSpace(title) == "" {
				skipped++
				continue
			}
			period, _ := row[kind.PeriodColumn].(string)
			key := models.NaturalKey{Title: title, MatchPeriod: true}
			if period != "" {
				key.Period = &period
			}
			ids, err := tx.FindIDs(ctx, kind, key)
			if err != nil {
				return err
			}
			if len(ids) > 0 {
				skipped++
				continue
			}
			pending = append(pending, row)
			if len(pending) == chunkSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, skipped, nil
}

func (r *mediaRepository) FindIncomplete(ctx context.Context, kind models.MediaKind, limit int) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	columns := kind.CatalogColumnNames()
	conditions := make([]string, len(columns))
	for i, column := range columns {
		conditions[i] = column + " IS NULL"
	}

	var titles []string
	err := r.conn.WithContext(ctx).
		Table(kind.Table).
		Where(strings.Join(conditions, " OR ")).
		Order("RANDOM()").
		Limit(limit).
		Pluck("title", &titles).Error
	return titles, err
}

// ApplyBackfill writes catalog fields matched by title only, so every row
// sharing a title receives the same update.
func (r *mediaRepository) ApplyBackfill(ctx context.Context, kind models.MediaKind, updates []models.BackfillUpdate) (int64, error) {
	var affected int64
	err := r.Transaction(ctx, func(repo MediaRepository) error {
		tx := repo.(*mediaRepository)
		for _, update := range updates {
			result := tx.conn.WithContext(ctx).
				Table(kind.Table).
				Where("title = ?", update.Title).
				Updates(kind.CatalogColumns(update.Catalog))
			if result.Error != nil {
				return result.Error
			}
			affected += result.RowsAffected
		}
		return nil
	})
	return affected, err
}

func (r *mediaRepository) whereKey(db *gorm.DB, kind models.MediaKind, key models.NaturalKey) *gorm.DB {
	db = db.Where("title = ?", key.Title)
	if !key.MatchPeriod {
		return db
	}
	if key.Period == nil {
		return db.Where(kind.PeriodColumn + " IS NULL")
	}
	return db.Where(kind.PeriodColumn+" = ?", *key.Period)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
