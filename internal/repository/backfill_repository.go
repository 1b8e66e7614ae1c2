package repository

import (
	"context"
	"errors"
	"time"

	"watchlog/internal/database"
	"watchlog/internal/models"

	"gorm.io/gorm"
)

type BackfillRepository interface {
	CreateLog(ctx context.Context, log *models.BackfillLog) error
	GetLastLog(ctx context.Context, mediaType models.MediaType) (*models.BackfillLog, error)
}

type backfillRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewBackfillRepository(db *database.Database) BackfillRepository {
	return &backfillRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *backfillRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *backfillRepository) CreateLog(ctx context.Context, log *models.BackfillLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *backfillRepository) GetLastLog(ctx context.Context, mediaType models.MediaType) (*models.BackfillLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.BackfillLog
	err := r.db.WithContext(ctx).
		Where("media_type = ?", string(mediaType)).
		Order("finished_at DESC").
		Order("id DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
