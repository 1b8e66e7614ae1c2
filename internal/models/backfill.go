package models

import "time"

const (
	BackfillStatusSuccess   = "success"
	BackfillStatusCancelled = "cancelled"
	BackfillStatusFailed    = "failed"
)

// BackfillLog records the outcome of one backfill run.
type BackfillLog struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	RunID         string    `gorm:"size:36;uniqueIndex" json:"run_id" example:"5f0c7d2e-8a43-4c8e-9d0b-0b4d3f1e2a11"`
	MediaType     string    `gorm:"size:10;index" json:"media_type" example:"movie"`
	Status        string    `gorm:"size:20;index" json:"status" example:"success"`
	Requested     int       `json:"requested" example:"10"`
	Selected      int       `json:"selected" example:"7"`
	Updated       int       `json:"updated" example:"5"`
	RowsAffected  int64     `json:"rows_affected" example:"6"`
	UpdatedTitles []string  `gorm:"serializer:json;type:text" json:"updated_titles"`
	NotFound      []string  `gorm:"serializer:json;type:text" json:"not_found"`
	Failed        []string  `gorm:"serializer:json;type:text" json:"failed"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `gorm:"index" json:"finished_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (BackfillLog) TableName() string {
	return "backfill_logs"
}

// BackfillUpdate is the catalog data to apply to every row titled Title.
type BackfillUpdate struct {
	Title   string
	Catalog CatalogFields
}
