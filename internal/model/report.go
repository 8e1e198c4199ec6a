package model

import "time"

// Report one per (reporter, post)
type Report struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ReporterID uint64    `gorm:"not null;uniqueIndex:idx_reporter_post,priority:1" json:"reporter_id"`
	PostID     uint64    `gorm:"not null;uniqueIndex:idx_reporter_post,priority:2" json:"post_id"`
	Reason     string    `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}
