package model

import "time"

type Follow struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	PosterID  uint64    `gorm:"primaryKey;index:idx_poster_id" json:"poster_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
