package model

import "time"

type User struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(30);uniqueIndex:idx_username;not null" json:"username"`
	AvatarKey   string    `gorm:"type:varchar(255)" json:"avatar_key"`
	Dimension   float64   `gorm:"not null;default:1" json:"dimension"`
	IsReal      bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_real"`
	ReportCount int64     `gorm:"not null;default:0" json:"report_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
