package model

import "time"

type HotHashtag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Hashtag1  string    `gorm:"type:varchar(30)" json:"hashtag1"`
	Hashtag2  string    `gorm:"type:varchar(30)" json:"hashtag2"`
	Hashtag3  string    `gorm:"type:varchar(30)" json:"hashtag3"`
	Hashtag4  string    `gorm:"type:varchar(30)" json:"hashtag4"`
	CreatedAt time.Time `gorm:"index:idx_created_at" json:"created_at"`
}

func (HotHashtag) TableName() string {
	return "hot_hashtags"
}

// Tags non-empty tags in slot order
func (h *HotHashtag) Tags() []string {
	tags := make([]string, 0, 4)
	for _, t := range []string{h.Hashtag1, h.Hashtag2, h.Hashtag3, h.Hashtag4} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
