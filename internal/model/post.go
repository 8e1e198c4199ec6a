package model

import (
	"math"
	"time"
)

// Post a published manga (image set) or short video
type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	PosterID      uint64    `gorm:"not null;index:idx_poster_id" json:"poster_id"`
	Title         string    `gorm:"type:varchar(255)" json:"title"`
	IsHidden      bool      `gorm:"type:tinyint(1);not null;default:0;index:idx_hidden_posted,priority:1" json:"is_hidden"`
	IsReal        bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_real"`
	IsVideo       bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_video"`
	ImageCount    int       `gorm:"not null;default:0" json:"image_count"`
	ContentLength int       `gorm:"not null;default:0" json:"content_length"`
	VisualKey     string    `gorm:"type:varchar(255)" json:"visual_key"`
	Emote1Count   int64     `gorm:"column:emote1_count;not null;default:0" json:"emote1_count"`
	Emote2Count   int64     `gorm:"column:emote2_count;not null;default:0" json:"emote2_count"`
	Emote3Count   int64     `gorm:"column:emote3_count;not null;default:0" json:"emote3_count"`
	Emote4Count   int64     `gorm:"column:emote4_count;not null;default:0" json:"emote4_count"`
	Emote5Count   int64     `gorm:"column:emote5_count;not null;default:0" json:"emote5_count"`
	FavoriteCount int64     `gorm:"not null;default:0" json:"favorite_count"`
	ViewsCount    int64     `gorm:"not null;default:0" json:"views_count"`
	ReportCount   int64     `gorm:"not null;default:0" json:"report_count"`
	FavoriteRate  float64   `gorm:"not null;default:0" json:"favorite_rate"`
	QP            float64   `gorm:"column:qp;not null;default:0;index:idx_qp" json:"qp"`
	Hashtag1      string    `gorm:"type:varchar(30);index:idx_hashtag1" json:"hashtag1"`
	Hashtag2      string    `gorm:"type:varchar(30);index:idx_hashtag2" json:"hashtag2"`
	Hashtag3      string    `gorm:"type:varchar(30);index:idx_hashtag3" json:"hashtag3"`
	PostedAt      time.Time `gorm:"not null;index:idx_hidden_posted,priority:2" json:"posted_at"`

	Poster User `gorm:"foreignKey:PosterID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// Emotes counters indexed by slot-1
func (p *Post) Emotes() [EmoteSlotCount]int64 {
	return [EmoteSlotCount]int64{p.Emote1Count, p.Emote2Count, p.Emote3Count, p.Emote4Count, p.Emote5Count}
}

// EmoteTotal sum of all emote slots
func (p *Post) EmoteTotal() int64 {
	var total int64
	for _, c := range p.Emotes() {
		total += c
	}
	return total
}

// Hashtags non-empty hashtags in slot order
func (p *Post) Hashtags() []string {
	tags := make([]string, 0, 3)
	for _, t := range []string{p.Hashtag1, p.Hashtag2, p.Hashtag3} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FavoriteRate favorites per hundred views, 0 without views
func FavoriteRate(favorites, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(favorites) / float64(views) * 100
}

// QPWeights coefficients of the QP score
type QPWeights struct {
	Rate  float64
	View  float64
	Emote float64
}

// QualityPoint recomputes QP from counters only
func QualityPoint(p *Post, w QPWeights) float64 {
	rate := FavoriteRate(p.FavoriteCount, p.ViewsCount)
	views := math.Max(float64(p.ViewsCount), 0)
	emotes := math.Max(float64(p.EmoteTotal()), 0)
	return rate*w.Rate + math.Log10(1+views)*w.View + math.Log10(1+emotes)*w.Emote
}

// ContentLength seconds a post occupies in the feed
func ContentLength(isVideo bool, imageCount int, videoSeconds int) int {
	if isVideo {
		return videoSeconds
	}
	if imageCount <= 4 {
		return 20
	}
	return imageCount * 5
}
