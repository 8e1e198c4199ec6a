package model

import "errors"

// AdKind standard ads sit between feed posts, wide ads on hashtag pages
type AdKind string

const (
	AdKindStandard AdKind = "standard"
	AdKindWide     AdKind = "wide"
)

var ErrAdKind = errors.New("unknown ad kind")

func ParseAdKind(s string) (AdKind, error) {
	switch AdKind(s) {
	case "", AdKindStandard:
		return AdKindStandard, nil
	case AdKindWide:
		return AdKindWide, nil
	}
	return "", ErrAdKind
}

// Table backing table of the kind
func (k AdKind) Table() string {
	if k == AdKindWide {
		return "wide_ads"
	}
	return "ads"
}

// Advertisement row of either ads or wide_ads
type Advertisement struct {
	ID         uint64  `gorm:"primaryKey" json:"id"`
	Title      string  `gorm:"type:varchar(100)" json:"title"`
	ImageKey   string  `gorm:"type:varchar(255)" json:"image_key"`
	LinkURL    string  `gorm:"type:varchar(512)" json:"link_url"`
	ViewsCount int64   `gorm:"not null;default:0" json:"views_count"`
	ClickCount int64   `gorm:"not null;default:0" json:"click_count"`
	ClickRate  float64 `gorm:"not null;default:0" json:"click_rate"`
	IsActive   bool    `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
}

// ClickRate clicks per hundred views, 0 without views
func ClickRate(clicks, views int64) float64 {
	if views <= 0 {
		return 0
	}
	return float64(clicks) / float64(views) * 100
}
