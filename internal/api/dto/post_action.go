package dto

// FavoriteResultDTO state after a toggle
type FavoriteResultDTO struct {
	Favorited     bool  `json:"favorited"`
	FavoriteCount int64 `json:"favorite_count"`
}

type ViewResultDTO struct {
	ViewsCount int64 `json:"views_count"`
}

// ReportReq reason is free text
type ReportReq struct {
	Reason string `json:"reason" validate:"max=255"`
}

type ReportResultDTO struct {
	AlreadyReported bool `json:"already_reported"`
}

// EmoteReq clicks 0 counts as a single click
type EmoteReq struct {
	Slot   int   `json:"slot" binding:"required"`
	Clicks int64 `json:"clicks"`
}

type EmoteResultDTO struct {
	Slot     int   `json:"slot"`
	NewCount int64 `json:"new_count"`
}

// ViewDurationReq seconds watched
type ViewDurationReq struct {
	Duration float64 `json:"duration" validate:"min=0"`
}
