package dto

type PosterDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type IsPosterDTO struct {
	IsPoster bool `json:"is_poster"`
}
