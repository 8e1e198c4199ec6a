package dto

type AdDTO struct {
	ID       uint64 `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
}

type AdClickDTO struct {
	ClickRate float64 `json:"click_rate"`
}
