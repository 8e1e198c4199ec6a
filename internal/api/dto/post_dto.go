package dto

type PostDTO struct {
	// Post
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	VisualURL     string   `json:"visual_url"`
	IsVideo       bool     `json:"is_video"`
	ImageCount    int      `json:"image_count"`
	ContentLength int      `json:"content_length"`
	EmoteCounts   []int64  `json:"emotes"`
	FavoriteCount int64    `json:"favorite_count"`
	ViewsCount    int64    `json:"views_count"`
	FavoriteRate  float64  `json:"favorite_rate"`
	QP            float64  `json:"qp"`
	Hashtags      []string `json:"hashtags"`
	PostedAt      string   `json:"posted_at"`

	// Poster
	PosterID        uint64 `json:"poster_id"`
	PosterName      string `json:"poster_name"`
	PosterAvatarURL string `json:"poster_avatar_url"`

	// Viewer, false for anonymous requests
	FavoritedByUser bool `json:"favorited_by_user"`
	FollowedByUser  bool `json:"followed_by_user"`
	ReportedByUser  bool `json:"reported_by_user"`
}

// PostPageDTO one feed or list page; Reset tells the client its cursor was stale
type PostPageDTO struct {
	Posts []*PostDTO `json:"posts"`
	Ad    *AdDTO     `json:"ad,omitempty"`
	Reset bool       `json:"reset"`
}

// HotHashtagDTO one hot tag with its newest posts
type HotHashtagDTO struct {
	Hashtag string     `json:"hashtag"`
	Posts   []*PostDTO `json:"posts"`
}

type HotHashtagsDTO struct {
	Hashtags []*HotHashtagDTO `json:"hashtags"`
	Ad       *AdDTO           `json:"ad,omitempty"`
}

type HashtagSuggestDTO struct {
	Hashtags []string `json:"hashtags"`
}
