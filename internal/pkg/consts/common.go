package consts

const (
	TrueString  = "1"
	FalseString = "0"
)

const (
	OrderQP       = "qp"
	OrderPostedAt = "posted_at"
	OrderFavorite = "favorite_count"
)

const (
	ListFavorites = "favorites"
	ListHashtag   = "hashtag"
	ListPoster    = "poster"
	ListFollow    = "follow"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
