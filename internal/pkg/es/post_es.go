package es

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// PostES searchable projection of a visible post.
// HashtagsNorm holds util.NormalizeHashtag of Hashtags, index by index.
type PostES struct {
	ID            uint64    `json:"id"`
	PosterID      uint64    `json:"poster_id"`
	Title         string    `json:"title"`
	Hashtags      []string  `json:"hashtags"`
	HashtagsNorm  []string  `json:"hashtags_norm"`
	IsReal        bool      `json:"is_real"`
	QP            float64   `json:"qp"`
	PostedAt      time.Time `json:"posted_at"`
}

// postMapping hashtags are keywords so prefix queries see whole tags
func postMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":             types.NewLongNumberProperty(),
			"poster_id":      types.NewLongNumberProperty(),
			"title":          types.NewTextProperty(),
			"hashtags":       types.NewKeywordProperty(),
			"hashtags_norm":  types.NewKeywordProperty(),
			"is_real":        types.NewBooleanProperty(),
			"qp":             types.NewDoubleNumberProperty(),
			"posted_at":      types.NewDateProperty(),
		},
	}
}
