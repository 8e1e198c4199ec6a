// Package ranking scores posts for a viewer and assembles feed pages.
//
// Everything here is a pure function of its arguments: the clock is carried
// on Scorer and randomness comes from a caller-supplied source.
package ranking

import (
	"Viewy/internal/model"
	"math"
	"sort"
	"time"
)

// Weights tunable RP coefficients
type Weights struct {
	RecencyWeight        float64
	RecencyHalfLifeHours float64
	EngagementWeight     float64
	FavoriteWeight       float64
	FollowBoost          float64
	WatchPenalty         float64
}

// Scorer computes RP as of Now
type Scorer struct {
	Now     time.Time
	Weights Weights
}

func NewScorer(now time.Time, w Weights) Scorer {
	return Scorer{Now: now, Weights: w}
}

// Rank RP of post for viewerID.
// Non-decreasing in recency, engagement and follow status, non-increasing in watchCount.
func (s Scorer) Rank(post *model.Post, viewerID uint64, followed map[uint64]struct{}, watchCount int64) float64 {
	if post == nil {
		return 0
	}
	w := s.Weights

	ageHours := s.Now.Sub(post.PostedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	halfLife := w.RecencyHalfLifeHours
	if halfLife <= 0 {
		halfLife = 24
	}
	score := w.RecencyWeight / (1 + ageHours/halfLife)

	engagement := float64(post.EmoteTotal()) + w.FavoriteWeight*float64(post.FavoriteCount)
	if engagement > 0 {
		score += w.EngagementWeight * math.Log1p(engagement)
	}

	if _, ok := followed[post.PosterID]; ok && post.PosterID != viewerID {
		score += w.FollowBoost
	}

	if watchCount > 0 {
		score -= w.WatchPenalty * float64(watchCount)
	}
	return score
}

// Scored post with its RP
type Scored struct {
	Post  *model.Post
	Score float64
}

// SortByRank scores posts and orders them by RP descending, id descending on ties
func (s Scorer) SortByRank(posts []*model.Post, viewerID uint64, followed map[uint64]struct{}, watch map[uint64]int64) []Scored {
	scored := make([]Scored, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		scored = append(scored, Scored{Post: p, Score: s.Rank(p, viewerID, followed, watch[p.ID])})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Post.ID > scored[j].Post.ID
	})
	return scored
}
