package ranking

import (
	"Viewy/internal/model"
	"math/rand/v2"
)

// FeedShape sizes of the two groups of a feed page
type FeedShape struct {
	TopK          int
	DiscoverySize int
}

// Assemble top TopK candidates by RP followed by DiscoverySize ids sampled from
// recent. The discovery group may repeat ids already in the ranked group.
func Assemble(
	s Scorer,
	candidates []*model.Post,
	recent []uint64,
	viewerID uint64,
	followed map[uint64]struct{},
	watch map[uint64]int64,
	shape FeedShape,
	rng *rand.Rand,
) []uint64 {
	top := TopIDs(s, candidates, viewerID, followed, watch, shape.TopK)
	page := make([]uint64, 0, len(top)+shape.DiscoverySize)
	page = append(page, top...)
	return append(page, Sample(recent, shape.DiscoverySize, rng)...)
}

// TopIDs ids of the k best candidates by RP. It draws no randomness.
func TopIDs(
	s Scorer,
	candidates []*model.Post,
	viewerID uint64,
	followed map[uint64]struct{},
	watch map[uint64]int64,
	k int,
) []uint64 {
	ranked := s.SortByRank(candidates, viewerID, followed, watch)
	if k > len(ranked) {
		k = len(ranked)
	}
	if k < 0 {
		k = 0
	}
	ids := make([]uint64, 0, k)
	for _, sp := range ranked[:k] {
		ids = append(ids, sp.Post.ID)
	}
	return ids
}

// Sample n distinct positions of ids uniformly at random, or all of them when
// fewer than n exist
func Sample(ids []uint64, n int, rng *rand.Rand) []uint64 {
	if n <= 0 || len(ids) == 0 {
		return []uint64{}
	}
	if n > len(ids) {
		n = len(ids)
	}
	pool := make([]uint64, len(ids))
	copy(pool, ids)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
