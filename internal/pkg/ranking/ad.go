package ranking

import (
	"Viewy/internal/model"
	"math/rand/v2"
)

// PickAd uniform choice over pool, nil when empty
func PickAd(pool []*model.Advertisement, rng *rand.Rand) *model.Advertisement {
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.IntN(len(pool))]
}
