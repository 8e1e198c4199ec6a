package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/metrics"
	"Viewy/internal/pkg/ranking"
	"Viewy/internal/repository"
	"context"
	"math/rand/v2"
	"sync"
)

type AdService interface {
	PickAd(ctx context.Context, kind model.AdKind) (*dto.AdDTO, error)
	IncrementView(ctx context.Context, kind model.AdKind, adID uint64) error
	IncrementClick(ctx context.Context, kind model.AdKind, adID uint64) (*dto.AdClickDTO, error)
}

type adServiceImpl struct {
	adRepo repository.AdRepo
	mu     sync.Mutex
	rng    *rand.Rand
}

func NewAdService(adRepo repository.AdRepo) AdService {
	return newAdService(adRepo, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newAdService(adRepo repository.AdRepo, rng *rand.Rand) *adServiceImpl {
	return &adServiceImpl{adRepo: adRepo, rng: rng}
}

// PickAd nil without error when no ad of the kind is active
func (s *adServiceImpl) PickAd(ctx context.Context, kind model.AdKind) (*dto.AdDTO, error) {
	pool, err := s.adRepo.GetActiveAds(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	ad := ranking.PickAd(pool, s.rng)
	s.mu.Unlock()
	return toAdDTO(kind, ad), nil
}

func (s *adServiceImpl) IncrementView(ctx context.Context, kind model.AdKind, adID uint64) error {
	ad, err := s.adRepo.IncrViewsCount(ctx, kind, adID)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}
	metrics.RecordEngagement("ad_view")
	return nil
}

func (s *adServiceImpl) IncrementClick(ctx context.Context, kind model.AdKind, adID uint64) (*dto.AdClickDTO, error) {
	ad, err := s.adRepo.IncrClickCount(ctx, kind, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	metrics.RecordEngagement("ad_click")
	return &dto.AdClickDTO{ClickRate: ad.ClickRate}, nil
}
