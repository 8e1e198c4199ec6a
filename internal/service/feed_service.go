package service

import (
	"Viewy/internal/api/config"
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/metrics"
	"Viewy/internal/pkg/mongo"
	"Viewy/internal/pkg/ranking"
	"Viewy/internal/repository"
	"context"
	log "log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type FeedService interface {
	BuildPage(ctx context.Context, viewerID uint64, dimension model.Dimension) (*dto.PostPageDTO, error)
}

type feedServiceImpl struct {
	postRepo         repository.PostRepo
	userFollowSvc    UserFollowService
	viewDurationRepo mongo.ViewDurationRepo
	adSvc            AdService
	flags            viewerFlags
	feedCfg          config.FeedConfig
	weights          ranking.Weights

	now func() time.Time
	mu  sync.Mutex
	rng *rand.Rand
}

func NewFeedService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	userFollowSvc UserFollowService,
	viewDurationRepo mongo.ViewDurationRepo,
	adSvc AdService,
	feedCfg config.FeedConfig,
	rankCfg config.RankConfig,
) FeedService {
	return newFeedService(postRepo, actionRepo, userFollowSvc, viewDurationRepo, adSvc, feedCfg, rankCfg,
		time.Now, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newFeedService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	userFollowSvc UserFollowService,
	viewDurationRepo mongo.ViewDurationRepo,
	adSvc AdService,
	feedCfg config.FeedConfig,
	rankCfg config.RankConfig,
	now func() time.Time,
	rng *rand.Rand,
) *feedServiceImpl {
	return &feedServiceImpl{
		postRepo:         postRepo,
		userFollowSvc:    userFollowSvc,
		viewDurationRepo: viewDurationRepo,
		adSvc:            adSvc,
		flags:            viewerFlags{actionRepo: actionRepo, userFollowSvc: userFollowSvc},
		feedCfg:          feedCfg,
		weights: ranking.Weights{
			RecencyWeight:        rankCfg.RecencyWeight,
			RecencyHalfLifeHours: rankCfg.RecencyHalfLifeHours,
			EngagementWeight:     rankCfg.EngagementWeight,
			FavoriteWeight:       rankCfg.FavoriteWeight,
			FollowBoost:          rankCfg.FollowBoost,
			WatchPenalty:         rankCfg.WatchPenalty,
		},
		now: now,
		rng: rng,
	}
}

// BuildPage popular posts for anonymous viewers, RP ranked plus random
// discovery for everyone else. The page carries one standard ad when any is active.
func (s *feedServiceImpl) BuildPage(ctx context.Context, viewerID uint64, dimension model.Dimension) (*dto.PostPageDTO, error) {
	start := time.Now()
	defer metrics.ObserveFeedBuild(viewerID == 0, start)

	var ids []uint64
	var err error
	if viewerID == 0 {
		ids, err = s.postRepo.ListPostIDs(ctx, repository.PostFilter{
			Order: consts.OrderFavorite,
			Limit: s.feedCfg.AnonymousLimit,
		})
	} else {
		ids, err = s.rankedIDs(ctx, viewerID, dimension)
	}
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	page := &dto.PostPageDTO{Posts: toPostDTOs(ids, posts)}
	if err = s.flags.annotate(ctx, viewerID, page.Posts); err != nil {
		return nil, err
	}

	ad, err := s.adSvc.PickAd(ctx, model.AdKindStandard)
	if err != nil {
		log.WarnContext(ctx, "pick feed ad error", "err", err)
	}
	page.Ad = ad
	return page, nil
}

func (s *feedServiceImpl) rankedIDs(ctx context.Context, viewerID uint64, dimension model.Dimension) ([]uint64, error) {
	realFilter := dimension.RealFilter()

	var candidates []*model.Post
	var recent []uint64
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.postRepo.ListCandidates(gCtx, realFilter, s.feedCfg.CandidateLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.postRepo.ListPostIDs(gCtx, repository.PostFilter{
			RealFilter: realFilter,
			Order:      consts.OrderPostedAt,
			Limit:      s.feedCfg.DiscoveryPool,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidateIDs := make([]uint64, 0, len(candidates))
	for _, p := range candidates {
		candidateIDs = append(candidateIDs, p.ID)
	}

	var followed map[uint64]struct{}
	var watch map[uint64]int64
	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followed, err = s.userFollowSvc.FollowedPosterSet(gCtx, viewerID)
		return err
	})
	g.Go(func() error {
		var err error
		watch, err = s.viewDurationRepo.CountWatches(gCtx, viewerID, candidateIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scorer := ranking.NewScorer(s.now(), s.weights)
	shape := ranking.FeedShape{TopK: s.feedCfg.TopK, DiscoverySize: s.feedCfg.DiscoverySize}
	return ranking.Assemble(scorer, candidates, recent, viewerID, followed, watch, shape, s.pageRand()), nil
}

// pageRand a private generator for one page. The shared rand.Rand is not safe
// for concurrent use, so the lock covers only the seed draw.
func (s *feedServiceImpl) pageRand() *rand.Rand {
	s.mu.Lock()
	seed1, seed2 := s.rng.Uint64(), s.rng.Uint64()
	s.mu.Unlock()
	return rand.New(rand.NewPCG(seed1, seed2))
}
