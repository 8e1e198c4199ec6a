package service

import (
	"Viewy/internal/api/config"
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/mongo"
	"Viewy/internal/pkg/ranking"
	"Viewy/internal/repository"
	"context"
	"fmt"
	"math/rand/v2"
	"reflect"
	"sync"
	"testing"
	"time"
)

var (
	testFeedCfg = config.FeedConfig{
		TopK:           7,
		DiscoverySize:  2,
		DiscoveryPool:  100,
		CandidateLimit: 1000,
		PageSize:       9,
		AnonymousLimit: 9,
	}
	testRankCfg = config.RankConfig{
		RecencyWeight:        10,
		RecencyHalfLifeHours: 24,
		EngagementWeight:     1,
		FavoriteWeight:       3,
		FollowBoost:          5,
		WatchPenalty:         0.5,
	}
	testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func pageIDs(posts []*dto.PostDTO) []uint64 {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

// seedFeedPosts 30 posts from two posters, odd ids real, counters spread out
func seedFeedPosts(store *memStore) {
	store.users[1] = &model.User{ID: 1, Username: "viewer", Dimension: float64(model.DimensionAll)}
	store.users[2] = &model.User{ID: 2, Username: "poster-a"}
	store.users[3] = &model.User{ID: 3, Username: "poster-b"}
	for i := uint64(1); i <= 30; i++ {
		poster := uint64(2)
		if i%3 == 0 {
			poster = 3
		}
		store.addPost(&model.Post{
			ID:            i,
			PosterID:      poster,
			IsReal:        i%2 == 1,
			ViewsCount:    int64(i * 10),
			FavoriteCount: int64((i * 7) % 13),
			FavoriteRate:  model.FavoriteRate(int64((i*7)%13), int64(i*10)),
			Emote1Count:   int64(i % 5),
			PostedAt:      testNow.Add(-time.Duration(i) * time.Hour),
		})
	}
}

func newFeedFixture(seed uint64) (*memStore, *memViewDurations, *feedServiceImpl) {
	mr.FlushAll()
	store := newMemStore()
	seedFeedPosts(store)
	durations := &memViewDurations{}
	ads := &memAds{ads: map[model.AdKind][]*model.Advertisement{
		model.AdKindStandard: {{ID: 1, Title: "ad", IsActive: true}},
	}}
	svc := newFeedService(
		store,
		store,
		NewUserFollowService(store, store),
		durations,
		newAdService(ads, rand.New(rand.NewPCG(1, 1))),
		testFeedCfg,
		testRankCfg,
		func() time.Time { return testNow },
		rand.New(rand.NewPCG(seed, seed)),
	)
	return store, durations, svc
}

func TestBuildPageAnonymous(t *testing.T) {
	store, _, svc := newFeedFixture(1)
	ctx := context.Background()

	page, err := svc.BuildPage(ctx, 0, model.DimensionAll)
	if err != nil {
		t.Fatalf("BuildPage: %v", err)
	}
	want, _ := store.ListPostIDs(ctx, repository.PostFilter{Order: consts.OrderFavorite, Limit: 9})
	if got := pageIDs(page.Posts); !reflect.DeepEqual(got, want) {
		t.Fatalf("anonymous page = %v, want %v", got, want)
	}
	for i := 1; i < len(page.Posts); i++ {
		if page.Posts[i-1].FavoriteCount < page.Posts[i].FavoriteCount {
			t.Fatalf("page not ordered by favorite_count at %d: %v", i, want)
		}
	}
	if page.Ad == nil || page.Ad.Kind != string(model.AdKindStandard) {
		t.Fatalf("ad = %+v, want the standard ad", page.Ad)
	}
}

func TestBuildPageRanked(t *testing.T) {
	store, durations, svc := newFeedFixture(42)
	ctx := context.Background()
	store.follows[1] = []uint64{3}
	durations.records = append(durations.records,
		&mongo.ViewDuration{UserID: 1, PostID: 2, Duration: 5},
		&mongo.ViewDuration{UserID: 1, PostID: 2, Duration: 7},
	)

	page, err := svc.BuildPage(ctx, 1, model.DimensionAll)
	if err != nil {
		t.Fatalf("BuildPage: %v", err)
	}

	candidates, _ := store.ListCandidates(ctx, nil, testFeedCfg.CandidateLimit)
	recent, _ := store.ListPostIDs(ctx, repository.PostFilter{Order: consts.OrderPostedAt, Limit: testFeedCfg.DiscoveryPool})
	ids := make([]uint64, 0, len(candidates))
	for _, p := range candidates {
		ids = append(ids, p.ID)
	}
	watch, _ := durations.CountWatches(ctx, 1, ids)
	want := ranking.Assemble(
		ranking.NewScorer(testNow, svc.weights),
		candidates, recent, 1,
		map[uint64]struct{}{3: {}},
		watch,
		ranking.FeedShape{TopK: 7, DiscoverySize: 2},
		pageRandFrom(42),
	)

	got := pageIDs(page.Posts)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranked page = %v, want %v", got, want)
	}
	if len(got) != 9 {
		t.Fatalf("page size = %d, want 9", len(got))
	}
}

// pageRandFrom the per-page generator the first BuildPage derives from a service seeded with seed
func pageRandFrom(seed uint64) *rand.Rand {
	src := rand.New(rand.NewPCG(seed, seed))
	seed1, seed2 := src.Uint64(), src.Uint64()
	return rand.New(rand.NewPCG(seed1, seed2))
}

func TestBuildPageConcurrent(t *testing.T) {
	_, _, svc := newFeedFixture(3)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(viewerID uint64) {
			defer wg.Done()
			page, err := svc.BuildPage(ctx, viewerID, model.DimensionAll)
			if err == nil && len(page.Posts) != 9 {
				err = fmt.Errorf("viewer %d page size %d, want 9", viewerID, len(page.Posts))
			}
			errs <- err
		}(uint64(i%4 + 1))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildPageDimensionFilter(t *testing.T) {
	tests := []struct {
		name      string
		dimension model.Dimension
		wantReal  bool
	}{
		{name: "non-real viewer", dimension: model.DimensionNonReal, wantReal: false},
		{name: "real viewer", dimension: model.DimensionReal, wantReal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, svc := newFeedFixture(7)
			page, err := svc.BuildPage(context.Background(), 1, tt.dimension)
			if err != nil {
				t.Fatalf("BuildPage: %v", err)
			}
			if len(page.Posts) == 0 {
				t.Fatal("empty page")
			}
			for _, p := range page.Posts {
				if store.post(p.ID).IsReal != tt.wantReal {
					t.Fatalf("post %d is_real = %v, want %v", p.ID, !tt.wantReal, tt.wantReal)
				}
			}
		})
	}
}

func TestBuildPageEmpty(t *testing.T) {
	mr.FlushAll()
	store := newMemStore()
	svc := newFeedService(store, store, NewUserFollowService(store, store), &memViewDurations{},
		newAdService(&memAds{}, rand.New(rand.NewPCG(1, 1))), testFeedCfg, testRankCfg,
		func() time.Time { return testNow }, rand.New(rand.NewPCG(1, 1)))

	page, err := svc.BuildPage(context.Background(), 1, model.DimensionAll)
	if err != nil {
		t.Fatalf("BuildPage: %v", err)
	}
	if len(page.Posts) != 0 || page.Ad != nil {
		t.Fatalf("page = %+v, want no posts and no ad", page)
	}
}
