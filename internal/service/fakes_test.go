package service

import (
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/es"
	"Viewy/internal/pkg/mongo"
	"Viewy/internal/pkg/util"
	"Viewy/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

var errDuplicate = &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

type favKey struct{ userID, postID uint64 }

// memStore backs the post, action, user and follow repositories with maps
type memStore struct {
	mu        sync.Mutex
	posts     map[uint64]*model.Post
	users     map[uint64]*model.User
	posters   map[uint64]bool
	favorites map[favKey]time.Time
	reports   map[favKey]*model.Report
	follows   map[uint64][]uint64
	hot       []*model.HotHashtag
	roleCalls int
}

func newMemStore() *memStore {
	return &memStore{
		posts:     map[uint64]*model.Post{},
		users:     map[uint64]*model.User{},
		posters:   map[uint64]bool{},
		favorites: map[favKey]time.Time{},
		reports:   map[favKey]*model.Report{},
		follows:   map[uint64][]uint64{},
	}
}

func (m *memStore) addPost(p *model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[p.ID] = p
}

func (m *memStore) post(id uint64) model.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.posts[id]
}

// PostRepo

func (m *memStore) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) GetPostByIds(_ context.Context, ids []uint64) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Post, 0, len(ids))
	seen := map[uint64]bool{}
	for _, id := range ids {
		if p, ok := m.posts[id]; ok && !seen[id] {
			seen[id] = true
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) visible(realFilter *bool) []*model.Post {
	out := make([]*model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		if p.IsHidden {
			continue
		}
		if realFilter != nil && p.IsReal != *realFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (m *memStore) ListPostIDs(_ context.Context, f repository.PostFilter) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posters map[uint64]bool
	if f.PosterIDs != nil {
		posters = map[uint64]bool{}
		for _, id := range f.PosterIDs {
			posters[id] = true
		}
	}
	var list []*model.Post
	for _, p := range m.visible(f.RealFilter) {
		if f.Hashtag != "" && p.Hashtag1 != f.Hashtag && p.Hashtag2 != f.Hashtag && p.Hashtag3 != f.Hashtag {
			continue
		}
		if posters != nil && !posters[p.PosterID] {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch f.Order {
		case consts.OrderQP:
			if a.QP != b.QP {
				return a.QP > b.QP
			}
		case consts.OrderFavorite:
			if a.FavoriteCount != b.FavoriteCount {
				return a.FavoriteCount > b.FavoriteCount
			}
		default:
			if !a.PostedAt.Equal(b.PostedAt) {
				return a.PostedAt.After(b.PostedAt)
			}
		}
		return a.ID > b.ID
	})
	if f.Limit > 0 && len(list) > f.Limit {
		list = list[:f.Limit]
	}
	ids := make([]uint64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (m *memStore) ListCandidates(ctx context.Context, realFilter *bool, limit int) ([]*model.Post, error) {
	ids, _ := m.ListPostIDs(ctx, repository.PostFilter{RealFilter: realFilter, Order: consts.OrderPostedAt, Limit: limit})
	posts, _ := m.GetPostByIds(ctx, ids)
	byID := map[uint64]*model.Post{}
	for _, p := range posts {
		byID[p.ID] = p
	}
	out := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out, nil
}

func (m *memStore) IncrViewsCount(_ context.Context, id uint64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	p.ViewsCount++
	cp := *p
	return &cp, nil
}

func (m *memStore) IncrEmoteCount(_ context.Context, id uint64, slot model.EmoteSlot, clicks int64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	counters := []*int64{&p.Emote1Count, &p.Emote2Count, &p.Emote3Count, &p.Emote4Count, &p.Emote5Count}
	*counters[int(slot)-1] += clicks
	cp := *p
	return &cp, nil
}

func (m *memStore) UpdateFavoriteCount(_ context.Context, id uint64, count int64, rate float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.posts[id]; ok {
		p.FavoriteCount = count
		p.FavoriteRate = rate
	}
	return nil
}

func (m *memStore) UpdateRates(_ context.Context, id uint64, favoriteRate float64, qp *float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.posts[id]; ok {
		p.FavoriteRate = favoriteRate
		if qp != nil {
			p.QP = *qp
		}
	}
	return nil
}

func (m *memStore) TopHashtags(_ context.Context, since time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int{}
	for _, p := range m.visible(nil) {
		if p.PostedAt.Before(since) {
			continue
		}
		for _, t := range p.Hashtags() {
			counts[t]++
		}
	}
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

// PostActionRepo

func (m *memStore) CreateFavorite(_ context.Context, f *model.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := favKey{f.UserID, f.PostID}
	if _, ok := m.favorites[k]; ok {
		return errDuplicate
	}
	m.favorites[k] = f.CreatedAt
	return nil
}

func (m *memStore) DeleteFavorite(_ context.Context, userID, postID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := favKey{userID, postID}
	_, ok := m.favorites[k]
	delete(m.favorites, k)
	return ok, nil
}

func (m *memStore) FilterFavorited(_ context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []uint64{}
	for _, id := range postIDs {
		if _, ok := m.favorites[favKey{userID, id}]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (m *memStore) FilterReported(_ context.Context, reporterID uint64, postIDs []uint64) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []uint64{}
	for _, id := range postIDs {
		if _, ok := m.reports[favKey{reporterID, id}]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (m *memStore) GetFavoriteCountByPostID(_ context.Context, postID uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.favorites {
		if k.postID == postID {
			n++
		}
	}
	return n, nil
}

func (m *memStore) GetFavoritedPostIDs(_ context.Context, userID uint64, limit int) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	type fav struct {
		postID uint64
		at     time.Time
	}
	var list []fav
	for k, at := range m.favorites {
		if p, ok := m.posts[k.postID]; k.userID == userID && ok && !p.IsHidden {
			list = append(list, fav{k.postID, at})
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].at.Equal(list[j].at) {
			return list[i].at.After(list[j].at)
		}
		return list[i].postID > list[j].postID
	})
	ids := make([]uint64, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.postID)
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *memStore) CreateReport(_ context.Context, r *model.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := favKey{r.ReporterID, r.PostID}
	if _, ok := m.reports[k]; ok {
		return errDuplicate
	}
	m.reports[k] = r
	if p, ok := m.posts[r.PostID]; ok {
		p.ReportCount++
	}
	if u, ok := m.users[r.ReporterID]; ok {
		u.ReportCount++
	}
	return nil
}

func (m *memStore) GetLatestHotHashtag(_ context.Context) (*model.HotHashtag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.hot) == 0 {
		return nil, nil
	}
	return m.hot[len(m.hot)-1], nil
}

func (m *memStore) CreateHotHashtag(_ context.Context, hot *model.HotHashtag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hot = append(m.hot, hot)
	return nil
}

// UserRepo, UserRolesRepo

func (m *memStore) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	out := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if u, _ := m.GetUserById(ctx, id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memStore) GetUserRoles(_ context.Context, userId uint64) ([]*model.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.posters[userId] {
		return []*model.Role{{ID: 1, Name: model.RolePoster}}, nil
	}
	return []*model.Role{}, nil
}

func (m *memStore) GetUserHasRoleName(_ context.Context, userId uint64, roleName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roleCalls++
	return roleName == model.RolePoster && m.posters[userId], nil
}

// UserFollowRepo

func (m *memStore) GetFollowedPosterIDs(_ context.Context, userID uint64) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint64(nil), m.follows[userID]...), nil
}

func (m *memStore) GetFollowedPosters(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	ids, _ := m.GetFollowedPosterIDs(ctx, userID)
	// newest follow first
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	if offset >= len(ids) {
		return []*model.User{}, nil
	}
	ids = ids[offset:]
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return m.GetUserByIds(ctx, ids)
}

func (m *memStore) GetUserFollow(_ context.Context, userID uint64, posterID uint64) (*model.Follow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.follows[userID] {
		if id == posterID {
			return &model.Follow{UserID: userID, PosterID: posterID}, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateUserFollow(_ context.Context, f *model.Follow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.follows[f.UserID] {
		if id == f.PosterID {
			return nil
		}
	}
	m.follows[f.UserID] = append(m.follows[f.UserID], f.PosterID)
	return nil
}

func (m *memStore) DeleteUserFollow(_ context.Context, f *model.Follow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.follows[f.UserID]
	for i, id := range ids {
		if id == f.PosterID {
			m.follows[f.UserID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// memViewDurations mongo.ViewDurationRepo
type memViewDurations struct {
	mu      sync.Mutex
	records []*mongo.ViewDuration
}

func (v *memViewDurations) SaveViewDuration(_ context.Context, d *mongo.ViewDuration) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.records = append(v.records, d)
	return nil
}

func (v *memViewDurations) CountWatches(_ context.Context, userID uint64, postIDs []uint64) (map[uint64]int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	want := map[uint64]bool{}
	for _, id := range postIDs {
		want[id] = true
	}
	counts := map[uint64]int64{}
	for _, r := range v.records {
		if r.UserID == userID && want[r.PostID] {
			counts[r.PostID]++
		}
	}
	return counts, nil
}

// memAds repository.AdRepo
type memAds struct {
	mu  sync.Mutex
	ads map[model.AdKind][]*model.Advertisement
}

func (a *memAds) GetActiveAds(_ context.Context, kind model.AdKind) ([]*model.Advertisement, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []*model.Advertisement
	for _, ad := range a.ads[kind] {
		if ad.IsActive {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (a *memAds) incr(kind model.AdKind, id uint64, click bool) *model.Advertisement {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ad := range a.ads[kind] {
		if ad.ID == id {
			if click {
				ad.ClickCount++
			} else {
				ad.ViewsCount++
			}
			ad.ClickRate = model.ClickRate(ad.ClickCount, ad.ViewsCount)
			cp := *ad
			return &cp
		}
	}
	return nil
}

func (a *memAds) IncrViewsCount(_ context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error) {
	return a.incr(kind, id, false), nil
}

func (a *memAds) IncrClickCount(_ context.Context, kind model.AdKind, id uint64) (*model.Advertisement, error) {
	return a.incr(kind, id, true), nil
}

// memSuggest es.PostRepo
type memSuggest struct {
	tags       []string
	lastPrefix string
}

func (e *memSuggest) IndexPost(context.Context, *es.PostES, int64) error { return nil }

func (e *memSuggest) DeletePost(context.Context, uint64) error { return nil }

func (e *memSuggest) SuggestHashtags(_ context.Context, prefix string) ([]string, error) {
	e.lastPrefix = prefix
	out := []string{}
	for _, t := range e.tags {
		if strings.HasPrefix(util.NormalizeHashtag(t), prefix) {
			out = append(out, t)
		}
	}
	return out, nil
}

var (
	_ repository.PostRepo       = (*memStore)(nil)
	_ repository.PostActionRepo = (*memStore)(nil)
	_ repository.UserRepo       = (*memStore)(nil)
	_ repository.UserRolesRepo  = (*memStore)(nil)
	_ repository.UserFollowRepo = (*memStore)(nil)
	_ repository.AdRepo         = (*memAds)(nil)
	_ mongo.ViewDurationRepo    = (*memViewDurations)(nil)
	_ es.PostRepo               = (*memSuggest)(nil)
)
