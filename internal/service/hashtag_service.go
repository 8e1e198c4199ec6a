package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/es"
	"Viewy/internal/pkg/redis"
	"Viewy/internal/pkg/util"
	"Viewy/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

const (
	HotHashtagCount    = 4
	HotHashtagPosts    = 9
	HotHashtagWindow   = 7 * 24 * time.Hour
	hotHashtagCacheTTL = 2 * time.Hour
)

type HashtagService interface {
	HotHashtags(ctx context.Context, dimension model.Dimension) (*dto.HotHashtagsDTO, error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
	RefreshHotHashtags(ctx context.Context) ([]string, error)
}

type hashtagServiceImpl struct {
	postRepo   repository.PostRepo
	actionRepo repository.PostActionRepo
	postESRepo es.PostRepo
	adSvc      AdService
}

func NewHashtagService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	postESRepo es.PostRepo,
	adSvc AdService,
) HashtagService {
	return &hashtagServiceImpl{
		postRepo:   postRepo,
		actionRepo: actionRepo,
		postESRepo: postESRepo,
		adSvc:      adSvc,
	}
}

// HotHashtags current hot set, each tag with its newest visible posts, plus a wide ad
func (s *hashtagServiceImpl) HotHashtags(ctx context.Context, dimension model.Dimension) (*dto.HotHashtagsDTO, error) {
	tags, err := s.currentTags(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.HotHashtagsDTO{Hashtags: make([]*dto.HotHashtagDTO, 0, len(tags))}
	for _, tag := range tags {
		ids, err := s.postRepo.ListPostIDs(ctx, repository.PostFilter{
			RealFilter: dimension.RealFilter(),
			Hashtag:    tag,
			Order:      consts.OrderPostedAt,
			Limit:      HotHashtagPosts,
		})
		if err != nil {
			return nil, err
		}
		posts, err := s.postRepo.GetPostByIds(ctx, ids)
		if err != nil {
			return nil, err
		}
		result.Hashtags = append(result.Hashtags, &dto.HotHashtagDTO{
			Hashtag: tag,
			Posts:   toPostDTOs(ids, posts),
		})
	}

	ad, err := s.adSvc.PickAd(ctx, model.AdKindWide)
	if err != nil {
		log.WarnContext(ctx, "pick wide ad error", "err", err)
	}
	result.Ad = ad
	return result, nil
}

// Suggest up to es.MaxSuggestions hashtags starting with the normalized prefix
func (s *hashtagServiceImpl) Suggest(ctx context.Context, prefix string) ([]string, error) {
	normalized := util.NormalizeHashtag(prefix)
	if normalized == "" {
		return []string{}, nil
	}
	return s.postESRepo.SuggestHashtags(ctx, normalized)
}

// RefreshHotHashtags stores the most used tags of the last week as the new hot set
func (s *hashtagServiceImpl) RefreshHotHashtags(ctx context.Context) ([]string, error) {
	tags, err := s.postRepo.TopHashtags(ctx, time.Now().Add(-HotHashtagWindow), HotHashtagCount)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return tags, nil
	}

	hot := &model.HotHashtag{CreatedAt: time.Now()}
	slots := []*string{&hot.Hashtag1, &hot.Hashtag2, &hot.Hashtag3, &hot.Hashtag4}
	for i, tag := range tags {
		*slots[i] = tag
	}
	if err = s.actionRepo.CreateHotHashtag(ctx, hot); err != nil {
		return nil, err
	}
	s.cacheTags(ctx, tags)
	return tags, nil
}

// currentTags cached copy of the newest hot_hashtags row
func (s *hashtagServiceImpl) currentTags(ctx context.Context) ([]string, error) {
	cached, err := redis.GetValue(ctx, consts.HotHashtagKey)
	if err != nil {
		log.WarnContext(ctx, "read hot hashtag cache error", "err", err)
	}
	if cached != "" {
		var tags []string
		if err = json.Unmarshal([]byte(cached), &tags); err == nil {
			return tags, nil
		}
	}

	hot, err := s.actionRepo.GetLatestHotHashtag(ctx)
	if err != nil {
		return nil, err
	}
	if hot == nil {
		return []string{}, nil
	}
	tags := hot.Tags()
	s.cacheTags(ctx, tags)
	return tags, nil
}

func (s *hashtagServiceImpl) cacheTags(ctx context.Context, tags []string) {
	data, err := json.Marshal(tags)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.HotHashtagKey, string(data), hotHashtagCacheTTL); err != nil {
		log.WarnContext(ctx, "write hot hashtag cache error", "err", err)
	}
}
