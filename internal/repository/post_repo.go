package repository

import (
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PostFilter selects and orders an id list. A nil PosterIDs matches every
// poster, an empty non-nil one matches none.
type PostFilter struct {
	RealFilter *bool
	Hashtag    string
	PosterIDs  []uint64
	Order      string
	Limit      int
}

type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListPostIDs(ctx context.Context, filter PostFilter) ([]uint64, error)
	ListCandidates(ctx context.Context, realFilter *bool, limit int) ([]*model.Post, error)
	IncrViewsCount(ctx context.Context, id uint64) (*model.Post, error)
	IncrEmoteCount(ctx context.Context, id uint64, slot model.EmoteSlot, clicks int64) (*model.Post, error)
	UpdateFavoriteCount(ctx context.Context, id uint64, count int64, rate float64) error
	UpdateRates(ctx context.Context, id uint64, favoriteRate float64, qp *float64) error
	TopHashtags(ctx context.Context, since time.Time, limit int) ([]string, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// GetPost nil without error when the post does not exist
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("Poster").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostByIds unordered; callers reorder by their id list
func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("Poster").Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostIDs(ctx context.Context, filter PostFilter) ([]uint64, error) {
	if filter.PosterIDs != nil && len(filter.PosterIDs) == 0 {
		return []uint64{}, nil
	}
	query := s.visible(ctx, filter.RealFilter)
	if filter.Hashtag != "" {
		query = query.Where("(hashtag1 = ? OR hashtag2 = ? OR hashtag3 = ?)", filter.Hashtag, filter.Hashtag, filter.Hashtag)
	}
	if filter.PosterIDs != nil {
		query = query.Where("poster_id IN ?", filter.PosterIDs)
	}
	switch filter.Order {
	case consts.OrderQP:
		query = query.Order("qp DESC").Order("id DESC")
	case consts.OrderFavorite:
		query = query.Order("favorite_count DESC").Order("id DESC")
	default:
		query = query.Order("posted_at DESC").Order("id DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var ids []uint64
	err := query.Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListCandidates newest visible posts carrying the counters RP needs
func (s *PostRepoImpl) ListCandidates(ctx context.Context, realFilter *bool, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.visible(ctx, realFilter).
		Order("posted_at DESC").Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrViewsCount returns the post as stored after the increment
func (s *PostRepoImpl) IncrViewsCount(ctx context.Context, id uint64) (*model.Post, error) {
	return s.incrAndGet(ctx, id, "views_count", 1)
}

// IncrEmoteCount adds clicks to one emote column and reads the row back under the row lock
func (s *PostRepoImpl) IncrEmoteCount(ctx context.Context, id uint64, slot model.EmoteSlot, clicks int64) (*model.Post, error) {
	return s.incrAndGet(ctx, id, slot.Column(), clicks)
}

// incrAndGet nil without error when the post does not exist
func (s *PostRepoImpl) incrAndGet(ctx context.Context, id uint64, column string, delta int64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) UpdateFavoriteCount(ctx context.Context, id uint64, count int64, rate float64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"favorite_count": count,
			"favorite_rate":  rate,
		}).Error
}

// UpdateRates qp is left untouched when nil
func (s *PostRepoImpl) UpdateRates(ctx context.Context, id uint64, favoriteRate float64, qp *float64) error {
	updates := map[string]interface{}{"favorite_rate": favoriteRate}
	if qp != nil {
		updates["qp"] = *qp
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumns(updates).Error
}

// TopHashtags most used tags over the three slots of visible posts since a time
func (s *PostRepoImpl) TopHashtags(ctx context.Context, since time.Time, limit int) ([]string, error) {
	var tags []string
	err := s.db.WithContext(ctx).Raw(`
		SELECT tag FROM (
			SELECT hashtag1 AS tag FROM posts WHERE is_hidden = 0 AND posted_at >= ? AND hashtag1 <> ''
			UNION ALL
			SELECT hashtag2 AS tag FROM posts WHERE is_hidden = 0 AND posted_at >= ? AND hashtag2 <> ''
			UNION ALL
			SELECT hashtag3 AS tag FROM posts WHERE is_hidden = 0 AND posted_at >= ? AND hashtag3 <> ''
		) t
		GROUP BY tag
		ORDER BY COUNT(*) DESC, tag ASC
		LIMIT ?`, since, since, since, limit).
		Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *PostRepoImpl) visible(ctx context.Context, realFilter *bool) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("is_hidden = ?", false)
	if realFilter != nil {
		query = query.Where("is_real = ?", *realFilter)
	}
	return query
}
