package repository

import (
	"Viewy/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateFavorite(ctx context.Context, favorite *model.Favorite) error
	DeleteFavorite(ctx context.Context, userID, postID uint64) (bool, error)
	FilterFavorited(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error)
	GetFavoriteCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetFavoritedPostIDs(ctx context.Context, userID uint64, limit int) ([]uint64, error)

	CreateReport(ctx context.Context, report *model.Report) error
	FilterReported(ctx context.Context, reporterID uint64, postIDs []uint64) ([]uint64, error)

	GetLatestHotHashtag(ctx context.Context) (*model.HotHashtag, error)
	CreateHotHashtag(ctx context.Context, hot *model.HotHashtag) error
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) CreateFavorite(ctx context.Context, favorite *model.Favorite) error {
	return s.db.WithContext(ctx).Create(favorite).Error
}

// DeleteFavorite reports whether a row was removed
func (s *PostActionRepoImpl) DeleteFavorite(ctx context.Context, userID, postID uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Favorite{})
	return result.RowsAffected > 0, result.Error
}

// FilterFavorited the subset of postIDs the user has favorited
func (s *PostActionRepoImpl) FilterFavorited(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	if len(postIDs) == 0 {
		return []uint64{}, nil
	}
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}

func (s *PostActionRepoImpl) GetFavoriteCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// GetFavoritedPostIDs newest favorite first, hidden posts skipped
func (s *PostActionRepoImpl) GetFavoritedPostIDs(ctx context.Context, userID uint64, limit int) ([]uint64, error) {
	var postIDs []uint64
	query := s.db.WithContext(ctx).Model(&model.Favorite{}).
		Joins("JOIN posts ON posts.id = favorites.post_id").
		Where("favorites.user_id = ? AND posts.is_hidden = ?", userID, false).
		Order("favorites.created_at DESC").Order("favorites.post_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Pluck("favorites.post_id", &postIDs).Error
	return postIDs, err
}

// CreateReport inserts the report and bumps the post and reporter counters in one transaction.
// A duplicate (reporter, post) surfaces as the driver's duplicate key error.
func (s *PostActionRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).Where("id = ?", report.PostID).
			UpdateColumn("report_count", gorm.Expr("report_count + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", report.ReporterID).
			UpdateColumn("report_count", gorm.Expr("report_count + ?", 1)).Error
	})
}

// FilterReported the subset of postIDs the reporter has already reported
func (s *PostActionRepoImpl) FilterReported(ctx context.Context, reporterID uint64, postIDs []uint64) ([]uint64, error) {
	if len(postIDs) == 0 {
		return []uint64{}, nil
	}
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("reporter_id = ? AND post_id IN ?", reporterID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}

// GetLatestHotHashtag nil when no set was computed yet
func (s *PostActionRepoImpl) GetLatestHotHashtag(ctx context.Context) (*model.HotHashtag, error) {
	var hot model.HotHashtag
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").First(&hot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hot, nil
}

func (s *PostActionRepoImpl) CreateHotHashtag(ctx context.Context, hot *model.HotHashtag) error {
	return s.db.WithContext(ctx).Create(hot).Error
}
