package repository

import (
	"Viewy/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowRepo interface {
	GetFollowedPosterIDs(ctx context.Context, userID uint64) ([]uint64, error)
	GetFollowedPosters(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetUserFollow(ctx context.Context, userID uint64, posterID uint64) (*model.Follow, error)
	CreateUserFollow(ctx context.Context, follow *model.Follow) error
	DeleteUserFollow(ctx context.Context, follow *model.Follow) error
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// GetFollowedPosterIDs every poster the user follows
func (s *UserFollowRepoImpl) GetFollowedPosterIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Pluck("poster_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// GetFollowedPosters newest follow first
func (s *UserFollowRepoImpl) GetFollowedPosters(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	result := s.db.WithContext(ctx).
		Table("users").
		Select("users.*").
		Joins("JOIN follows ON follows.poster_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserFollowRepoImpl) GetUserFollow(ctx context.Context, userID uint64, posterID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND poster_id = ?", userID, posterID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

func (s *UserFollowRepoImpl) CreateUserFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

func (s *UserFollowRepoImpl) DeleteUserFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND poster_id = ?", follow.UserID, follow.PosterID).
		Delete(&model.Follow{}).Error
}
