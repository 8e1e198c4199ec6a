package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/minio"
	"Viewy/internal/repository"
	"context"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, userID, posterID uint64) error
	Unfollow(ctx context.Context, userID, posterID uint64) error
	GetFollowedPosters(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PosterDTO, error)
	FollowedPosterSet(ctx context.Context, userID uint64) (map[uint64]struct{}, error)
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &UserFollowServiceImpl{userFollowRepo: userFollowRepo, userRepo: userRepo}
}

func (s *UserFollowServiceImpl) Follow(ctx context.Context, userID, posterID uint64) error {
	if userID == posterID {
		return ErrUserFollowSelf
	}
	poster, err := s.userRepo.GetUserById(ctx, posterID)
	if err != nil {
		return err
	}
	if poster == nil {
		return ErrUserNotFound
	}
	existing, err := s.userFollowRepo.GetUserFollow(ctx, userID, posterID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserFollowExist
	}
	return s.userFollowRepo.CreateUserFollow(ctx, &model.Follow{
		UserID:    userID,
		PosterID:  posterID,
		CreatedAt: time.Now(),
	})
}

// Unfollow is a no-op when the edge is absent
func (s *UserFollowServiceImpl) Unfollow(ctx context.Context, userID, posterID uint64) error {
	if userID == posterID {
		return ErrUserFollowSelf
	}
	return s.userFollowRepo.DeleteUserFollow(ctx, &model.Follow{UserID: userID, PosterID: posterID})
}

func (s *UserFollowServiceImpl) GetFollowedPosters(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PosterDTO, error) {
	users, err := s.userFollowRepo.GetFollowedPosters(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.PosterDTO, 0, len(users))
	for _, u := range users {
		avatar := u.AvatarKey
		if avatar == "" {
			avatar = consts.DefaultAvatarURL
		}
		list = append(list, &dto.PosterDTO{
			ID:        u.ID,
			Username:  u.Username,
			AvatarURL: minio.GetPublicURL(avatar),
		})
	}
	return list, nil
}

// FollowedPosterSet empty for anonymous viewers
func (s *UserFollowServiceImpl) FollowedPosterSet(ctx context.Context, userID uint64) (map[uint64]struct{}, error) {
	if userID == 0 {
		return map[uint64]struct{}{}, nil
	}
	ids, err := s.userFollowRepo.GetFollowedPosterIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return idSet(ids), nil
}
