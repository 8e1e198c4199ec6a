package service

import (
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/metrics"
	"Viewy/internal/pkg/redis"
	"Viewy/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// DefaultPosterCacheTTL staleness tolerated for the is-poster flag
const DefaultPosterCacheTTL = 10 * time.Minute

type UserService interface {
	IsPoster(ctx context.Context, userID uint64) (bool, error)
	GetDimension(ctx context.Context, userID uint64) (model.Dimension, error)
}

type userServiceImpl struct {
	userRepo      repository.UserRepo
	userRolesRepo repository.UserRolesRepo
	posterTTL     time.Duration
}

func NewUserService(userRepo repository.UserRepo, userRolesRepo repository.UserRolesRepo, posterTTL time.Duration) UserService {
	if posterTTL <= 0 {
		posterTTL = DefaultPosterCacheTTL
	}
	return &userServiceImpl{
		userRepo:      userRepo,
		userRolesRepo: userRolesRepo,
		posterTTL:     posterTTL,
	}
}

// IsPoster cached per user and only ever refreshed by expiry
func (s *userServiceImpl) IsPoster(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	key := consts.UserIsPosterKey + strconv.FormatUint(userID, 10)
	cached, err := redis.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "read is-poster cache error", "user_id", userID, "err", err)
	}
	if cached != "" {
		metrics.RecordPosterCache(true)
		return cached == consts.TrueString, nil
	}
	metrics.RecordPosterCache(false)

	isPoster, err := s.userRolesRepo.GetUserHasRoleName(ctx, userID, model.RolePoster)
	if err != nil {
		return false, err
	}
	value := consts.FalseString
	if isPoster {
		value = consts.TrueString
	}
	if err = redis.SetWithExpiration(ctx, key, value, s.posterTTL); err != nil {
		log.WarnContext(ctx, "write is-poster cache error", "user_id", userID, "err", err)
	}
	return isPoster, nil
}

// GetDimension anonymous viewers see both partitions
func (s *userServiceImpl) GetDimension(ctx context.Context, userID uint64) (model.Dimension, error) {
	if userID == 0 {
		return model.DimensionAll, nil
	}
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return model.Dimension(user.Dimension), nil
}
