package service

import (
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/metrics"
	"Viewy/internal/pkg/mongo"
	"Viewy/internal/pkg/redis"
	"Viewy/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

type PostActionService interface {
	ToggleFavorite(ctx context.Context, userID, postID uint64) (bool, int64, error)
	IncrementView(ctx context.Context, postID uint64) (int64, error)
	SubmitReport(ctx context.Context, reporterID, postID uint64, reason string) (bool, error)
	IncrementEmote(ctx context.Context, postID uint64, slot int, clicks int64) (int64, error)
	RecordViewDuration(ctx context.Context, userID, postID uint64, seconds float64) error
	RefreshQP(ctx context.Context, postID uint64) error
}

type postActionServiceImpl struct {
	actionRepo       repository.PostActionRepo
	postRepo         repository.PostRepo
	viewDurationRepo mongo.ViewDurationRepo
	qpWeights        model.QPWeights
	qpPolicy         QPPolicy
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	viewDurationRepo mongo.ViewDurationRepo,
	qpWeights model.QPWeights,
	qpPolicy QPPolicy,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo:       actionRepo,
		postRepo:         postRepo,
		viewDurationRepo: viewDurationRepo,
		qpWeights:        qpWeights,
		qpPolicy:         qpPolicy,
	}
}

// ToggleFavorite removes the favorite when present, creates it otherwise, then
// resyncs favorite_count from the favorites table. Returns the new state and count.
func (s *postActionServiceImpl) ToggleFavorite(ctx context.Context, userID, postID uint64) (bool, int64, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	removed, err := s.actionRepo.DeleteFavorite(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}
	favorited := false
	if !removed {
		err = s.actionRepo.CreateFavorite(ctx, &model.Favorite{UserID: userID, PostID: postID, CreatedAt: time.Now()})
		switch {
		case err == nil:
			favorited = true
		case isDuplicateError(err):
			// a concurrent toggle created it first
			if _, err = s.actionRepo.DeleteFavorite(ctx, userID, postID); err != nil {
				return false, 0, err
			}
		default:
			return false, 0, err
		}
	}

	count, err := s.actionRepo.GetFavoriteCountByPostID(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	err = s.postRepo.UpdateFavoriteCount(ctx, postID, count, model.FavoriteRate(count, post.ViewsCount))
	if err != nil {
		return false, 0, err
	}
	s.markQPDirty(ctx, postID)
	metrics.RecordEngagement("favorite")
	return favorited, count, nil
}

// IncrementView +1 on every call, no dedup
func (s *postActionServiceImpl) IncrementView(ctx context.Context, postID uint64) (int64, error) {
	post, err := s.postRepo.IncrViewsCount(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	rate := model.FavoriteRate(post.FavoriteCount, post.ViewsCount)
	var qp *float64
	if s.qpPolicy != nil && s.qpPolicy.RecomputeInline(post.ViewsCount) {
		v := model.QualityPoint(post, s.qpWeights)
		qp = &v
	}
	if err = s.postRepo.UpdateRates(ctx, postID, rate, qp); err != nil {
		return 0, err
	}
	if qp == nil {
		s.markQPDirty(ctx, postID)
	}
	metrics.RecordEngagement("view")
	return post.ViewsCount, nil
}

// SubmitReport true when the reporter already reported the post; counters stay untouched then
func (s *postActionServiceImpl) SubmitReport(ctx context.Context, reporterID, postID uint64, reason string) (bool, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return false, err
	}
	err := s.actionRepo.CreateReport(ctx, &model.Report{
		ReporterID: reporterID,
		PostID:     postID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) {
			return true, nil
		}
		return false, err
	}
	metrics.RecordEngagement("report")
	return false, nil
}

// IncrementEmote atomic add of clicks (0 means 1) to one slot; returns the slot's new count
func (s *postActionServiceImpl) IncrementEmote(ctx context.Context, postID uint64, slot int, clicks int64) (int64, error) {
	emoteSlot, err := model.ParseEmoteSlot(slot)
	if err != nil {
		return 0, ErrEmoteSlotInvalid
	}
	if clicks < 0 {
		return 0, ErrClicksInvalid
	}
	if clicks == 0 {
		clicks = 1
	}

	post, err := s.postRepo.IncrEmoteCount(ctx, postID, emoteSlot, clicks)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}
	s.markQPDirty(ctx, postID)
	metrics.RecordEngagement("emote")
	return emoteSlot.Count(post), nil
}

func (s *postActionServiceImpl) RecordViewDuration(ctx context.Context, userID, postID uint64, seconds float64) error {
	if seconds < 0 {
		return ErrDurationInvalid
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return err
	}
	return s.viewDurationRepo.SaveViewDuration(ctx, &mongo.ViewDuration{
		UserID:    userID,
		PostID:    postID,
		Duration:  seconds,
		CreatedAt: time.Now(),
	})
}

// RefreshQP recomputes favorite rate and QP from the stored counters
func (s *postActionServiceImpl) RefreshQP(ctx context.Context, postID uint64) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	qp := model.QualityPoint(post, s.qpWeights)
	return s.postRepo.UpdateRates(ctx, postID, model.FavoriteRate(post.FavoriteCount, post.ViewsCount), &qp)
}

func (s *postActionServiceImpl) getPost(ctx context.Context, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// markQPDirty queues the post for the QP refresh job, errors are only logged
func (s *postActionServiceImpl) markQPDirty(ctx context.Context, postID uint64) {
	if err := redis.SAdd(ctx, consts.PostQPDirtyKey, strconv.FormatUint(postID, 10)); err != nil {
		log.WarnContext(ctx, "mark qp dirty error", "post_id", postID, "err", err)
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
