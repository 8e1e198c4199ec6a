package job

import (
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/logger"
	"Viewy/internal/pkg/redis"
	"Viewy/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// HotHashtagJob recomputes the hot hashtag set; one instance at a time across the fleet
type HotHashtagJob struct {
	hashtagSvc service.HashtagService
}

func NewHotHashtagJob(hashtagSvc service.HashtagService) *HotHashtagJob {
	return &HotHashtagJob{hashtagSvc: hashtagSvc}
}

func (s *HotHashtagJob) Run() {
	ctx := logger.NewTraceContext("job-hashtag")
	s.run(ctx)
}

func (s *HotHashtagJob) run(ctx context.Context) []string {
	token := uuid.NewString()
	ok, err := redis.TryLock(ctx, consts.HotHashtagLock, token, 5*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire hot hashtag lock error", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	defer redis.UnLock(ctx, consts.HotHashtagLock, token)

	tags, err := s.hashtagSvc.RefreshHotHashtags(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh hot hashtags error", "err", err)
		return nil
	}
	log.InfoContext(ctx, "refresh hot hashtags success", "hashtags", tags)
	return tags
}
