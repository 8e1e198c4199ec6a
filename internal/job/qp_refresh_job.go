package job

import (
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/logger"
	"Viewy/internal/pkg/redis"
	"Viewy/internal/pkg/util"
	"Viewy/internal/service"
	"context"
	"errors"
	log "log/slog"
)

// QPRefreshJob drains the QP dirty set filled by engagement events
type QPRefreshJob struct {
	actionSvc service.PostActionService
}

func NewQPRefreshJob(actionSvc service.PostActionService) *QPRefreshJob {
	return &QPRefreshJob{actionSvc: actionSvc}
}

func (s *QPRefreshJob) Run() {
	ctx := logger.NewTraceContext("job-qp")
	s.run(ctx)
}

func (s *QPRefreshJob) run(ctx context.Context) int {
	processingKey := consts.PostQPDirtyKey + ":processing"

	// leftovers of a crashed run go first
	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get qp processing set error", "err", err)
		return 0
	}
	if len(tempSet) == 0 {
		ok, err := redis.Rename(ctx, consts.PostQPDirtyKey, processingKey)
		if err != nil {
			log.ErrorContext(ctx, "rename qp dirty set error", "err", err)
			return 0
		}
		if !ok {
			return 0
		}
		tempSet, err = redis.GetSet(ctx, processingKey)
		if err != nil {
			log.ErrorContext(ctx, "get qp processing set error", "err", err)
			return 0
		}
	}

	postIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert qp set to int slice error", "err", err)
		return 0
	}

	refreshed := 0
	for _, pid := range postIDs {
		err = s.actionSvc.RefreshQP(ctx, pid)
		if err != nil {
			if !errors.Is(err, service.ErrPostNotFound) {
				log.ErrorContext(ctx, "refresh qp error", "pid", pid, "err", err)
			}
			continue
		}
		refreshed++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete qp processing set error", "err", err)
	}

	log.InfoContext(ctx, "refresh qp success", "post_count", len(postIDs), "refreshed", refreshed)
	return refreshed
}
