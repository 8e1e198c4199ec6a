package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/pkg/util"
	"Viewy/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
)

// viewerFlags marks page posts with what the viewer already did to them
type viewerFlags struct {
	actionRepo    repository.PostActionRepo
	userFollowSvc UserFollowService
}

// annotate no-op for anonymous viewers and empty pages
func (f viewerFlags) annotate(ctx context.Context, viewerID uint64, posts []*dto.PostDTO) error {
	if viewerID == 0 || len(posts) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	// a feed page may repeat a post
	ids = util.DedupUint64(ids)

	var favorited, reported []uint64
	var followed map[uint64]struct{}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		favorited, err = f.actionRepo.FilterFavorited(gCtx, viewerID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		reported, err = f.actionRepo.FilterReported(gCtx, viewerID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		followed, err = f.userFollowSvc.FollowedPosterSet(gCtx, viewerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	favSet, repSet := idSet(favorited), idSet(reported)
	for _, p := range posts {
		_, p.FavoritedByUser = favSet[p.ID]
		_, p.ReportedByUser = repSet[p.ID]
		_, p.FollowedByUser = followed[p.PosterID]
	}
	return nil
}

func idSet(ids []uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
