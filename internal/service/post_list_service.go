package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/model"
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/metrics"
	"Viewy/internal/pkg/pager"
	"Viewy/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

// Direction which window of the base list a cursor selects
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrevious
	DirectionFrom
)

// ListQuery reproduces the base ordering of one list between requests
type ListQuery struct {
	List      string
	ViewerID  uint64
	Dimension model.Dimension
	Hashtag   string
	Order     string
	PosterID  uint64
}

type PostListService interface {
	GetPage(ctx context.Context, q ListQuery, dir Direction, cursorID uint64) (*dto.PostPageDTO, error)
	BaseIDs(ctx context.Context, q ListQuery) ([]uint64, error)
}

type postListServiceImpl struct {
	postRepo       repository.PostRepo
	actionRepo     repository.PostActionRepo
	userRepo       repository.UserRepo
	userFollowRepo repository.UserFollowRepo
	adSvc          AdService
	flags          viewerFlags
	pageSize       int
}

func NewPostListService(
	postRepo repository.PostRepo,
	actionRepo repository.PostActionRepo,
	userRepo repository.UserRepo,
	userFollowRepo repository.UserFollowRepo,
	adSvc AdService,
	pageSize int,
) PostListService {
	if pageSize <= 0 {
		pageSize = pager.PageSize
	}
	return &postListServiceImpl{
		postRepo:       postRepo,
		actionRepo:     actionRepo,
		userRepo:       userRepo,
		userFollowRepo: userFollowRepo,
		adSvc:          adSvc,
		flags: viewerFlags{
			actionRepo:    actionRepo,
			userFollowSvc: NewUserFollowService(userFollowRepo, userRepo),
		},
		pageSize: pageSize,
	}
}

// GetPage materializes the base list once and slices the window the cursor asks for.
// A non-empty page carries one standard ad when any is active.
func (s *postListServiceImpl) GetPage(ctx context.Context, q ListQuery, dir Direction, cursorID uint64) (*dto.PostPageDTO, error) {
	ids, err := s.BaseIDs(ctx, q)
	if err != nil {
		return nil, err
	}

	var window pager.Window[uint64]
	switch dir {
	case DirectionNext:
		window = pager.Next(ids, cursorID, s.pageSize)
	case DirectionPrevious:
		if cursorID == 0 {
			return nil, ErrParamInvalid
		}
		window = pager.Previous(ids, cursorID, s.pageSize)
	case DirectionFrom:
		if cursorID == 0 {
			return nil, ErrParamInvalid
		}
		window = pager.From(ids, cursorID, s.pageSize)
	default:
		return nil, ErrParamInvalid
	}
	if window.Reset {
		metrics.RecordPaginationReset(q.List)
		log.InfoContext(ctx, "stale cursor, window restarted", "list", q.List, "cursor", cursorID)
	}

	posts, err := s.postRepo.GetPostByIds(ctx, window.IDs)
	if err != nil {
		return nil, err
	}
	page := &dto.PostPageDTO{
		Posts: toPostDTOs(window.IDs, posts),
		Reset: window.Reset,
	}
	if len(page.Posts) == 0 {
		return page, nil
	}
	if err = s.flags.annotate(ctx, q.ViewerID, page.Posts); err != nil {
		return nil, err
	}

	ad, err := s.adSvc.PickAd(ctx, model.AdKindStandard)
	if err != nil {
		log.WarnContext(ctx, "pick list ad error", "list", q.List, "err", err)
	}
	page.Ad = ad
	return page, nil
}

// BaseIDs the full ordered id list of a consumer, evaluated fresh
func (s *postListServiceImpl) BaseIDs(ctx context.Context, q ListQuery) ([]uint64, error) {
	switch q.List {
	case consts.ListFavorites:
		if q.ViewerID == 0 {
			return nil, UnauthorizedError
		}
		return s.actionRepo.GetFavoritedPostIDs(ctx, q.ViewerID, 0)

	case consts.ListHashtag:
		tag := strings.TrimSpace(q.Hashtag)
		if tag == "" {
			return nil, ErrParamInvalid
		}
		order := q.Order
		if order == "" {
			order = consts.OrderQP
		}
		if order != consts.OrderQP && order != consts.OrderPostedAt {
			return nil, ErrParamInvalid
		}
		return s.postRepo.ListPostIDs(ctx, repository.PostFilter{
			RealFilter: q.Dimension.RealFilter(),
			Hashtag:    tag,
			Order:      order,
		})

	case consts.ListPoster:
		if q.PosterID == 0 {
			return nil, ErrParamInvalid
		}
		poster, err := s.userRepo.GetUserById(ctx, q.PosterID)
		if err != nil {
			return nil, err
		}
		if poster == nil {
			return nil, ErrUserNotFound
		}
		return s.postRepo.ListPostIDs(ctx, repository.PostFilter{
			PosterIDs: []uint64{q.PosterID},
			Order:     consts.OrderPostedAt,
		})

	case consts.ListFollow:
		if q.ViewerID == 0 {
			return nil, UnauthorizedError
		}
		posterIDs, err := s.userFollowRepo.GetFollowedPosterIDs(ctx, q.ViewerID)
		if err != nil {
			return nil, err
		}
		if posterIDs == nil {
			posterIDs = []uint64{}
		}
		// every post of a followed poster, whatever the viewer's dimension
		return s.postRepo.ListPostIDs(ctx, repository.PostFilter{
			PosterIDs: posterIDs,
			Order:     consts.OrderPostedAt,
		})
	}
	return nil, ErrParamInvalid
}
