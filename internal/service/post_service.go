package service

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/repository"
	"context"
)

type PostService interface {
	GetPostById(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	flags    viewerFlags
}

func NewPostService(postRepo repository.PostRepo, actionRepo repository.PostActionRepo, userFollowSvc UserFollowService) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		flags:    viewerFlags{actionRepo: actionRepo, userFollowSvc: userFollowSvc},
	}
}

// GetPostById hidden posts are reported as missing. viewerID 0 leaves the viewer flags unset.
func (s *postServiceImpl) GetPostById(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.IsHidden {
		return nil, ErrPostNotFound
	}
	item := toPostDTO(post)
	if err = s.flags.annotate(ctx, viewerID, []*dto.PostDTO{item}); err != nil {
		return nil, err
	}
	return item, nil
}
