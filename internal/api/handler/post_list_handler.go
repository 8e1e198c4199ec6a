package handler

import (
	"Viewy/internal/pkg/consts"
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostListHandler struct {
	listSvc service.PostListService
	userSvc service.UserService
}

func NewPostListHandler(listSvc service.PostListService, userSvc service.UserService) *PostListHandler {
	return &PostListHandler{listSvc: listSvc, userSvc: userSvc}
}

func (s *PostListHandler) GetFavorites(c *gin.Context) {
	s.page(c, service.ListQuery{List: consts.ListFavorites})
}

func (s *PostListHandler) GetFollowFeed(c *gin.Context) {
	s.page(c, service.ListQuery{List: consts.ListFollow})
}

func (s *PostListHandler) GetHashtagPosts(c *gin.Context) {
	s.page(c, service.ListQuery{
		List:    consts.ListHashtag,
		Hashtag: c.Param("hashtag"),
		Order:   c.Query("order"),
	})
}

func (s *PostListHandler) GetPosterPosts(c *gin.Context) {
	posterID, err := strconv.ParseUint(c.Param("poster_id"), 10, 64)
	if err != nil || posterID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	s.page(c, service.ListQuery{List: consts.ListPoster, PosterID: posterID})
}

// GetSelfPosts a poster's own page
func (s *PostListHandler) GetSelfPosts(c *gin.Context) {
	s.page(c, service.ListQuery{List: consts.ListPoster, PosterID: c.GetUint64("user_id")})
}

// page reads the cursor from first_id (previous), selected_id (from) or last_id (next)
func (s *PostListHandler) page(c *gin.Context, q service.ListQuery) {
	ctx := c.Request.Context()
	dir, cursor, err := parseCursor(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	q.ViewerID = c.GetUint64("user_id")
	q.Dimension, err = s.userSvc.GetDimension(ctx, q.ViewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.listSvc.GetPage(ctx, q, dir, cursor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func parseCursor(c *gin.Context) (service.Direction, uint64, error) {
	if v := c.Query("first_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		return service.DirectionPrevious, id, err
	}
	if v := c.Query("selected_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		return service.DirectionFrom, id, err
	}
	if v := c.Query("last_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		return service.DirectionNext, id, err
	}
	return service.DirectionNext, 0, nil
}
