package handler

import (
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

func (s *UserFollowHandler) GetFollowedPosters(c *gin.Context) {
	userId := c.GetUint64("user_id")

	limit, offset := s.getPagination(c)

	posters, err := s.userFollowSvc.GetFollowedPosters(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posters)
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	posterId, err := strconv.ParseUint(c.Param("poster_id"), 10, 64)
	if err != nil || posterId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userFollowSvc.Follow(c.Request.Context(), userId, posterId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userId := c.GetUint64("user_id")
	posterId, err := strconv.ParseUint(c.Param("poster_id"), 10, 64)
	if err != nil || posterId == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userFollowSvc.Unfollow(c.Request.Context(), userId, posterId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) getPagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
