package handler

import (
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
	userSvc service.UserService
}

func NewFeedHandler(feedSvc service.FeedService, userSvc service.UserService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc, userSvc: userSvc}
}

// GetFeed initial feed page; also answers "more", since every page is freshly assembled
func (s *FeedHandler) GetFeed(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetUint64("user_id")

	dimension, err := s.userSvc.GetDimension(ctx, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.feedSvc.BuildPage(ctx, userID, dimension)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
