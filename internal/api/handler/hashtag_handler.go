package handler

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"

	"github.com/gin-gonic/gin"
)

type HashtagHandler struct {
	hashtagSvc service.HashtagService
	userSvc    service.UserService
}

func NewHashtagHandler(hashtagSvc service.HashtagService, userSvc service.UserService) *HashtagHandler {
	return &HashtagHandler{hashtagSvc: hashtagSvc, userSvc: userSvc}
}

func (s *HashtagHandler) GetHotHashtags(c *gin.Context) {
	ctx := c.Request.Context()
	dimension, err := s.userSvc.GetDimension(ctx, c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	hot, err := s.hashtagSvc.HotHashtags(ctx, dimension)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, hot)
}

// Suggest ?q=<prefix>
func (s *HashtagHandler) Suggest(c *gin.Context) {
	tags, err := s.hashtagSvc.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.HashtagSuggestDTO{Hashtags: tags})
}
