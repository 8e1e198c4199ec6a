package handler

import (
	"Viewy/internal/api/dto"
	"Viewy/internal/pkg/response"
	"Viewy/internal/pkg/util"
	"Viewy/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

// ToggleFavorite favorite or unfavorite, whichever the current state is not
func (s *PostActionHandler) ToggleFavorite(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	favorited, count, err := s.actionSvc.ToggleFavorite(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.FavoriteResultDTO{Favorited: favorited, FavoriteCount: count})
}

func (s *PostActionHandler) IncrementView(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	views, err := s.actionSvc.IncrementView(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.ViewResultDTO{ViewsCount: views})
}

func (s *PostActionHandler) SubmitReport(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.ReportReq
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	already, err := s.actionSvc.SubmitReport(c.Request.Context(), userID, postID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.ReportResultDTO{AlreadyReported: already})
}

func (s *PostActionHandler) IncrementEmote(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.EmoteReq
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrEmoteSlotInvalid)
		return
	}

	count, err := s.actionSvc.IncrementEmote(c.Request.Context(), postID, req.Slot, req.Clicks)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.EmoteResultDTO{Slot: req.Slot, NewCount: count})
}

func (s *PostActionHandler) RecordViewDuration(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.ViewDurationReq
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	err = s.actionSvc.RecordViewDuration(c.Request.Context(), userID, postID, req.Duration)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
