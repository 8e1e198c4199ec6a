package handler

import (
	"Viewy/internal/model"
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	adSvc service.AdService
}

func NewAdHandler(adSvc service.AdService) *AdHandler {
	return &AdHandler{adSvc: adSvc}
}

// PickAd kind=standard (default) or kind=wide; data is null when none is active
func (s *AdHandler) PickAd(c *gin.Context) {
	kind, err := model.ParseAdKind(c.Query("kind"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	ad, err := s.adSvc.PickAd(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ad)
}

func (s *AdHandler) IncrementView(c *gin.Context) {
	kind, adID, ok := parseAdPath(c)
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.adSvc.IncrementView(c.Request.Context(), kind, adID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AdHandler) IncrementClick(c *gin.Context) {
	kind, adID, ok := parseAdPath(c)
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.adSvc.IncrementClick(c.Request.Context(), kind, adID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func parseAdPath(c *gin.Context) (model.AdKind, uint64, bool) {
	kind, err := model.ParseAdKind(c.Param("kind"))
	if err != nil {
		return "", 0, false
	}
	adID, err := strconv.ParseUint(c.Param("ad_id"), 10, 64)
	if err != nil || adID == 0 {
		return "", 0, false
	}
	return kind, adID, true
}
