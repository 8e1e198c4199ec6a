package api

import (
	"Viewy/internal/api/handler"
	"Viewy/internal/service"
)

// HandlersGroup every initialized handler, plus what route-level middleware needs
type HandlersGroup struct {
	FeedHandler       *handler.FeedHandler
	PostHandler       *handler.PostHandler
	PostListHandler   *handler.PostListHandler
	PostActionHandler *handler.PostActionHandler
	AdHandler         *handler.AdHandler
	HashtagHandler    *handler.HashtagHandler
	UserHandler       *handler.UserHandler
	UserFollowHandler *handler.UserFollowHandler

	UserSvc service.UserService
}
