package api

import (
	"Viewy/internal/api/middleware"
	"Viewy/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		feedGroup := apiGroup.Group("/feed")
		feedGroup.Use(middleware.AuthOptionalMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
			feedGroup.POST("/more", group.FeedHandler.GetFeed)
		}

		listGroup := apiGroup.Group("/lists")
		{
			authOptGroup := listGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/hashtag/:hashtag", group.PostListHandler.GetHashtagPosts)
				authOptGroup.GET("/poster/:poster_id", group.PostListHandler.GetPosterPosts)
			}

			authGroup := listGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/favorites", group.PostListHandler.GetFavorites)
				authGroup.GET("/follow", group.PostListHandler.GetFollowFeed)
			}

			posterGroup := authGroup.Group("")
			posterGroup.Use(middleware.PosterOnly(group.UserSvc))
			{
				posterGroup.GET("/self", group.PostListHandler.GetSelfPosts)
			}
		}

		postGroup := apiGroup.Group("/posts/:post_id")
		{
			postGroup.GET("", middleware.AuthOptionalMiddleware(), group.PostHandler.GetPost)
			postGroup.POST("/view", group.PostActionHandler.IncrementView)
			postGroup.POST("/emote", group.PostActionHandler.IncrementEmote)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/favorite", group.PostActionHandler.ToggleFavorite)
				authGroup.POST("/report", group.PostActionHandler.SubmitReport)
				authGroup.POST("/duration", group.PostActionHandler.RecordViewDuration)
			}
		}

		adGroup := apiGroup.Group("/ads")
		{
			adGroup.GET("", group.AdHandler.PickAd)
			adGroup.POST("/:kind/:ad_id/view", group.AdHandler.IncrementView)
			adGroup.POST("/:kind/:ad_id/click", group.AdHandler.IncrementClick)
		}

		hashtagGroup := apiGroup.Group("/hashtags")
		{
			hashtagGroup.GET("/suggest", group.HashtagHandler.Suggest)
			hashtagGroup.GET("/hot", middleware.AuthOptionalMiddleware(), group.HashtagHandler.GetHotHashtags)
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:user_id/is-poster", group.UserHandler.IsPoster)
		}

		followGroup := apiGroup.Group("/follows")
		followGroup.Use(middleware.AuthMiddleware())
		{
			followGroup.GET("", group.UserFollowHandler.GetFollowedPosters)
			followGroup.POST("/:poster_id", group.UserFollowHandler.Follow)
			followGroup.DELETE("/:poster_id", group.UserFollowHandler.Unfollow)
		}
	}

	return r
}
