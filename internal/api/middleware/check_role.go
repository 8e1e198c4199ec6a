package middleware

import (
	"Viewy/internal/pkg/response"
	"Viewy/internal/service"

	"github.com/gin-gonic/gin"
)

// PosterOnly lets through users holding the poster role, answered from the is-poster cache
func PosterOnly(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isPoster, err := userSvc.IsPoster(c.Request.Context(), c.GetUint64("user_id"))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !isPoster {
			response.Fail(c, response.Forbidden, service.ErrNotPoster.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
