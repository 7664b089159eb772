package middleware

import (
	"net/http"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/control/user"
	"github.com/AmirH031/SamanKhojo-sub003/internal/responses"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/reply"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(NewMiddleware)
)

type (
	Middleware interface {
		CheckAuth() gin.HandlerFunc
		AdminOnly() gin.HandlerFunc
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger  logger.Logger
		Config  config.IConfig
		UserSvc user.Service
	}

	mw struct {
		logger  logger.Logger
		config  config.IConfig
		userSvc user.Service
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:  params.Logger,
		config:  params.Config,
		userSvc: params.UserSvc,
	}
}

// CheckAuth requires a valid session token and stores its uid on the
// request context.
func (m *mw) CheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authToken := bearerToken(c.GetHeader("Authorization"))
		if utils.StrEmpty(authToken) {
			m.logger.Warn(ctx, " empty auth token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		claims, err := utils.ParseJWT(authToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		uid := cast.ToString(claims["uid"])
		if utils.StrEmpty(uid) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("uid", uid)
		c.Next()
	}
}

// AdminOnly requires an admin token issued by the admin login endpoint.
func (m *mw) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		var response structs.Response

		authToken := bearerToken(c.GetHeader("Authorization"))
		if utils.StrEmpty(authToken) {
			response = responses.Unauthorized
			c.Abort()
			reply.Json(c.Writer, responses.UnauthorizedCode, &response)
			return
		}

		admin, err := m.userSvc.GetMe(c.Request.Context(), authToken)
		if err != nil {
			response = responses.Forbidden
			c.Abort()
			reply.Json(c.Writer, responses.ForbiddenCode, &response)
			return
		}

		c.Set("admin_id", admin.ID)
		c.Next()
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
