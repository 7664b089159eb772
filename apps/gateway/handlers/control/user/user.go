package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AmirH031/SamanKhojo-sub003/internal/control/user"
	"github.com/AmirH031/SamanKhojo-sub003/internal/responses"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		LoginAdmin(c *gin.Context)
		GetMe(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		UserService user.Service
	}

	handler struct {
		logger      logger.Logger
		userService user.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		userService: p.UserService,
	}
}

func (h *handler) LoginAdmin(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AdminLogin
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	resp, err := h.userService.LoginAdmin(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.Unauthorized
			return
		}
		h.logger.Error(ctx, " err on h.userService.LoginAdmin", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) GetMe(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	admin, err := h.userService.GetMe(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, structs.ErrUnauthorized) || errors.Is(err, structs.ErrForbidden) {
			response = responses.Unauthorized
			return
		}
		h.logger.Error(ctx, " err on h.userService.GetMe", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = admin
}
