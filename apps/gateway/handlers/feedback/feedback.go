package feedback

import (
	"errors"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/feedback"
	"github.com/AmirH031/SamanKhojo-sub003/internal/responses"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		CreateFeedback(c *gin.Context)
		GetListFeedback(c *gin.Context)
		DeleteFeedback(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger          logger.Logger
		FeedbackService feedback.Service
	}

	handler struct {
		logger          logger.Logger
		feedbackService feedback.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		feedbackService: p.FeedbackService,
	}
}

func (h *handler) CreateFeedback(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateFeedback
		ctx      = c.Request.Context()
		uid      = c.GetString("uid")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}
	if request.Message == "" {
		response = responses.BadRequest
		return
	}

	id, err := h.feedbackService.Create(ctx, uid, request)
	if err != nil {
		h.logger.Error(ctx, " err on h.feedbackService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = gin.H{"id": id}
}

func (h *handler) GetListFeedback(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.feedbackService.GetList(ctx, structs.GetListFeedbackRequest{
		ShopID: c.Query("shopId"),
		Limit:  cast.ToInt64(c.Query("limit")),
		Offset: cast.ToInt64(c.Query("offset")),
	})
	if err != nil {
		h.logger.Error(ctx, " err on h.feedbackService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) DeleteFeedback(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = c.Param("id")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := h.feedbackService.Delete(ctx, id); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.feedbackService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
