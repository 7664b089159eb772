package item

import (
	"errors"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/item"
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
		CreateItem(c *gin.Context)
		GetItem(c *gin.Context)
		GetListItem(c *gin.Context)
		PatchItem(c *gin.Context)
		DeleteItem(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		ItemService item.Service
	}

	handler struct {
		logger      logger.Logger
		itemService item.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		itemService: p.ItemService,
	}
}

func (h *handler) CreateItem(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateItem
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	id, err := h.itemService.Create(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.itemService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = gin.H{"id": id}
}

func (h *handler) GetItem(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = c.Param("id")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.itemService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.itemService.GetByID", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) GetListItem(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.itemService.GetList(ctx, structs.GetListItemRequest{
		ShopID:   c.Query("shopId"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    cast.ToInt64(c.Query("limit")),
		Offset:   cast.ToInt64(c.Query("offset")),
	})
	if err != nil {
		h.logger.Error(ctx, " err on h.itemService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) PatchItem(c *gin.Context) {
	var (
		response structs.Response
		request  structs.PatchItem
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}
	request.ID = c.Param("id")

	updatedRows, err := h.itemService.Patch(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.itemService.Patch", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = gin.H{"updatedRows": updatedRows}
}

func (h *handler) DeleteItem(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = c.Param("id")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := h.itemService.Delete(ctx, id); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.itemService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
