package shop

import (
	"errors"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/responses"
	"github.com/AmirH031/SamanKhojo-sub003/internal/shop"
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
		CreateShop(c *gin.Context)
		GetShop(c *gin.Context)
		GetListShop(c *gin.Context)
		PatchShop(c *gin.Context)
		DeleteShop(c *gin.Context)
		ContactQR(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		ShopService shop.Service
	}

	handler struct {
		logger      logger.Logger
		shopService shop.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		shopService: p.ShopService,
	}
}

func (h *handler) CreateShop(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CreateShop
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	id, err := h.shopService.Create(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = responses.BadRequest
			return
		}
		h.logger.Error(ctx, " err on h.shopService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = gin.H{"id": id}
}

func (h *handler) GetShop(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = c.Param("id")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.shopService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.shopService.GetByID", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) GetListShop(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.shopService.GetList(ctx, structs.GetListShopRequest{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    cast.ToInt64(c.Query("limit")),
		Offset:   cast.ToInt64(c.Query("offset")),
	})
	if err != nil {
		h.logger.Error(ctx, " err on h.shopService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) PatchShop(c *gin.Context) {
	var (
		response structs.Response
		request  structs.PatchShop
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

	updatedRows, err := h.shopService.Patch(ctx, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.shopService.Patch", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = gin.H{"updatedRows": updatedRows}
}

func (h *handler) DeleteShop(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = c.Param("id")
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	if err := h.shopService.Delete(ctx, id); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.shopService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}

// ContactQR renders a PNG QR code opening the shop's WhatsApp chat.
func (h *handler) ContactQR(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		id  = c.Param("id")
	)

	png, err := h.shopService.ContactQR(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		h.logger.Error(ctx, " err on h.shopService.ContactQR", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render qr"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
