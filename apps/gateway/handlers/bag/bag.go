package bag

import (
	"errors"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/bag"
	"github.com/AmirH031/SamanKhojo-sub003/internal/booking"
	"github.com/AmirH031/SamanKhojo-sub003/internal/structs"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

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
		AddToBag(c *gin.Context)
		GetBag(c *gin.Context)
		UpdateItem(c *gin.Context)
		RemoveItem(c *gin.Context)
		ClearBag(c *gin.Context)
		GetCount(c *gin.Context)
		Confirm(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger     logger.Logger
		BagService bag.Service
		BookingSvc booking.Service
	}

	handler struct {
		logger     logger.Logger
		bagService bag.Service
		bookingSvc booking.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:     p.Logger,
		bagService: p.BagService,
		bookingSvc: p.BookingSvc,
	}
}

func (h *handler) AddToBag(c *gin.Context) {
	var (
		request structs.AddToBag
		ctx     = c.Request.Context()
		uid     = cast.ToString(c.MustGet("uid"))
	)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if request.ItemID == "" || request.ShopID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and shopId are required"})
		return
	}

	if err := h.bagService.Add(ctx, uid, request); err != nil {
		h.logger.Error(ctx, " err on h.bagService.Add", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to bag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) GetBag(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		uid = cast.ToString(c.MustGet("uid"))
	)

	if c.Param("uid") != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "uid mismatch"})
		return
	}

	data, err := h.bagService.Get(ctx, uid)
	if err != nil {
		h.logger.Error(ctx, " err on h.bagService.Get", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bag": data})
}

func (h *handler) UpdateItem(c *gin.Context) {
	var (
		request structs.UpdateBagItem
		ctx     = c.Request.Context()
		uid     = cast.ToString(c.MustGet("uid"))
		itemID  = c.Param("itemId")
	)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.bagService.UpdateQuantity(ctx, uid, itemID, request.Quantity); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in bag"})
			return
		}
		h.logger.Error(ctx, " err on h.bagService.UpdateQuantity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) RemoveItem(c *gin.Context) {
	var (
		ctx    = c.Request.Context()
		uid    = cast.ToString(c.MustGet("uid"))
		itemID = c.Param("itemId")
	)

	if err := h.bagService.Remove(ctx, uid, itemID); err != nil {
		h.logger.Error(ctx, " err on h.bagService.Remove", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) ClearBag(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		uid = cast.ToString(c.MustGet("uid"))
	)

	if c.Param("uid") != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "uid mismatch"})
		return
	}

	if err := h.bagService.Clear(ctx, uid); err != nil {
		h.logger.Error(ctx, " err on h.bagService.Clear", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear bag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) GetCount(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		uid = cast.ToString(c.MustGet("uid"))
	)

	if c.Param("uid") != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "uid mismatch"})
		return
	}

	count, err := h.bagService.Count(ctx, uid)
	if err != nil {
		h.logger.Error(ctx, " err on h.bagService.Count", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count bag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *handler) Confirm(c *gin.Context) {
	var (
		request structs.ConfirmBooking
		ctx     = c.Request.Context()
		uid     = cast.ToString(c.MustGet("uid"))
	)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	confirmation, err := h.bookingSvc.Confirm(ctx, uid, request)
	if err != nil {
		if errors.Is(err, structs.ErrEmptyBag) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty bag"})
			return
		}
		h.logger.Error(ctx, " err on h.bookingSvc.Confirm", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}

	c.JSON(http.StatusOK, confirmation)
}
