package booking

import (
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/booking"
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
		GetListBooking(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger         logger.Logger
		BookingService booking.Service
	}

	handler struct {
		logger         logger.Logger
		bookingService booking.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		bookingService: p.BookingService,
	}
}

func (h *handler) GetListBooking(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	resp, err := h.bookingService.GetList(ctx, structs.GetListBookingRequest{
		UID:    c.Query("uid"),
		Limit:  cast.ToInt64(c.Query("limit")),
		Offset: cast.ToInt64(c.Query("offset")),
	})
	if err != nil {
		h.logger.Error(ctx, " err on h.bookingService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}
