package file

import (
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/file"
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

// allowed upload targets, anything else falls back to "misc"
var knownDirs = map[string]bool{
	"shops": true,
	"items": true,
}

type (
	Handler interface {
		UploadFile(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		FileService file.Service
	}

	handler struct {
		logger      logger.Logger
		fileService file.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		fileService: p.FileService,
	}
}

func (h *handler) UploadFile(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	formFile, err := c.FormFile("image")
	if err != nil {
		h.logger.Warn(ctx, " error parse form file", zap.Error(err))
		response = responses.BadRequest
		return
	}

	dir := c.PostForm("dir")
	if !knownDirs[dir] {
		dir = "misc"
	}

	src, err := formFile.Open()
	if err != nil {
		h.logger.Error(ctx, " error open form file", zap.Error(err))
		response = responses.InternalErr
		return
	}
	defer src.Close()

	uploaded, err := h.fileService.Upload(ctx, dir, formFile.Filename, src)
	if err != nil {
		h.logger.Error(ctx, " err on h.fileService.Upload", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = uploaded
}
