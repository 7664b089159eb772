package profile

import (
	"errors"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/internal/profile"
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
		GoogleSignIn(c *gin.Context)
		GetProfile(c *gin.Context)
		UpsertProfile(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger     logger.Logger
		ProfileSvc profile.Service
	}

	handler struct {
		logger     logger.Logger
		profileSvc profile.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:     p.Logger,
		profileSvc: p.ProfileSvc,
	}
}

func (h *handler) GoogleSignIn(c *gin.Context) {
	var (
		request structs.GoogleSignIn
		ctx     = c.Request.Context()
	)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.profileSvc.GoogleSignIn(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, structs.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		case errors.Is(err, structs.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid id token"})
		default:
			h.logger.Error(ctx, " err on h.profileSvc.GoogleSignIn", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign in failed"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *handler) GetProfile(c *gin.Context) {
	var (
		ctx = c.Request.Context()
		uid = cast.ToString(c.MustGet("uid"))
	)

	p, err := h.profileSvc.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error(ctx, " err on h.profileSvc.GetProfile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func (h *handler) UpsertProfile(c *gin.Context) {
	var (
		request structs.UpsertProfile
		ctx     = c.Request.Context()
		uid     = cast.ToString(c.MustGet("uid"))
	)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.profileSvc.UpsertProfile(ctx, uid, request)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error(ctx, " err on h.profileSvc.UpsertProfile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}
