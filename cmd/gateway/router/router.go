package router

import (
	"context"
	"net/http"

	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/bag"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/booking"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/control/user"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/feedback"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/file"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/item"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/middleware"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/profile"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/shop"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	User      user.Handler
	Bag       bag.Handler
	Booking   booking.Handler
	Shop      shop.Handler
	Item      item.Handler
	Feedback  feedback.Handler
	Profile   profile.Handler
	File      file.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	baseUrl := "/api"
	out := r.Group(baseUrl)
	out.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	authGroup := out.Group("/auth")
	{
		authGroup.POST("/google", params.Profile.GoogleSignIn)
		authGroup.GET("/user/profile", params.CheckAuth(), params.Profile.GetProfile)
		authGroup.PUT("/user/profile", params.CheckAuth(), params.Profile.UpsertProfile)
	}

	bagGroup := out.Group("/bag")
	bagGroup.Use(params.CheckAuth())
	{
		bagGroup.POST("/add", params.Bag.AddToBag)
		bagGroup.POST("/confirm", params.Bag.Confirm)
		bagGroup.GET("/count/:uid", params.Bag.GetCount)
		bagGroup.PUT("/item/:itemId", params.Bag.UpdateItem)
		bagGroup.DELETE("/item/:itemId", params.Bag.RemoveItem)
		bagGroup.GET("/:uid", params.Bag.GetBag)
		bagGroup.DELETE("/:uid", params.Bag.ClearBag)
	}

	adminGroup := out.Group("/admin")
	{
		adminGroup.POST("/login", params.User.LoginAdmin)
		adminGroup.GET("/self", params.User.GetMe)
		adminGroup.GET("/bookings", params.AdminOnly(), params.Booking.GetListBooking)
	}

	shopGroup := out.Group("/shop")
	{
		shopGroup.GET("/", params.Shop.GetListShop)
		shopGroup.GET("/:id", params.Shop.GetShop)
		shopGroup.GET("/:id/qr", params.Shop.ContactQR)
		shopGroup.POST("/", params.AdminOnly(), params.Shop.CreateShop)
		shopGroup.PATCH("/:id", params.AdminOnly(), params.Shop.PatchShop)
		shopGroup.DELETE("/:id", params.AdminOnly(), params.Shop.DeleteShop)
	}

	itemGroup := out.Group("/item")
	{
		itemGroup.GET("/", params.Item.GetListItem)
		itemGroup.GET("/:id", params.Item.GetItem)
		itemGroup.POST("/", params.AdminOnly(), params.Item.CreateItem)
		itemGroup.PATCH("/:id", params.AdminOnly(), params.Item.PatchItem)
		itemGroup.DELETE("/:id", params.AdminOnly(), params.Item.DeleteItem)
	}

	feedbackGroup := out.Group("/feedback")
	{
		feedbackGroup.POST("/", params.Feedback.CreateFeedback)
		feedbackGroup.GET("/", params.AdminOnly(), params.Feedback.GetListFeedback)
		feedbackGroup.DELETE("/:id", params.AdminOnly(), params.Feedback.DeleteFeedback)
	}

	out.POST("/file", params.AdminOnly(), params.File.UploadFile)

	allowedOrigins := params.Config.GetStringSlice("server.allowed_origins")
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
