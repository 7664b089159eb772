package handlers

import (
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/bag"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/booking"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/control"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/feedback"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/file"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/item"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/middleware"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/profile"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/shop"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	control.Module,
	bag.Module,
	booking.Module,
	shop.Module,
	item.Module,
	feedback.Module,
	profile.Module,
	file.Module,
)
