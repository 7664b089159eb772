package internal

import (
	"github.com/AmirH031/SamanKhojo-sub003/internal/bag"
	"github.com/AmirH031/SamanKhojo-sub003/internal/booking"
	"github.com/AmirH031/SamanKhojo-sub003/internal/control"
	"github.com/AmirH031/SamanKhojo-sub003/internal/feedback"
	"github.com/AmirH031/SamanKhojo-sub003/internal/file"
	"github.com/AmirH031/SamanKhojo-sub003/internal/item"
	"github.com/AmirH031/SamanKhojo-sub003/internal/profile"
	"github.com/AmirH031/SamanKhojo-sub003/internal/shop"

	"go.uber.org/fx"
)

var Module = fx.Options(
	bag.Module,
	booking.Module,
	control.Module,
	feedback.Module,
	file.Module,
	item.Module,
	profile.Module,
	shop.Module,
)
