package postgres

import (
	"go.uber.org/fx"

	bagrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/bag_repo"
	bookingrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/booking_repo"
	feedbackrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/feedback_repo"
	itemrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/item_repo"
	shoprepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/shop_repo"
	userrepo "github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres/user_repo"
)

var Module = fx.Options(
	bagrepo.Module,
	bookingrepo.Module,
	shoprepo.Module,
	itemrepo.Module,
	feedbackrepo.Module,
	userrepo.Module,
)
