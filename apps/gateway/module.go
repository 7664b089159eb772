package gateway

import (
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)
