package control

import (
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway/handlers/control/user"

	"go.uber.org/fx"
)

var Module = fx.Options(
	user.Module,
)
