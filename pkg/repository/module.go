package repository

import (
	"go.uber.org/fx"

	"github.com/AmirH031/SamanKhojo-sub003/pkg/repository/postgres"
)

var Module = fx.Options(
	postgres.Module,
)
