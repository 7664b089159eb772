package pkg

import (
	"go.uber.org/fx"

	"github.com/AmirH031/SamanKhojo-sub003/pkg/cache"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/config"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/db"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/filemanager"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/migration"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/redis"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/reply"
	"github.com/AmirH031/SamanKhojo-sub003/pkg/repository"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	cache.Module,
	reply.Module,
	filemanager.Module,
	redis.Module,
)
