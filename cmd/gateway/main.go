package main

import (
	"github.com/AmirH031/SamanKhojo-sub003/apps/bot"
	"github.com/AmirH031/SamanKhojo-sub003/apps/gateway"
	"github.com/AmirH031/SamanKhojo-sub003/cmd/gateway/router"
	"github.com/AmirH031/SamanKhojo-sub003/internal"
	"github.com/AmirH031/SamanKhojo-sub003/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
		bot.Module,
	).Run()
}
