package main

import (
	"os"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/configs/configsserver"
	"undangan.link/routes"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := configsserver.NewApp()
	routes.SetupRoutes(app, routes.DefaultServices())

	if err := configsserver.Start(app); err != nil {
		configslog.Log.Error("Sunucu durdu", zap.Error(err))
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}
