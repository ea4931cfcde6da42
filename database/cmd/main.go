package main

import (
	"flag"
	"os"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Kategori ve şablon seeder'larını çalıştır")
	flag.Parse()

	configsdatabase.InitDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
	configsdatabase.CloseDB()
	if err != nil {
		configslog.SyncLogger()
		os.Exit(1)
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
