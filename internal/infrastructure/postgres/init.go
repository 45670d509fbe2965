package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/config"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.SalesConfig) *gorm.DB {
	dsn := cfg.SalesDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.DeviceModel{},
		&models.AllocationRecordModel{},
		&models.SaleModel{},
		&models.CommissionModel{},
	)
	db.Exec("CREATE SEQUENCE IF NOT EXISTS receipt_number_seq")

	return db
}
