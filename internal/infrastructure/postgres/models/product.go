package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID                        string          `gorm:"primaryKey;type:uuid"`
	Name                      string          `gorm:"not null"`
	UnitPrice                 decimal.Decimal `gorm:"type:numeric"`
	FoCommission              decimal.Decimal `gorm:"type:numeric"`
	TeamLeaderCommission      decimal.Decimal `gorm:"type:numeric"`
	RegionalManagerCommission decimal.Decimal `gorm:"type:numeric"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
