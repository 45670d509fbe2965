package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeviceModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	IMEI            string `gorm:"column:imei;uniqueIndex;size:15;not null"`
	SerialNumber    string
	ProductID       string `gorm:"type:uuid;index"`
	Status          string `gorm:"not null;index"`
	CurrentHolderID string `gorm:"index"`
	Region          string

	// Optional per-device commission override.
	HasCommissionOverride     bool
	FoCommission              decimal.Decimal `gorm:"type:numeric"`
	TeamLeaderCommission      decimal.Decimal `gorm:"type:numeric"`
	RegionalManagerCommission decimal.Decimal `gorm:"type:numeric"`

	RegisteredBy string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
