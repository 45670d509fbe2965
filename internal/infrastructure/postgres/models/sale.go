package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	ReceiptNumber string          `gorm:"uniqueIndex;not null"`
	DeviceID      string          `gorm:"index"`
	ProductID     string          `gorm:"type:uuid;index"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric"`
	Total         decimal.Decimal `gorm:"type:numeric"`
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	SoldBy        string    `gorm:"index"`
	SoldAt        time.Time `gorm:"index"`
	CreatedAt     time.Time
}
