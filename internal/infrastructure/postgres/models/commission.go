package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionModel struct {
	ID               string          `gorm:"primaryKey;size:21"`
	SaleID           string          `gorm:"type:uuid;index;not null"`
	UserID           string          `gorm:"index;not null"`
	Role             string          `gorm:"not null"`
	Amount           decimal.Decimal `gorm:"type:numeric"`
	Status           string          `gorm:"not null;index"`
	ApprovedBy       string
	ApprovedAt       *time.Time
	PaidAt           *time.Time
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
