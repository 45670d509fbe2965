package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               string
	Name             string
	UnitPrice        decimal.Decimal
	CommissionConfig CommissionConfig
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProductRepository interface {
	GetProductByID(productID string) (*Product, error)
}
