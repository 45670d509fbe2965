package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID            string
	ReceiptNumber string
	DeviceID      string // empty for product-quantity sales
	ProductID     string
	Quantity      int
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	SoldBy        string
	SoldAt        time.Time
}

type SaleRepository interface {
	// CreateDeviceSale writes the sale, flips the device to SOLD via a
	// conditional custody update and inserts the commission batch, all in one
	// transaction. A custody mismatch aborts the whole write with ErrConflict.
	CreateDeviceSale(sale *Sale, commissions []*Commission, expected CustodyState) error
	CreateProductSale(sale *Sale, commissions []*Commission) error
	GetSaleByID(saleID string) (*Sale, error)
}

// ReceiptSequence is the externally guaranteed monotonically increasing
// receipt-number source.
type ReceiptSequence interface {
	NextReceiptNumber() (int64, error)
}
