package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionApproved CommissionStatus = "APPROVED"
	CommissionPaid     CommissionStatus = "PAID"
	CommissionRejected CommissionStatus = "REJECTED"
)

// CommissionConfig holds the flat commission amounts paid out per role when a
// unit is sold. All amounts are non-negative.
type CommissionConfig struct {
	FOCommission              decimal.Decimal
	TeamLeaderCommission      decimal.Decimal
	RegionalManagerCommission decimal.Decimal
}

// ResolveCommissionConfig applies the two-level precedence rule: a per-device
// override wins over the product default.
func ResolveCommissionConfig(deviceOverride *CommissionConfig, productDefault CommissionConfig) CommissionConfig {
	if deviceOverride != nil {
		return *deviceOverride
	}
	return productDefault
}

type Commission struct {
	ID               string
	SaleID           string
	UserID           string
	Role             Role // beneficiary's role at the time of the sale
	Amount           decimal.Decimal
	Status           CommissionStatus
	ApprovedBy       string
	ApprovedAt       *time.Time
	PaidAt           *time.Time
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CommissionUpdate struct {
	Status           CommissionStatus
	ApprovedBy       string
	ApprovedAt       *time.Time
	PaidAt           *time.Time
	PaymentReference string
}

type CommissionRepository interface {
	GetCommissionByID(commissionID string) (*Commission, error)
	// UpdateCommissionStatus applies the update only if the stored status still
	// matches expected, and returns ErrConflict otherwise.
	UpdateCommissionStatus(commissionID string, expected CommissionStatus, update CommissionUpdate) error
	// BulkUpdateCommissionStatus is a conditional set-update over the given ids,
	// returning the number of rows changed. No per-item breakdown.
	BulkUpdateCommissionStatus(commissionIDs []string, expected CommissionStatus, update CommissionUpdate) (int64, error)
	GetCommissionsBySaleID(saleID string) ([]*Commission, error)
	GetCommissionsByUser(userID string, status CommissionStatus) ([]*Commission, error)
}
