package request

import "github.com/shopspring/decimal"

type AllocateStockRequest struct {
	DeviceIMEI string `json:"deviceImei" validate:"required,len=15,numeric"`
	// Recipient is a user id or an exact full name; resolved before the
	// transfer engine runs.
	Recipient string `json:"recipient" validate:"required"`
	Notes     string `json:"notes"`
}

type BulkAllocateStockRequest struct {
	DeviceIMEIs []string `json:"deviceImeis" validate:"required,min=1,dive,len=15,numeric"`
	Recipient   string   `json:"recipient" validate:"required"`
	Notes       string   `json:"notes"`
}

type RecallStockRequest struct {
	DeviceIMEI string `json:"deviceImei" validate:"required,len=15,numeric"`
	Reason     string `json:"reason"`
}

type BulkRecallStockRequest struct {
	DeviceIMEIs []string `json:"deviceImeis" validate:"required,min=1,dive,len=15,numeric"`
	Reason      string   `json:"reason"`
}

type CommissionConfigPayload struct {
	FoCommission              decimal.Decimal `json:"foCommission"`
	TeamLeaderCommission      decimal.Decimal `json:"teamLeaderCommission"`
	RegionalManagerCommission decimal.Decimal `json:"regionalManagerCommission"`
}

type RegisterDeviceRequest struct {
	IMEI             string                   `json:"imei" validate:"required,len=15,numeric"`
	SerialNumber     string                   `json:"serialNumber"`
	ProductID        string                   `json:"productId" validate:"required,uuid"`
	CommissionConfig *CommissionConfigPayload `json:"commissionConfig"`
}
