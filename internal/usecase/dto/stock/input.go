package stockdto

import "github.com/speedo5/FinetechSalesManager-sub002/internal/domain"

type AllocateStockInput struct {
	DeviceIMEI string
	FromUserID string
	ToUserID   string
	Notes      string
}

type RecallStockInput struct {
	DeviceIMEI string
	RecallerID string
	Reason     string
}

type BulkAllocateStockInput struct {
	DeviceIMEIs []string
	FromUserID  string
	ToUserID    string
	Notes       string
}

type BulkRecallStockInput struct {
	DeviceIMEIs []string
	RecallerID  string
	Reason      string
}

type RegisterDeviceInput struct {
	IMEI             string
	SerialNumber     string
	ProductID        string
	CommissionConfig *domain.CommissionConfig
	RegisteredBy     string
}
