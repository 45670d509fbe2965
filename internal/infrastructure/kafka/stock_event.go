package publisher

type StockEvent struct {
	DeviceIMEI string `json:"device_imei"`
	Type       string `json:"type"` // ALLOCATION or RECALL
	FromUserID string `json:"from_user_id,omitempty"`
	ToUserID   string `json:"to_user_id,omitempty"`
	FromLevel  string `json:"from_level"`
	ToLevel    string `json:"to_level"`
	Reason     string `json:"reason,omitempty"`
}

type SaleEvent struct {
	SaleID          string `json:"sale_id"`
	ReceiptNumber   string `json:"receipt_number"`
	DeviceIMEI      string `json:"device_imei,omitempty"`
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	Total           string `json:"total"`
	SoldBy          string `json:"sold_by"`
	CommissionCount int    `json:"commission_count"`
	CommissionTotal string `json:"commission_total"`
}
