package request

type RecordSaleRequest struct {
	DeviceIMEI    string `json:"deviceImei" validate:"omitempty,len=15,numeric"`
	ProductID     string `json:"productId" validate:"omitempty,uuid"`
	Quantity      int64  `json:"quantity" validate:"omitempty,min=1"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}
