package saledto

type RecordSaleInput struct {
	// Either DeviceIMEI (unit sale) or ProductID+Quantity (accessory sale).
	DeviceIMEI    string
	ProductID     string
	Quantity      int
	SellerID      string
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
}
