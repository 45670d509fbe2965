package domain

import "time"

type DeviceStatus string

const (
	DeviceInStock   DeviceStatus = "IN_STOCK"
	DeviceAllocated DeviceStatus = "ALLOCATED"
	DeviceSold      DeviceStatus = "SOLD"
	DeviceReturned  DeviceStatus = "RETURNED"
	DeviceDefective DeviceStatus = "DEFECTIVE"
	DeviceLocked    DeviceStatus = "LOCKED"
	DeviceLost      DeviceStatus = "LOST"
)

type Device struct {
	ID              string
	IMEI            string // unique 15-digit identifier
	SerialNumber    string
	ProductID       string
	Status          DeviceStatus
	CurrentHolderID string // empty while the device sits in the depot
	Region          string // stamped on first allocation to a regional manager
	// CommissionConfig overrides the product default when set.
	CommissionConfig *CommissionConfig
	RegisteredBy     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CustodyState is the compare half of a conditional custody write.
type CustodyState struct {
	Status   DeviceStatus
	HolderID string
}

// CustodyUpdate is the swap half. Region is applied only when non-empty.
type CustodyUpdate struct {
	Status   DeviceStatus
	HolderID string
	Region   string
}

type DeviceRepository interface {
	CreateDevice(device *Device) error
	GetDeviceByID(deviceID string) (*Device, error)
	GetDeviceByIMEI(imei string) (*Device, error)
	// UpdateCustody writes the new custody state only if the stored state still
	// matches expected, and returns ErrConflict otherwise.
	UpdateCustody(deviceID string, expected CustodyState, update CustodyUpdate) error
	GetDevicesByHolder(holderID string) ([]*Device, error)
}
