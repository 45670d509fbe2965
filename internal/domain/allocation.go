package domain

import "time"

type AllocationType string

const (
	AllocationTypeAllocation AllocationType = "ALLOCATION"
	AllocationTypeRecall     AllocationType = "RECALL"
)

type AllocationStatus string

const (
	AllocationCompleted AllocationStatus = "COMPLETED"
	AllocationRecalled  AllocationStatus = "RECALLED"
	// Reserved statuses, not written by the transfer engine.
	AllocationPending  AllocationStatus = "PENDING"
	AllocationReturned AllocationStatus = "RETURNED"
)

// AllocationRecord is an append-only ledger entry describing one custody
// transfer. Role levels are snapshots taken at transfer time; the record is
// never mutated after creation.
type AllocationRecord struct {
	ID           string
	DeviceID     string
	ProductID    string
	FromUserID   string
	ToUserID     string
	FromLevel    Role
	ToLevel      Role
	Type         AllocationType
	Status       AllocationStatus
	Notes        string
	RecallReason string
	RecalledAt   *time.Time
	RecalledBy   string
	CreatedAt    time.Time
}

type AllocationRepository interface {
	CreateAllocationRecord(record *AllocationRecord) error
	GetAllocationRecordsByDeviceID(deviceID string) ([]*AllocationRecord, error)
}
