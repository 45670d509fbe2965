package models

import "time"

type AllocationRecordModel struct {
	ID           string `gorm:"primaryKey;size:21"`
	DeviceID     string `gorm:"type:uuid;index;not null"`
	ProductID    string `gorm:"type:uuid"`
	FromUserID   string
	ToUserID     string
	FromLevel    string
	ToLevel      string
	Type         string `gorm:"not null;index"`
	Status       string `gorm:"not null"`
	Notes        string
	RecallReason string
	RecalledAt   *time.Time
	RecalledBy   string
	CreatedAt    time.Time `gorm:"index"`
}
