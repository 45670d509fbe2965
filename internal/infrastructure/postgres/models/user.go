package models

import "time"

type UserModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	FullName          string `gorm:"index"`
	Role              string `gorm:"not null;index"`
	Region            string `gorm:"index"`
	TeamLeaderID      string `gorm:"index"`
	RegionalManagerID string
	Active            bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
