package domain

import "time"

type User struct {
	ID                string
	FullName          string
	Role              Role
	Region            string
	TeamLeaderID      string // set only for field officers
	RegionalManagerID string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type UserRepository interface {
	GetUserByID(userID string) (*User, error)
	// GetUserByName resolves a user by exact full-name match.
	// Zero or multiple matches surface as ErrNotFound.
	GetUserByName(fullName string) (*User, error)
	FindActiveUserByRoleAndRegion(role Role, region string) (*User, error)
}
