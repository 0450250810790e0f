package domain

import "time"

// Role represents the access role of a user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleGroomer  Role = "groomer"
	RoleStaff    Role = "staff"
)

// WarningEventType classifies entries in a customer's warning history
type WarningEventType string

const (
	WarningEventWarning WarningEventType = "warning"
	WarningEventBan     WarningEventType = "ban"
	WarningEventReset   WarningEventType = "reset"
)

// WarningEvent one entry of a customer's warning history, append-only
type WarningEvent struct {
	Type      WarningEventType `json:"type"`
	Reason    string           `json:"reason"`
	Timestamp time.Time        `json:"timestamp"`
}

// User represents an account known to the service
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role

	WarningCount   int
	IsBanned       bool
	BanReason      *string
	WarningHistory []WarningEvent

	GroomerID *string // set for groomer/staff accounts linked to a roster entry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OnWatchlist returns true once the customer accumulated enough warnings
// to be surfaced on the admin watchlist
func (u *User) OnWatchlist() bool {
	return u.WarningCount >= WarningWatchlistThreshold
}

// IsStaffMember returns true for roster-side roles
func (u *User) IsStaffMember() bool {
	return u.Role == RoleGroomer || u.Role == RoleStaff
}
