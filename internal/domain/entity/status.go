// Package entity contains the core business objects of the project.
package entity

// Status represents the lifecycle state of a user account.
type Status string

const (
	// StatusActive indicates an account in good standing.
	StatusActive Status = "active"
	// StatusSuspended indicates an account that is temporarily blocked.
	StatusSuspended Status = "suspended"
	// StatusDeleted indicates an account that has been soft deleted.
	StatusDeleted Status = "deleted"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	default:
		return false
	}
}
