package domain

import "time"

// Status enumerates the review lifecycle states shared by every submission type.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReviewed Status = "REVIEWED"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ValidStatus reports whether the supplied value is one of the four lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Application mirrors the persisted representation in the applications table
// (solar/land pump subsidy submissions).
type Application struct {
	ID           string
	FullName     string
	FatherName   string
	Village      string
	District     string
	State        string
	Mobile       string
	AadharNumber string
	Status       Status
	CreatedAt    time.Time
}

// PumpApplication mirrors the persisted representation in the pump_applications
// table (submersible pump subsidy submissions). It is an independent aggregate
// with no relationship to Application.
type PumpApplication struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Pin       string
	PumpPower string
	Status    Status
	CreatedAt time.Time
}
