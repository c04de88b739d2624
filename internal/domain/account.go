package domain

import (
	"strings"
	"time"
)

// Role enumerates supported account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Status enumerates account access states.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// CreditPool holds the two metered balances and the ceilings they replenish to.
type CreditPool struct {
	Daily      int
	MaxDaily   int
	Monthly    int
	MaxMonthly int
}

// Valid reports whether both balances sit inside their ceilings.
func (p CreditPool) Valid() bool {
	return p.Daily >= 0 && p.Daily <= p.MaxDaily &&
		p.Monthly >= 0 && p.Monthly <= p.MaxMonthly
}

// Full returns the pool with both balances restored to their ceilings.
func (p CreditPool) Full() CreditPool {
	p.Daily = p.MaxDaily
	p.Monthly = p.MaxMonthly
	return p
}

// Account represents a creator account within the platform.
type Account struct {
	ID       string
	Name     string
	Email    string
	Plan     Plan
	Role     Role
	Status   Status
	Credits  CreditPool
	JoinedAt time.Time
}

// IsAdmin reports whether the account is exempt from credit metering.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsBlocked reports whether the account is denied authentication.
func (a Account) IsBlocked() bool {
	return a.Status == StatusBlocked
}

// NormalizeEmail lowercases an email for use as the directory lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
