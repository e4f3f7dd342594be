package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeChecking || t == AccountTypeSavings
}

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusFrozen AccountStatus = "frozen"
	AccountStatusClosed AccountStatus = "closed"
)

type Account struct {
	ID            int64
	TeamID        string
	AccountNumber string
	AccountHolder string
	Balance       decimal.Decimal
	Type          AccountType
	Status        AccountStatus
	CreatedAt     time.Time

	FrozenAt     *time.Time // nil unless frozen
	FreezeReason string
	UnfrozenAt   *time.Time
	ClosedAt     *time.Time
}

// Visible reports whether the account matches the team filter and is not closed.
// Empty teamID means no filter.
func (a *Account) Visible(teamID string) bool {
	if a.Status == AccountStatusClosed {
		return false
	}
	return teamID == "" || a.TeamID == teamID
}

// Balance snapshot returned by the balance endpoint
type AccountBalance struct {
	AccountID     int64
	AccountNumber string
	Balance       decimal.Decimal
}
