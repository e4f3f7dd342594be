package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatementSummary struct {
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TransactionCount int
}

// Statement is a read-only report over [StartDate, EndDate]
type Statement struct {
	Account      Account
	StartDate    time.Time
	EndDate      time.Time
	Summary      StatementSummary
	Transactions []Transaction // ascending by timestamp
}
