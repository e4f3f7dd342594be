package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InterestPeriod string

const (
	InterestPeriodMonthly   InterestPeriod = "monthly"
	InterestPeriodQuarterly InterestPeriod = "quarterly"
	InterestPeriodYearly    InterestPeriod = "yearly"
)

// PeriodsPerYear returns how many times the period fits in a year
func (p InterestPeriod) PeriodsPerYear() (int64, bool) {
	switch p {
	case InterestPeriodMonthly:
		return 12, true
	case InterestPeriodQuarterly:
		return 4, true
	case InterestPeriodYearly:
		return 1, true
	default:
		return 0, false
	}
}

type InterestAccrual struct {
	Account         Account
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal

	Rate      decimal.Decimal
	Period    InterestPeriod
	Amount    decimal.Decimal
	AppliedAt time.Time

	Transaction Transaction
}
