package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeInterest    TransactionType = "interest"
)

// IsCredit reports whether the transaction increases the balance
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeTransferIn, TransactionTypeInterest:
		return true
	default:
		return false
	}
}

// IsDebit reports whether the transaction decreases the balance
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypeTransferOut
}

// Transaction is an immutable ledger entry. Amount is always a magnitude, direction comes from Type.
type Transaction struct {
	ID           int64
	AccountID    int64
	Type         TransactionType
	Amount       decimal.Decimal
	Description  string
	Timestamp    time.Time
	BalanceAfter decimal.Decimal
}

// Delta is the signed change the transaction applied to the balance
func (t Transaction) Delta() decimal.Decimal {
	if t.Type.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BalanceBefore reconstructs the balance right before the transaction was applied
func (t Transaction) BalanceBefore() decimal.Decimal {
	return t.BalanceAfter.Sub(t.Delta())
}

// Result of posting a deposit or withdrawal
type Posting struct {
	Transaction Transaction
	NewBalance  decimal.Decimal
}

type TransferLeg struct {
	AccountID  int64
	NewBalance decimal.Decimal
}

// Result of a transfer between two accounts
type Transfer struct {
	From         TransferLeg
	To           TransferLeg
	Transactions []Transaction // transfer_out first, transfer_in second
}
