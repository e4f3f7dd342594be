package handlers

import (
	"time"

	"github.com/juanchoclasses/CursorWorkshop/internal/models"
)

type AccountResponse struct {
	ID            int64      `json:"id"`
	TeamID        string     `json:"teamId"`
	AccountNumber string     `json:"accountNumber"`
	AccountHolder string     `json:"accountHolder"`
	Balance       float64    `json:"balance"`
	AccountType   string     `json:"accountType"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	FrozenAt      *time.Time `json:"frozenAt,omitempty"`
	FreezeReason  string     `json:"freezeReason,omitempty"`
	UnfrozenAt    *time.Time `json:"unfrozenAt,omitempty"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
}

func newAccountResponse(a models.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		TeamID:        a.TeamID,
		AccountNumber: a.AccountNumber,
		AccountHolder: a.AccountHolder,
		Balance:       a.Balance.InexactFloat64(),
		AccountType:   string(a.Type),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		FrozenAt:      a.FrozenAt,
		FreezeReason:  a.FreezeReason,
		UnfrozenAt:    a.UnfrozenAt,
		ClosedAt:      a.ClosedAt,
	}
}

func newAccountsResponse(accounts []models.Account) []AccountResponse {
	res := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, newAccountResponse(a))
	}
	return res
}

type TransactionResponse struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"accountId"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
	BalanceAfter float64   `json:"balanceAfter"`
}

func newTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		AccountID:    t.AccountID,
		Type:         string(t.Type),
		Amount:       t.Amount.InexactFloat64(),
		Description:  t.Description,
		Timestamp:    t.Timestamp,
		BalanceAfter: t.BalanceAfter.InexactFloat64(),
	}
}

func newTransactionsResponse(ts []models.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		res = append(res, newTransactionResponse(t))
	}
	return res
}
