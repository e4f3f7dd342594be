// Package ledger owns the business rules of the bank: account lifecycle,
// postings, transfers, interest and statements.
//
// Every mutating operation validates all preconditions and mutates storage inside
// one storage transaction, so a rejected call leaves accounts and transactions untouched.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
)

const maxAccountNumberAttempts = 10

type Config struct {
	// Clock used to stamp accounts and transactions. Defaults to time.Now
	Now func() time.Time

	// Account number source. Defaults to RandomAccountNumber
	AccountNumbers AccountNumberGenerator
}

type Service struct {
	storage        repository.Storage
	now            func() time.Time
	accountNumbers AccountNumberGenerator
}

func NewService(cfg Config, storage repository.Storage) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.AccountNumbers == nil {
		cfg.AccountNumbers = RandomAccountNumber
	}

	return &Service{
		storage:        storage,
		now:            cfg.Now,
		accountNumbers: cfg.AccountNumbers,
	}
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

var errAccountNotFound = apperrors.NotFound("Account not found")

// findAccount resolves an account the way every operation sees it:
// closed accounts and accounts of other teams do not exist
func findAccount(ctx context.Context, st repository.Storage, id int64, teamID string) (models.Account, error) {
	account, err := st.Account().GetAccountByID(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return models.Account{}, errAccountNotFound
	case err != nil:
		return models.Account{}, fmt.Errorf("get account %d: %w", id, err)
	}

	if !account.Visible(teamID) {
		return models.Account{}, errAccountNotFound
	}
	return account, nil
}

// post is the single place where a balance changes: it applies the transaction to the
// account, stores the account and appends the transaction with its balance snapshot
func post(
	ctx context.Context,
	st repository.Storage,
	account *models.Account,
	typ models.TransactionType,
	amount decimal.Decimal,
	description string,
	at time.Time,
) (models.Transaction, error) {
	t := models.Transaction{
		AccountID:   account.ID,
		Type:        typ,
		Amount:      amount,
		Description: description,
		Timestamp:   at,
	}

	balance := account.Balance.Add(t.Delta())
	t.BalanceAfter = balance

	updated := *account
	updated.Balance = balance
	if _, err := st.Account().UpdateAccount(ctx, updated); err != nil {
		return models.Transaction{}, fmt.Errorf("update balance of account %d: %w", account.ID, err)
	}

	created, err := st.Transaction().CreateTransaction(ctx, t)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("append %s transaction: %w", typ, err)
	}

	account.Balance = balance
	return created, nil
}
