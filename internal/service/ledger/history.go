package ledger

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
)

// AccountTransactions returns the account history newest first
func (s *Service) AccountTransactions(ctx context.Context, id int64, teamID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.storage.View(ctx, func(st repository.Storage) error {
		if _, err := findAccount(ctx, st, id, teamID); err != nil {
			if teamID != "" && errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NotFound("Account not found or does not belong to team")
			}
			return err
		}

		var err error
		transactions, err = st.Transaction().ListTransactions(ctx, []int64{id})
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(transactions)
	return transactions, nil
}

// AllTransactions returns transactions of the team's visible accounts newest first.
// Empty teamID returns every transaction in the ledger.
func (s *Service) AllTransactions(ctx context.Context, teamID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.storage.View(ctx, func(st repository.Storage) error {
		var ids []int64
		if teamID != "" {
			accounts, err := st.Account().ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			ids = make([]int64, 0, len(accounts))
			for _, a := range accounts {
				if a.Visible(teamID) {
					ids = append(ids, a.ID)
				}
			}
		}

		var err error
		transactions, err = st.Transaction().ListTransactions(ctx, ids)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(transactions)
	return transactions, nil
}

// TransactionByID looks a transaction up. With teamID set the owning account must belong to the team.
func (s *Service) TransactionByID(ctx context.Context, id int64, teamID string) (models.Transaction, error) {
	errNotFound := apperrors.NotFound("Transaction not found")

	var t models.Transaction
	err := s.storage.View(ctx, func(st repository.Storage) error {
		var err error
		t, err = st.Transaction().GetTransactionByID(ctx, id)
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			return errNotFound
		case err != nil:
			return fmt.Errorf("get transaction %d: %w", id, err)
		}

		if teamID == "" {
			return nil
		}
		if _, err := findAccount(ctx, st, t.AccountID, teamID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return errNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return t, nil
}

// AccountStatement reports the account activity within [start, end], both ends inclusive
func (s *Service) AccountStatement(ctx context.Context, id int64, teamID string, start, end time.Time) (models.Statement, error) {
	var statement models.Statement
	err := s.storage.View(ctx, func(st repository.Storage) error {
		account, err := findAccount(ctx, st, id, teamID)
		if err != nil {
			return err
		}

		if !start.Before(end) {
			return apperrors.Validation("Start date must be before end date")
		}

		history, err := st.Transaction().ListTransactions(ctx, []int64{id})
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		sortOldestFirst(history)

		statement = buildStatement(account, start, end, history)
		return nil
	})
	if err != nil {
		return models.Statement{}, err
	}

	return statement, nil
}

// buildStatement expects history in ascending order
func buildStatement(account models.Account, start, end time.Time, history []models.Transaction) models.Statement {
	summary := models.StatementSummary{
		OpeningBalance:   account.Balance,
		ClosingBalance:   account.Balance,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}

	window := make([]models.Transaction, 0)
	var before *models.Transaction
	for i, t := range history {
		switch {
		case t.Timestamp.Before(start):
			before = &history[i]
		case t.Timestamp.After(end):
		default:
			window = append(window, t)
			if t.Type.IsDebit() {
				summary.TotalWithdrawals = summary.TotalWithdrawals.Add(t.Amount)
			} else {
				summary.TotalDeposits = summary.TotalDeposits.Add(t.Amount)
			}
		}
	}

	switch {
	case len(window) > 0:
		summary.OpeningBalance = window[0].BalanceBefore()
	case before != nil:
		summary.OpeningBalance = before.BalanceAfter
	}
	summary.TransactionCount = len(window)

	return models.Statement{
		Account:      account,
		StartDate:    start,
		EndDate:      end,
		Summary:      summary,
		Transactions: window,
	}
}

func compareTransactions(a, b models.Transaction) int {
	return cmp.Or(a.Timestamp.Compare(b.Timestamp), cmp.Compare(a.ID, b.ID))
}

func sortOldestFirst(ts []models.Transaction) {
	slices.SortFunc(ts, compareTransactions)
}

func sortNewestFirst(ts []models.Transaction) {
	slices.SortFunc(ts, func(a, b models.Transaction) int {
		return compareTransactions(b, a)
	})
}
