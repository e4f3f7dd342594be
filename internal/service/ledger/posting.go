package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
)

var errInsufficientFunds = apperrors.InsufficientFunds("Insufficient funds")

type TransactionRequest struct {
	Type        models.TransactionType // deposit or withdrawal
	Amount      decimal.Decimal
	Description string
}

type TransferRequest struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Description   string
}

type InterestRequest struct {
	Rate   decimal.Decimal // annual rate, 0.05 is 5%
	Period models.InterestPeriod
}

// CreateTransaction posts a deposit or a withdrawal against a single account
func (s *Service) CreateTransaction(ctx context.Context, id int64, teamID string, req TransactionRequest) (models.Posting, error) {
	var posting models.Posting
	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		account, err := findAccount(ctx, st, id, teamID)
		if err != nil {
			return err
		}

		if account.Status == models.AccountStatusFrozen {
			return apperrors.InvalidState("Cannot perform transactions on frozen account")
		}

		if req.Type == "" || !req.Amount.IsPositive() {
			return apperrors.Validation("Valid type and amount are required")
		}

		switch req.Type {
		case models.TransactionTypeDeposit:
		case models.TransactionTypeWithdrawal:
			if req.Amount.GreaterThan(account.Balance) {
				return errInsufficientFunds
			}
		default:
			return apperrors.Validation(`Invalid transaction type. Use "deposit" or "withdrawal"`)
		}

		t, err := post(ctx, st, &account, req.Type, req.Amount, req.Description, s.timestamp())
		if err != nil {
			return err
		}

		posting = models.Posting{Transaction: t, NewBalance: account.Balance}
		return nil
	})
	if err != nil {
		return models.Posting{}, err
	}

	return posting, nil
}

// TransferFunds moves money between two active accounts of the team.
// Both legs are posted in one storage transaction and share a timestamp.
func (s *Service) TransferFunds(ctx context.Context, teamID string, req TransferRequest) (models.Transfer, error) {
	var transfer models.Transfer
	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		from, errFrom := findAccount(ctx, st, req.FromAccountID, teamID)
		to, errTo := findAccount(ctx, st, req.ToAccountID, teamID)
		for _, err := range []error{errFrom, errTo} {
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
		}
		if errFrom != nil || errTo != nil {
			return apperrors.NotFound("One or both accounts not found")
		}

		if from.Status != models.AccountStatusActive || to.Status != models.AccountStatusActive {
			return apperrors.InvalidState("Both accounts must be active for transfers")
		}

		if !req.Amount.IsPositive() {
			return apperrors.Validation("Transfer amount must be positive")
		}
		if from.ID == to.ID {
			return apperrors.Validation("Cannot transfer to the same account")
		}

		if req.Amount.GreaterThan(from.Balance) {
			return errInsufficientFunds
		}

		now := s.timestamp()
		out, err := post(ctx, st, &from, models.TransactionTypeTransferOut, req.Amount,
			transferDescription("Transfer to", to.AccountNumber, req.Description), now)
		if err != nil {
			return err
		}

		in, err := post(ctx, st, &to, models.TransactionTypeTransferIn, req.Amount,
			transferDescription("Transfer from", from.AccountNumber, req.Description), now)
		if err != nil {
			return err
		}

		transfer = models.Transfer{
			From:         models.TransferLeg{AccountID: from.ID, NewBalance: from.Balance},
			To:           models.TransferLeg{AccountID: to.ID, NewBalance: to.Balance},
			Transactions: []models.Transaction{out, in},
		}
		return nil
	})
	if err != nil {
		return models.Transfer{}, err
	}

	return transfer, nil
}

func transferDescription(prefix, counterparty, description string) string {
	if description == "" {
		return prefix + " " + counterparty
	}
	return fmt.Sprintf("%s %s: %s", prefix, counterparty, description)
}

// ApplyInterest credits balance * rate / periodsPerYear to an active savings account
func (s *Service) ApplyInterest(ctx context.Context, id int64, teamID string, req InterestRequest) (models.InterestAccrual, error) {
	var accrual models.InterestAccrual
	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		account, err := findAccount(ctx, st, id, teamID)
		if err != nil {
			return err
		}

		if account.Status != models.AccountStatusActive {
			return apperrors.InvalidState("Interest can only be applied to active accounts")
		}
		if account.Type != models.AccountTypeSavings {
			return apperrors.InvalidState("Interest can only be applied to savings accounts")
		}

		periods, ok := req.Period.PeriodsPerYear()
		if !ok {
			return apperrors.Validation("Period must be monthly, quarterly or yearly")
		}

		previous := account.Balance
		amount := previous.Mul(req.Rate).Div(decimal.NewFromInt(periods))
		now := s.timestamp()

		t, err := post(ctx, st, &account, models.TransactionTypeInterest, amount, interestDescription(req), now)
		if err != nil {
			return err
		}

		accrual = models.InterestAccrual{
			Account:         account,
			PreviousBalance: previous,
			NewBalance:      account.Balance,
			Rate:            req.Rate,
			Period:          req.Period,
			Amount:          amount,
			AppliedAt:       now,
			Transaction:     t,
		}
		return nil
	})
	if err != nil {
		return models.InterestAccrual{}, err
	}

	return accrual, nil
}

// "Monthly interest - 5.0% APR"
func interestDescription(req InterestRequest) string {
	period := string(req.Period)
	return fmt.Sprintf("%s%s interest - %s%% APR",
		strings.ToUpper(period[:1]), period[1:],
		req.Rate.Mul(decimal.NewFromInt(100)).StringFixed(1),
	)
}
