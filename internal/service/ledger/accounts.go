package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
)

const defaultFreezeReason = "Administrative action"

type CreateAccountRequest struct {
	TeamID         string
	AccountHolder  string
	InitialBalance decimal.Decimal
	AccountType    models.AccountType // checking when empty
}

// AccountUpdate lists the mutable fields of an account. Nil fields are left as is.
type AccountUpdate struct {
	AccountHolder *string
	AccountType   *models.AccountType
}

func (s *Service) CreateAccount(ctx context.Context, req CreateAccountRequest) (models.Account, error) {
	teamID := strings.TrimSpace(req.TeamID)
	if teamID == "" {
		return models.Account{}, apperrors.Validation("Team ID is required")
	}

	holder := strings.TrimSpace(req.AccountHolder)
	if holder == "" {
		return models.Account{}, apperrors.Validation("Account holder name is required")
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = models.AccountTypeChecking
	}
	if !accountType.Valid() {
		return models.Account{}, apperrors.Validation("Account type must be checking or savings")
	}

	if req.InitialBalance.IsNegative() {
		return models.Account{}, apperrors.Validation("Initial balance cannot be negative")
	}

	var account models.Account
	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		number, err := s.uniqueAccountNumber(ctx, st)
		if err != nil {
			return err
		}

		now := s.timestamp()
		account, err = st.Account().CreateAccount(ctx, models.Account{
			TeamID:        teamID,
			AccountNumber: number,
			AccountHolder: holder,
			Balance:       decimal.Zero,
			Type:          accountType,
			Status:        models.AccountStatusActive,
			CreatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		if req.InitialBalance.IsPositive() {
			_, err = post(ctx, st, &account, models.TransactionTypeDeposit, req.InitialBalance, "Initial deposit", now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// ListAccounts returns non-closed accounts ordered by id. Empty teamID returns all teams.
func (s *Service) ListAccounts(ctx context.Context, teamID string) ([]models.Account, error) {
	var accounts []models.Account
	err := s.storage.View(ctx, func(st repository.Storage) error {
		all, err := st.Account().ListAccounts(ctx)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}

		accounts = make([]models.Account, 0, len(all))
		for _, a := range all {
			if a.Visible(teamID) {
				accounts = append(accounts, a)
			}
		}
		return nil
	})
	return accounts, err
}

// AccountsByTeam is ListAccounts with a mandatory team: no team means no accounts
func (s *Service) AccountsByTeam(ctx context.Context, teamID string) ([]models.Account, error) {
	if teamID == "" {
		return []models.Account{}, nil
	}
	return s.ListAccounts(ctx, teamID)
}

func (s *Service) GetAccount(ctx context.Context, id int64, teamID string) (models.Account, error) {
	var account models.Account
	err := s.storage.View(ctx, func(st repository.Storage) (err error) {
		account, err = findAccount(ctx, st, id, teamID)
		return err
	})
	return account, err
}

func (s *Service) GetBalance(ctx context.Context, id int64, teamID string) (models.AccountBalance, error) {
	account, err := s.GetAccount(ctx, id, teamID)
	if err != nil {
		return models.AccountBalance{}, err
	}

	return models.AccountBalance{
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
	}, nil
}

func (s *Service) UpdateAccount(ctx context.Context, id int64, teamID string, upd AccountUpdate) (models.Account, error) {
	return s.modifyAccount(ctx, id, teamID, func(a *models.Account) error {
		if a.Status == models.AccountStatusFrozen {
			return apperrors.InvalidState("Cannot update frozen account")
		}

		if upd.AccountHolder != nil {
			holder := strings.TrimSpace(*upd.AccountHolder)
			if holder == "" {
				return apperrors.Validation("Account holder name is required")
			}
			a.AccountHolder = holder
		}

		if upd.AccountType != nil {
			if !upd.AccountType.Valid() {
				return apperrors.Validation("Account type must be checking or savings")
			}
			a.Type = *upd.AccountType
		}
		return nil
	})
}

// FreezeAccount blocks postings on the account. Empty reason is recorded as an administrative action.
func (s *Service) FreezeAccount(ctx context.Context, id int64, teamID, reason string) (models.Account, error) {
	return s.modifyAccount(ctx, id, teamID, func(a *models.Account) error {
		if a.Status == models.AccountStatusFrozen {
			return apperrors.InvalidState("Account is already frozen")
		}

		reason = strings.TrimSpace(reason)
		if reason == "" {
			reason = defaultFreezeReason
		}

		now := s.timestamp()
		a.Status = models.AccountStatusFrozen
		a.FrozenAt = &now
		a.FreezeReason = reason
		return nil
	})
}

func (s *Service) UnfreezeAccount(ctx context.Context, id int64, teamID string) (models.Account, error) {
	return s.modifyAccount(ctx, id, teamID, func(a *models.Account) error {
		if a.Status != models.AccountStatusFrozen {
			return apperrors.InvalidState("Account is not frozen")
		}

		now := s.timestamp()
		a.Status = models.AccountStatusActive
		a.UnfrozenAt = &now
		a.FrozenAt = nil
		a.FreezeReason = ""
		return nil
	})
}

// CloseAccount is terminal: a closed account disappears from every lookup
func (s *Service) CloseAccount(ctx context.Context, id int64, teamID string) (models.Account, error) {
	return s.modifyAccount(ctx, id, teamID, func(a *models.Account) error {
		if !a.Balance.IsZero() {
			return apperrors.InvalidState(fmt.Sprintf(
				"Cannot close account with non-zero balance. Current balance: $%s",
				a.Balance.StringFixed(2),
			))
		}

		now := s.timestamp()
		a.Status = models.AccountStatusClosed
		a.ClosedAt = &now
		return nil
	})
}

// modifyAccount loads the account, lets fn change it and stores the result in one transaction
func (s *Service) modifyAccount(ctx context.Context, id int64, teamID string, fn func(*models.Account) error) (models.Account, error) {
	var account models.Account
	err := s.storage.InTx(ctx, func(st repository.Storage) error {
		a, err := findAccount(ctx, st, id, teamID)
		if err != nil {
			return err
		}
		if err := fn(&a); err != nil {
			return err
		}

		account, err = st.Account().UpdateAccount(ctx, a)
		if err != nil {
			return fmt.Errorf("update account %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}
