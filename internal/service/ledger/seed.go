package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/models"
)

const DemoTeamID = "demo-team"

// SeedDemoData opens two demo accounts through the regular operations
func (s *Service) SeedDemoData(ctx context.Context) ([]models.Account, error) {
	john, err := s.CreateAccount(ctx, CreateAccountRequest{
		TeamID:         DemoTeamID,
		AccountHolder:  "John Doe",
		InitialBalance: decimal.NewFromInt(1100),
		AccountType:    models.AccountTypeChecking,
	})
	if err != nil {
		return nil, fmt.Errorf("seed checking account: %w", err)
	}

	steps := []TransactionRequest{
		{Type: models.TransactionTypeDeposit, Amount: decimal.NewFromInt(500), Description: "Salary deposit"},
		{Type: models.TransactionTypeWithdrawal, Amount: decimal.NewFromInt(100), Description: "ATM withdrawal"},
	}
	for _, step := range steps {
		posting, err := s.CreateTransaction(ctx, john.ID, DemoTeamID, step)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", step.Type, err)
		}
		john.Balance = posting.NewBalance
	}

	jane, err := s.CreateAccount(ctx, CreateAccountRequest{
		TeamID:         DemoTeamID,
		AccountHolder:  "Jane Smith",
		InitialBalance: decimal.RequireFromString("2750.50"),
		AccountType:    models.AccountTypeSavings,
	})
	if err != nil {
		return nil, fmt.Errorf("seed savings account: %w", err)
	}

	return []models.Account{john, jane}, nil
}
