package repository

import (
	"context"

	"github.com/juanchoclasses/CursorWorkshop/internal/models"
)

// Account repository interface
type AccountRepo interface {
	// Create account and assign it the next id
	// If the account number is used already has to return apperrors.ErrAccountNumberTaken
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// Get account by id regardless of its status
	// If account not found must return apperrors.ErrAccountNotFound
	GetAccountByID(ctx context.Context, id int64) (models.Account, error)

	// Has to return true if any account (closed included) owns the number
	AccountNumberExists(ctx context.Context, number string) (bool, error)

	// List all accounts ordered by id
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// Replace stored account with the given one
	// If account not found must return apperrors.ErrAccountNotFound
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
}

// Transaction repository interface
// Transactions are append only: there is no update or delete
type TransactionRepo interface {
	// Append transaction and assign it the next id
	CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)

	// If transaction not found must return apperrors.ErrTransactionNotFound
	GetTransactionByID(ctx context.Context, id int64) (models.Transaction, error)

	// List transactions in insertion order
	// If accountIDs is nil all transactions are returned
	ListTransactions(ctx context.Context, accountIDs []int64) ([]models.Transaction, error)
}

type Storage interface {
	Account() AccountRepo
	Transaction() TransactionRepo

	// Run fn with exclusive access to the storage
	// Writes made through the passed Storage are reverted if fn returns error
	InTx(ctx context.Context, fn func(Storage) error) error

	// Run fn with shared read access, so several reads observe one state
	// Writes through the passed Storage are not allowed
	View(ctx context.Context, fn func(Storage) error) error
}
