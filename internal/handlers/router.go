package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/middleware"
	"github.com/juanchoclasses/CursorWorkshop/internal/logger"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/service/ledger"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	ledgerService ledgerService,
	logger logger.Logger,
	allowOrigins []string,
) http.Handler {
	api := http.NewServeMux()

	api.Handle("GET /accounts", handleListAccounts(ledgerService, logger))
	api.Handle("POST /accounts", handleCreateAccount(ledgerService, logger))
	api.Handle("GET /accounts/{id}", handleGetAccount(ledgerService, logger))
	api.Handle("PUT /accounts/{id}", handleUpdateAccount(ledgerService, logger))
	api.Handle("GET /accounts/{id}/balance", handleGetBalance(ledgerService, logger))
	api.Handle("POST /accounts/{id}/freeze", handleFreezeAccount(ledgerService, logger))
	api.Handle("POST /accounts/{id}/unfreeze", handleUnfreezeAccount(ledgerService, logger))
	api.Handle("POST /accounts/{id}/close", handleCloseAccount(ledgerService, logger))

	api.Handle("GET /accounts/{id}/transactions", handleListAccountTransactions(ledgerService, logger))
	api.Handle("POST /accounts/{id}/transactions", handleCreateTransaction(ledgerService, logger))
	api.Handle("POST /accounts/{id}/interest", handleApplyInterest(ledgerService, logger))
	api.Handle("GET /accounts/{id}/statement", handleStatement(ledgerService, logger))

	api.Handle("GET /transactions", handleListTransactions(ledgerService, logger))
	api.Handle("GET /transactions/{id}", handleGetTransaction(ledgerService, logger))
	api.Handle("POST /transfer", handleTransfer(ledgerService, logger))
	api.Handle("/", handleNotFound())

	root := http.NewServeMux()
	root.Handle("GET /{$}", handleInfo())
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", handleNotFound())

	handler := chain(root,
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(logger),
		middleware.CORSMiddleware(allowOrigins),
	)

	return handler
}

type ledgerService interface {
	// Accounts. Empty teamID disables team filtering
	// Unknown, closed or foreign accounts has to be reported as apperrors.ErrNotFound
	CreateAccount(ctx context.Context, req ledger.CreateAccountRequest) (models.Account, error)
	ListAccounts(ctx context.Context, teamID string) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64, teamID string) (models.Account, error)
	GetBalance(ctx context.Context, id int64, teamID string) (models.AccountBalance, error)
	UpdateAccount(ctx context.Context, id int64, teamID string, upd ledger.AccountUpdate) (models.Account, error)
	FreezeAccount(ctx context.Context, id int64, teamID, reason string) (models.Account, error)
	UnfreezeAccount(ctx context.Context, id int64, teamID string) (models.Account, error)
	CloseAccount(ctx context.Context, id int64, teamID string) (models.Account, error)

	// Postings
	CreateTransaction(ctx context.Context, id int64, teamID string, req ledger.TransactionRequest) (models.Posting, error)
	TransferFunds(ctx context.Context, teamID string, req ledger.TransferRequest) (models.Transfer, error)
	ApplyInterest(ctx context.Context, id int64, teamID string, req ledger.InterestRequest) (models.InterestAccrual, error)

	// Reports
	AccountTransactions(ctx context.Context, id int64, teamID string) ([]models.Transaction, error)
	AllTransactions(ctx context.Context, teamID string) ([]models.Transaction, error)
	TransactionByID(ctx context.Context, id int64, teamID string) (models.Transaction, error)
	AccountStatement(ctx context.Context, id int64, teamID string, start, end time.Time) (models.Statement, error)
}
