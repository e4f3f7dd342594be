package handlers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/render"
	"github.com/juanchoclasses/CursorWorkshop/internal/logger"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/service/ledger"
)

func handleListAccountTransactions(s ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		ts, err := s.AccountTransactions(r.Context(), id, r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to list account transactions", err)
			return
		}

		render.JSON(w, newTransactionsResponse(ts))
	})
}

func handleCreateTransaction(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID      string          `json:"teamId"`
		Type        string          `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description" validate:"max=256"`
	}

	type response struct {
		Transaction TransactionResponse `json:"transaction"`
		NewBalance  float64             `json:"newBalance"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		posting, err := s.CreateTransaction(r.Context(), id, teamID(r, req.TeamID), ledger.TransactionRequest{
			Type:        models.TransactionType(req.Type),
			Amount:      req.Amount,
			Description: req.Description,
		})
		if err != nil {
			renderServiceError(w, l, "Failed to create transaction", err)
			return
		}

		render.Created(w, response{
			Transaction: newTransactionResponse(posting.Transaction),
			NewBalance:  posting.NewBalance.InexactFloat64(),
		})
	})
}

func handleTransfer(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID        string           `json:"teamId"`
		FromAccountID int64            `json:"fromAccountId" validate:"required"`
		ToAccountID   int64            `json:"toAccountId" validate:"required"`
		Amount        *decimal.Decimal `json:"amount" validate:"required"`
		Description   string           `json:"description" validate:"max=256"`
	}

	type leg struct {
		ID         int64   `json:"id"`
		NewBalance float64 `json:"newBalance"`
	}

	type response struct {
		Message      string                `json:"message"`
		FromAccount  leg                   `json:"fromAccount"`
		ToAccount    leg                   `json:"toAccount"`
		Transactions []TransactionResponse `json:"transactions"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		transfer, err := s.TransferFunds(r.Context(), teamID(r, req.TeamID), ledger.TransferRequest{
			FromAccountID: req.FromAccountID,
			ToAccountID:   req.ToAccountID,
			Amount:        *req.Amount,
			Description:   req.Description,
		})
		if err != nil {
			renderServiceError(w, l, "Failed to transfer funds", err)
			return
		}

		render.JSON(w, response{
			Message:      "Transfer completed successfully",
			FromAccount:  leg{ID: transfer.From.AccountID, NewBalance: transfer.From.NewBalance.InexactFloat64()},
			ToAccount:    leg{ID: transfer.To.AccountID, NewBalance: transfer.To.NewBalance.InexactFloat64()},
			Transactions: newTransactionsResponse(transfer.Transactions),
		})
	})
}

func handleApplyInterest(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID       string           `json:"teamId"`
		InterestRate *decimal.Decimal `json:"interestRate" validate:"required"`
		Period       string           `json:"period" validate:"required"`
	}

	type account struct {
		ID              int64   `json:"id"`
		AccountNumber   string  `json:"accountNumber"`
		AccountHolder   string  `json:"accountHolder"`
		PreviousBalance float64 `json:"previousBalance"`
		NewBalance      float64 `json:"newBalance"`
		AccountType     string  `json:"accountType"`
	}

	type interest struct {
		Rate      float64   `json:"rate"`
		Period    string    `json:"period"`
		Amount    float64   `json:"amount"`
		AppliedAt time.Time `json:"appliedAt"`
	}

	type response struct {
		Account     account             `json:"account"`
		Interest    interest            `json:"interest"`
		Transaction TransactionResponse `json:"transaction"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		accrual, err := s.ApplyInterest(r.Context(), id, teamID(r, req.TeamID), ledger.InterestRequest{
			Rate:   *req.InterestRate,
			Period: models.InterestPeriod(req.Period),
		})
		if err != nil {
			renderServiceError(w, l, "Failed to apply interest", err)
			return
		}

		render.JSON(w, response{
			Account: account{
				ID:              accrual.Account.ID,
				AccountNumber:   accrual.Account.AccountNumber,
				AccountHolder:   accrual.Account.AccountHolder,
				PreviousBalance: accrual.PreviousBalance.InexactFloat64(),
				NewBalance:      accrual.NewBalance.InexactFloat64(),
				AccountType:     string(accrual.Account.Type),
			},
			Interest: interest{
				Rate:      accrual.Rate.InexactFloat64(),
				Period:    string(accrual.Period),
				Amount:    accrual.Amount.InexactFloat64(),
				AppliedAt: accrual.AppliedAt,
			},
			Transaction: newTransactionResponse(accrual.Transaction),
		})
	})
}

func handleStatement(s ledgerService, l logger.Logger) http.Handler {
	type account struct {
		ID            int64  `json:"id"`
		AccountNumber string `json:"accountNumber"`
		AccountHolder string `json:"accountHolder"`
		AccountType   string `json:"accountType"`
	}

	type period struct {
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
	}

	type summary struct {
		OpeningBalance   float64 `json:"openingBalance"`
		ClosingBalance   float64 `json:"closingBalance"`
		TotalDeposits    float64 `json:"totalDeposits"`
		TotalWithdrawals float64 `json:"totalWithdrawals"`
		TransactionCount int     `json:"transactionCount"`
	}

	type response struct {
		Account      account               `json:"account"`
		Period       period                `json:"period"`
		Summary      summary               `json:"summary"`
		Transactions []TransactionResponse `json:"transactions"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		query := r.URL.Query()
		rawStart, rawEnd := query.Get("startDate"), query.Get("endDate")
		if rawStart == "" || rawEnd == "" {
			render.ServiceError(w, "Start date and end date are required", http.StatusBadRequest)
			return
		}

		start, errStart := parseDate(rawStart)
		end, errEnd := parseDate(rawEnd)
		if errStart != nil || errEnd != nil {
			render.ServiceError(w, "Invalid date format. Use YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		statement, err := s.AccountStatement(r.Context(), id, query.Get("teamId"), start, end)
		if err != nil {
			renderServiceError(w, l, "Failed to build statement", err)
			return
		}

		render.JSON(w, response{
			Account: account{
				ID:            statement.Account.ID,
				AccountNumber: statement.Account.AccountNumber,
				AccountHolder: statement.Account.AccountHolder,
				AccountType:   string(statement.Account.Type),
			},
			Period: period{StartDate: statement.StartDate, EndDate: statement.EndDate},
			Summary: summary{
				OpeningBalance:   statement.Summary.OpeningBalance.InexactFloat64(),
				ClosingBalance:   statement.Summary.ClosingBalance.InexactFloat64(),
				TotalDeposits:    statement.Summary.TotalDeposits.InexactFloat64(),
				TotalWithdrawals: statement.Summary.TotalWithdrawals.InexactFloat64(),
				TransactionCount: statement.Summary.TransactionCount,
			},
			Transactions: newTransactionsResponse(statement.Transactions),
		})
	})
}

// parseDate accepts RFC3339 or a bare date meaning midnight UTC
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

func handleListTransactions(s ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts, err := s.AllTransactions(r.Context(), r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to list transactions", err)
			return
		}

		render.JSON(w, newTransactionsResponse(ts))
	})
}

func handleGetTransaction(s ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, "Invalid transaction ID", http.StatusBadRequest)
			return
		}

		t, err := s.TransactionByID(r.Context(), id, r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to get transaction", err)
			return
		}

		render.JSON(w, newTransactionResponse(t))
	})
}
