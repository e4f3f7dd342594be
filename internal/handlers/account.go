package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/render"
	"github.com/juanchoclasses/CursorWorkshop/internal/logger"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/service/ledger"
)

const invalidAccountID = "Invalid account ID"

func handleListAccounts(s ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := s.ListAccounts(r.Context(), r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to list accounts", err)
			return
		}

		render.JSON(w, newAccountsResponse(accounts))
	})
}

func handleCreateAccount(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID         string          `json:"teamId" validate:"max=64"`
		AccountHolder  string          `json:"accountHolder" validate:"max=128"`
		InitialBalance decimal.Decimal `json:"initialBalance"`
		AccountType    string          `json:"accountType"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := s.CreateAccount(r.Context(), ledger.CreateAccountRequest{
			TeamID:         teamID(r, req.TeamID),
			AccountHolder:  req.AccountHolder,
			InitialBalance: req.InitialBalance,
			AccountType:    models.AccountType(req.AccountType),
		})
		if err != nil {
			renderServiceError(w, l, "Failed to create account", err)
			return
		}

		render.Created(w, newAccountResponse(account))
	})
}

func handleGetAccount(s ledgerService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		account, err := s.GetAccount(r.Context(), id, r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to get account", err)
			return
		}

		render.JSON(w, newAccountResponse(account))
	})
}

func handleGetBalance(s ledgerService, l logger.Logger) http.Handler {
	type response struct {
		AccountID     int64   `json:"accountId"`
		AccountNumber string  `json:"accountNumber"`
		Balance       float64 `json:"balance"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			render.ServiceError(w, invalidAccountID, http.StatusBadRequest)
			return
		}

		balance, err := s.GetBalance(r.Context(), id, r.URL.Query().Get("teamId"))
		if err != nil {
			renderServiceError(w, l, "Failed to get balance", err)
			return
		}

		render.JSON(w, response{
			AccountID:     balance.AccountID,
			AccountNumber: balance.AccountNumber,
			Balance:       balance.Balance.InexactFloat64(),
		})
	})
}

func handleUpdateAccount(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID        string  `json:"teamId"`
		AccountHolder *string `json:"accountHolder" validate:"omitempty,max=128"`
		AccountType   *string `json:"accountType"`
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

		team, ok := requiredTeamID(w, r, req.TeamID)
		if !ok {
			return
		}

		upd := ledger.AccountUpdate{AccountHolder: req.AccountHolder}
		if req.AccountType != nil {
			accountType := models.AccountType(*req.AccountType)
			upd.AccountType = &accountType
		}

		account, err := s.UpdateAccount(r.Context(), id, team, upd)
		if err != nil {
			renderServiceError(w, l, "Failed to update account", err)
			return
		}

		render.JSON(w, newAccountResponse(account))
	})
}

type accountActionResponse struct {
	Message string          `json:"message"`
	Account AccountResponse `json:"account"`
}

func handleFreezeAccount(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID string `json:"teamId"`
		Reason string `json:"reason" validate:"max=256"`
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

		team, ok := requiredTeamID(w, r, req.TeamID)
		if !ok {
			return
		}

		account, err := s.FreezeAccount(r.Context(), id, team, req.Reason)
		if err != nil {
			renderServiceError(w, l, "Failed to freeze account", err)
			return
		}

		render.JSON(w, accountActionResponse{
			Message: "Account frozen successfully",
			Account: newAccountResponse(account),
		})
	})
}

func handleUnfreezeAccount(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID string `json:"teamId"`
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

		team, ok := requiredTeamID(w, r, req.TeamID)
		if !ok {
			return
		}

		account, err := s.UnfreezeAccount(r.Context(), id, team)
		if err != nil {
			renderServiceError(w, l, "Failed to unfreeze account", err)
			return
		}

		render.JSON(w, accountActionResponse{
			Message: "Account unfrozen successfully",
			Account: newAccountResponse(account),
		})
	})
}

func handleCloseAccount(s ledgerService, l logger.Logger) http.Handler {
	type request struct {
		TeamID string `json:"teamId"`
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

		team, ok := requiredTeamID(w, r, req.TeamID)
		if !ok {
			return
		}

		account, err := s.CloseAccount(r.Context(), id, team)
		if err != nil {
			renderServiceError(w, l, "Failed to close account", err)
			return
		}

		render.JSON(w, accountActionResponse{
			Message: "Account closed successfully",
			Account: newAccountResponse(account),
		})
	})
}
