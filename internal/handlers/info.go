package handlers

import (
	"net/http"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/render"
)

const apiVersion = "1.0.0"

func handleInfo() http.Handler {
	type response struct {
		Message   string            `json:"message"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}

	info := response{
		Message: "Bank Backend API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"accounts":     "/api/accounts",
			"transactions": "/api/transactions",
			"balance":      "/api/accounts/{id}/balance",
			"transfer":     "/api/transfer",
			"freeze":       "/api/accounts/{id}/freeze",
			"unfreeze":     "/api/accounts/{id}/unfreeze",
			"close":        "/api/accounts/{id}/close",
			"interest":     "/api/accounts/{id}/interest",
			"statement":    "/api/accounts/{id}/statement",
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		render.JSON(w, info)
	})
}

func handleNotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		render.ServiceError(w, "Route not found", http.StatusNotFound)
	})
}
