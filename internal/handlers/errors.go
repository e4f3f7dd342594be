package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/render"
	"github.com/juanchoclasses/CursorWorkshop/internal/logger"
)

// renderServiceError maps ledger errors to HTTP responses keeping the message as is.
// Anything unexpected is logged and hidden behind 500.
func renderServiceError(w http.ResponseWriter, l logger.Logger, msg string, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		l.Error(msg, "error", err)
		render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	l.Debug(msg, "reason", appErr.Error())

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		render.ServiceError(w, appErr.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		render.ServiceError(w, appErr.Error(), http.StatusBadRequest)
	default:
		l.Error(msg, "error", err)
		render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// pathID reads positive numeric {id} path value
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// teamID prefers the team from request body and falls back to ?teamId= query
func teamID(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return r.URL.Query().Get("teamId")
}

// requiredTeamID resolves the team like teamID and renders 400 when none is given.
// Account mutations never run unscoped.
func requiredTeamID(w http.ResponseWriter, r *http.Request, fromBody string) (string, bool) {
	team := teamID(r, fromBody)
	if team == "" {
		render.ServiceError(w, "Team ID is required", http.StatusBadRequest)
		return "", false
	}
	return team, true
}
