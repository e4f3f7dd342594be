package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"validation", Validation("Team ID is required"), ErrValidation, "Team ID is required"},
		{"not found", NotFound("Account not found"), ErrNotFound, "Account not found"},
		{"invalid state", InvalidState("Account is already frozen"), ErrInvalidState, "Account is already frozen"},
		{"insufficient funds", InsufficientFunds("Insufficient funds"), ErrInsufficientFunds, "Insufficient funds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)
			require.Equal(t, tt.message, tt.err.Error(), "message must be kept verbatim")

			wrapped := fmt.Errorf("while posting: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.kind, "kind has to survive wrapping")

			var appErr *Error
			require.True(t, errors.As(wrapped, &appErr))
			require.Equal(t, tt.message, appErr.Error())
		})
	}

	t.Run("storage errors are not found", func(t *testing.T) {
		require.ErrorIs(t, ErrAccountNotFound, ErrNotFound)
		require.ErrorIs(t, ErrTransactionNotFound, ErrNotFound)
		require.NotErrorIs(t, ErrAccountNumberTaken, ErrNotFound)
	})
}
