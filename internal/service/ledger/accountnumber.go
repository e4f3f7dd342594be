package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
	"github.com/juanchoclasses/CursorWorkshop/internal/service/validate"
)

const accountNumberLength = 10

// AccountNumberGenerator returns a candidate 10 digit account number
type AccountNumberGenerator func() (string, error)

// RandomAccountNumber returns 9 random digits (first one non-zero) followed by a Luhn check digit
func RandomAccountNumber() (string, error) {
	payload := strconv.FormatInt(100_000_000+rand.Int64N(900_000_000), 10)

	digit, err := validate.CheckDigit(payload)
	if err != nil {
		return "", err
	}

	return payload + string(digit), nil
}

func (s *Service) uniqueAccountNumber(ctx context.Context, st repository.Storage) (string, error) {
	for range maxAccountNumberAttempts {
		number, err := s.accountNumbers()
		if err != nil {
			return "", fmt.Errorf("generate account number: %w", err)
		}
		if err := checkAccountNumber(number); err != nil {
			return "", fmt.Errorf("generated account number %q: %w", number, err)
		}

		exists, err := st.Account().AccountNumberExists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("check account number: %w", err)
		}
		if !exists {
			return number, nil
		}
	}

	return "", fmt.Errorf("no unique account number after %d attempts", maxAccountNumberAttempts)
}

// checkAccountNumber accepts 10 digits with no leading zero ending in a Luhn check digit
func checkAccountNumber(number string) error {
	if len(number) != accountNumberLength || number[0] == '0' {
		return errors.New("must be 10 digits without leading zero")
	}
	return validate.Luhn(number)
}
