package validate

import (
	"errors"
)

var errInvalidCharacters = errors.New("number contains invalid characters")

// luhnSum returns the Luhn sum of digits. When withCheckDigit is false the number
// is treated as a payload a check digit will be appended to.
func luhnSum(number string, withCheckDigit bool) (int, error) {
	// Walk digits from the right, doubling every second one
	// It's ok to work with string as bytes here
	sum := 0
	position := 1
	if !withCheckDigit {
		position = 2
	}

	for i := len(number) - 1; i >= 0; i-- {
		n := number[i]
		if n < '0' || n > '9' {
			return 0, errInvalidCharacters
		}

		digit := int(n - '0')
		if position%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit = (digit % 10) + 1
			}
		}

		sum += digit
		position++
	}

	return sum, nil
}

// Luhn validates number whose last digit is a Luhn check digit
func Luhn(number string) error {
	if number == "" {
		return errors.New("number is empty")
	}

	sum, err := luhnSum(number, true)
	if err != nil {
		return err
	}

	switch sum % 10 {
	case 0:
		return nil
	default:
		return errors.New("number is not valid according to Luhn algorithm")
	}
}

// CheckDigit computes the digit to append to payload so that the result passes Luhn
func CheckDigit(payload string) (byte, error) {
	sum, err := luhnSum(payload, false)
	if err != nil {
		return 0, err
	}

	return byte('0' + (10-sum%10)%10), nil
}
