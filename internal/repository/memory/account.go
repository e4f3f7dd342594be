package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
)

type AccountRepo struct {
	s *Storage
}

func (r *AccountRepo) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	err := r.s.write(func(st *state) (func(), error) {
		if _, taken := st.accountNumbers[account.AccountNumber]; taken {
			return nil, apperrors.ErrAccountNumberTaken
		}

		account.ID = st.accountSeq.Next()
		st.accounts[account.ID] = account
		st.accountNumbers[account.AccountNumber] = account.ID

		id, number := account.ID, account.AccountNumber
		return func() {
			delete(st.accounts, id)
			delete(st.accountNumbers, number)
		}, nil
	})

	return account, err
}

func (r *AccountRepo) GetAccountByID(_ context.Context, id int64) (models.Account, error) {
	var (
		account models.Account
		ok      bool
	)
	r.s.read(func(st *state) {
		account, ok = st.accounts[id]
	})

	if !ok {
		return models.Account{}, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepo) AccountNumberExists(_ context.Context, number string) (bool, error) {
	var exists bool
	r.s.read(func(st *state) {
		_, exists = st.accountNumbers[number]
	})
	return exists, nil
}

func (r *AccountRepo) ListAccounts(_ context.Context) ([]models.Account, error) {
	var accounts []models.Account
	r.s.read(func(st *state) {
		accounts = make([]models.Account, 0, len(st.accounts))
		for _, a := range st.accounts {
			accounts = append(accounts, a)
		}
	})

	slices.SortFunc(accounts, func(a, b models.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return accounts, nil
}

func (r *AccountRepo) UpdateAccount(_ context.Context, account models.Account) (models.Account, error) {
	err := r.s.write(func(st *state) (func(), error) {
		prev, ok := st.accounts[account.ID]
		if !ok {
			return nil, apperrors.ErrAccountNotFound
		}

		// Account number is immutable
		account.AccountNumber = prev.AccountNumber
		st.accounts[account.ID] = account

		return func() { st.accounts[prev.ID] = prev }, nil
	})

	return account, err
}

