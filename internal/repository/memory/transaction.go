package memory

import (
	"context"
	"slices"

	"github.com/juanchoclasses/CursorWorkshop/internal/apperrors"
	"github.com/juanchoclasses/CursorWorkshop/internal/models"
)

type TransactionRepo struct {
	s *Storage
}

func (r *TransactionRepo) CreateTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	err := r.s.write(func(st *state) (func(), error) {
		if _, ok := st.accounts[t.AccountID]; !ok {
			return nil, apperrors.ErrAccountNotFound
		}

		t.ID = st.transactionSeq.Next()
		st.transactions = append(st.transactions, t)
		st.transactionIdx[t.ID] = len(st.transactions) - 1

		id, n := t.ID, len(st.transactions)-1
		return func() {
			st.transactions = st.transactions[:n]
			delete(st.transactionIdx, id)
		}, nil
	})

	return t, err
}

func (r *TransactionRepo) GetTransactionByID(_ context.Context, id int64) (models.Transaction, error) {
	var (
		t  models.Transaction
		ok bool
	)
	r.s.read(func(st *state) {
		var idx int
		idx, ok = st.transactionIdx[id]
		if ok {
			t = st.transactions[idx]
		}
	})

	if !ok {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}
	return t, nil
}

func (r *TransactionRepo) ListTransactions(_ context.Context, accountIDs []int64) ([]models.Transaction, error) {
	var out []models.Transaction
	r.s.read(func(st *state) {
		if accountIDs == nil {
			out = slices.Clone(st.transactions)
			return
		}

		out = make([]models.Transaction, 0)
		for _, t := range st.transactions {
			if slices.Contains(accountIDs, t.AccountID) {
				out = append(out, t)
			}
		}
	})

	if out == nil {
		out = []models.Transaction{}
	}
	return out, nil
}
