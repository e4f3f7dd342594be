package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/juanchoclasses/CursorWorkshop/internal/models"
	"github.com/juanchoclasses/CursorWorkshop/internal/repository"
)

var errReadOnly = errors.New("write attempted inside read-only view")

type state struct {
	mu sync.RWMutex

	accounts       map[int64]models.Account
	accountNumbers map[string]int64
	transactions   []models.Transaction
	transactionIdx map[int64]int

	accountSeq     Sequence
	transactionSeq Sequence
}

// Storage keeps the whole ledger in process memory
type Storage struct {
	st *state

	// Set when the storage is handed to InTx or View callbacks: the lock is held by the caller
	locked   bool
	readOnly bool
	undo     *[]func()
}

func NewStorage() *Storage {
	return &Storage{
		st: &state{
			accounts:       make(map[int64]models.Account),
			accountNumbers: make(map[string]int64),
			transactionIdx: make(map[int64]int),
		},
	}
}

func (s *Storage) Account() repository.AccountRepo {
	return &AccountRepo{s: s}
}

func (s *Storage) Transaction() repository.TransactionRepo {
	return &TransactionRepo{s: s}
}

func (s *Storage) InTx(ctx context.Context, fn func(repository.Storage) error) (err error) {
	if s.locked {
		// Nested transaction joins the outer one
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	var undo []func()
	tx := &Storage{st: s.st, locked: true, undo: &undo}

	defer func() {
		if p := recover(); p != nil {
			rollback(undo)
			panic(p)
		}
		if err != nil {
			rollback(undo)
		}
	}()

	return fn(tx)
}

func (s *Storage) View(ctx context.Context, fn func(repository.Storage) error) error {
	if s.locked {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.st.mu.RLock()
	defer s.st.mu.RUnlock()

	return fn(&Storage{st: s.st, locked: true, readOnly: true})
}

func rollback(undo []func()) {
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

// read runs fn under the read lock unless the caller holds the lock already
func (s *Storage) read(fn func(st *state)) {
	if !s.locked {
		s.st.mu.RLock()
		defer s.st.mu.RUnlock()
	}
	fn(s.st)
}

// write runs fn under the write lock unless the caller holds it already.
// fn returns the action that reverts its change; it is recorded when running inside InTx.
func (s *Storage) write(fn func(st *state) (func(), error)) error {
	if s.readOnly {
		return errReadOnly
	}
	if !s.locked {
		s.st.mu.Lock()
		defer s.st.mu.Unlock()
	}

	revert, err := fn(s.st)
	if err != nil {
		return err
	}
	if s.undo != nil && revert != nil {
		*s.undo = append(*s.undo, revert)
	}
	return nil
}

// Stats is used by the app on startup to report what is loaded
func (s *Storage) Stats() (accounts int, transactions int) {
	s.read(func(st *state) {
		accounts, transactions = len(st.accounts), len(st.transactions)
	})
	return accounts, transactions
}

