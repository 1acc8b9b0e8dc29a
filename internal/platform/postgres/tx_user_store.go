package postgres

import (
	"context"
	"database/sql"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/store"
)

// TxUserStore decorates a UserStore so that its write operations run inside
// database transactions. Reads go straight through.
type TxUserStore struct {
	db    *sql.DB
	inner store.UserStore
}

// NewTxUserStore wraps the given UserStore with transactional writes.
func NewTxUserStore(db *sql.DB, inner store.UserStore) *TxUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &TxUserStore{db: db, inner: inner}
}

// Ensure TxUserStore implements store.UserStore interface
var _ store.UserStore = (*TxUserStore)(nil)

// Create implements store.UserStore.Create inside a transaction.
func (s *TxUserStore) Create(ctx context.Context, user *domain.User) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.inner.WithTx(tx).Create(ctx, user)
	})
}

// GetByID implements store.UserStore.GetByID.
func (s *TxUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.inner.GetByID(ctx, id)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *TxUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.inner.GetByEmail(ctx, email)
}

// EmailExists implements store.UserStore.EmailExists.
func (s *TxUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.inner.EmailExists(ctx, email)
}

// Update implements store.UserStore.Update inside a transaction.
func (s *TxUserStore) Update(ctx context.Context, user *domain.User) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.inner.WithTx(tx).Update(ctx, user)
	})
}

// Delete implements store.UserStore.Delete inside a transaction.
func (s *TxUserStore) Delete(ctx context.Context, id int64) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.inner.WithTx(tx).Delete(ctx, id)
	})
}

// WithTx implements store.UserStore.WithTx. A caller-managed transaction
// supersedes the decorator, so this returns the inner store bound to it.
func (s *TxUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s.inner.WithTx(tx)
}
