package usecases

import (
	"context"
	"time"
)

// PasswordHasher abstracts the bcrypt hashing in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer abstracts JWT issuance in infrastructure/auth.
type TokenIssuer interface {
	Issue(accountID uint, email string) (token string, expiresAt time.Time, err error)
}

// TransactionRunner runs a function inside a database transaction. Writes
// issued through repositories inside fn join the same transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
