package account

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/hostmail-io/hostmail/internal/domain/account/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

const maxNameLength = 100

// Account is the aggregate root for a tenant identity. Each account owns
// exactly one subscription; that subscription is provisioned in the same
// transaction that creates the account.
type Account struct {
	id           uint
	email        *vo.Email
	name         string
	passwordHash string
	status       vo.AccountStatus
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount creates an account pending persistence. The password hash is
// produced by the application layer; the domain never sees the plaintext.
func NewAccount(email *vo.Email, name, passwordHash string) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name is too long")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Account{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		status:       vo.StatusActive,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAccount reconstructs an account from persistence.
func ReconstructAccount(id uint, email *vo.Email, name, passwordHash string, status vo.AccountStatus, version int, createdAt, updatedAt time.Time) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid account status: %s", status)
	}

	return &Account{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		status:       status,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Email() *vo.Email {
	return a.email
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Status() vo.AccountStatus {
	return a.status
}

func (a *Account) Version() int {
	return a.version
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the account ID (only for persistence layer use)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) CanLogin() bool {
	return a.status.CanLogin()
}

func (a *Account) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name is too long")
	}
	a.name = name
	a.updatedAt = biztime.NowUTC()
	a.version++
	return nil
}

func (a *Account) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.updatedAt = biztime.NowUTC()
	a.version++
	return nil
}

func (a *Account) Suspend() {
	a.status = vo.StatusSuspended
	a.updatedAt = biztime.NowUTC()
	a.version++
}

func (a *Account) Reactivate() {
	a.status = vo.StatusActive
	a.updatedAt = biztime.NowUTC()
	a.version++
}
