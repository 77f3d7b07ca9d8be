package dto

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/account"
)

type AccountDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResultDTO struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Account   *AccountDTO `json:"account"`
}

func ToAccountDTO(acc *account.Account) *AccountDTO {
	if acc == nil {
		return nil
	}
	return &AccountDTO{
		ID:        acc.ID(),
		Email:     acc.Email().String(),
		Name:      acc.Name(),
		Status:    acc.Status().String(),
		CreatedAt: acc.CreatedAt(),
	}
}
