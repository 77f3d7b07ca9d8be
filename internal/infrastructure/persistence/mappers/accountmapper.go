package mappers

import (
	"fmt"

	"github.com/hostmail-io/hostmail/internal/domain/account"
	vo "github.com/hostmail-io/hostmail/internal/domain/account/valueobjects"
	"github.com/hostmail-io/hostmail/internal/infrastructure/persistence/models"
)

func AccountToModel(acc *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:           acc.ID(),
		Email:        acc.Email().String(),
		Name:         acc.Name(),
		PasswordHash: acc.PasswordHash(),
		Status:       acc.Status().String(),
		Version:      acc.Version(),
		CreatedAt:    acc.CreatedAt(),
		UpdatedAt:    acc.UpdatedAt(),
	}
}

func AccountToDomain(model *models.AccountModel) (*account.Account, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in storage: %w", err)
	}

	status := vo.AccountStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid account status: %s", model.Status)
	}

	return account.ReconstructAccount(
		model.ID, email, model.Name, model.PasswordHash, status,
		model.Version, model.CreatedAt, model.UpdatedAt,
	)
}
