package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/account/dto"
	"github.com/hostmail-io/hostmail/internal/domain/account"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// response does not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	acc, err := uc.accountRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account", "error", err)
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if acc == nil {
		return nil, ErrInvalidCredentials
	}

	if err := uc.hasher.Verify(acc.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "account_id", acc.ID())
		return nil, ErrInvalidCredentials
	}

	if !acc.CanLogin() {
		return nil, fmt.Errorf("account is %s", acc.Status())
	}

	token, expiresAt, err := uc.tokens.Issue(acc.ID(), acc.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_id", acc.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("account logged in", "account_id", acc.ID())

	return &dto.AuthResultDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountDTO(acc),
	}, nil
}
