package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/account/dto"
	"github.com/hostmail-io/hostmail/internal/domain/account"
	vo "github.com/hostmail-io/hostmail/internal/domain/account/valueobjects"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

// RegisterUseCase creates an account together with its free subscription in
// one transaction. There is no window where an account exists without a
// subscription.
type RegisterUseCase struct {
	accountRepo      account.Repository
	subscriptionRepo subscription.Repository
	hasher           PasswordHasher
	tokens           TokenIssuer
	tx               TransactionRunner
	logger           logger.Interface
}

func NewRegisterUseCase(
	accountRepo account.Repository,
	subscriptionRepo subscription.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	tx TransactionRunner,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo:      accountRepo,
		subscriptionRepo: subscriptionRepo,
		hasher:           hasher,
		tokens:           tokens,
		tx:               tx,
		logger:           logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if len(cmd.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	exists, err := uc.accountRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, account.ErrEmailAlreadyTaken
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc, err := account.NewAccount(email, cmd.Name, hash)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.accountRepo.Create(txCtx, acc); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		sub, err := subscription.NewSubscription(acc.ID())
		if err != nil {
			return err
		}
		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("registration failed", "error", err, "email", email.String())
		return nil, err
	}

	token, expiresAt, err := uc.tokens.Issue(acc.ID(), acc.Email().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_id", acc.ID())
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("account registered", "account_id", acc.ID(), "email", email.String())

	return &dto.AuthResultDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountDTO(acc),
	}, nil
}
