package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/payment/dto"
	"github.com/hostmail-io/hostmail/internal/domain/payment"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

type ListPaymentsUseCase struct {
	paymentRepo payment.Repository
	logger      logger.Interface
}

func NewListPaymentsUseCase(paymentRepo payment.Repository, logger logger.Interface) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (uc *ListPaymentsUseCase) Execute(ctx context.Context, accountID uint, pagination utils.Pagination) ([]*dto.PaymentDTO, int64, error) {
	payments, err := uc.paymentRepo.FindByAccountID(ctx, accountID, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err, "account_id", accountID)
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	total, err := uc.paymentRepo.CountByAccountID(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return dto.ToPaymentDTOList(payments), total, nil
}
