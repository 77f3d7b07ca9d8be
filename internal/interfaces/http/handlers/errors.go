package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/hostmail-io/hostmail/internal/application/account/usecases"
	"github.com/hostmail-io/hostmail/internal/domain/account"
	"github.com/hostmail-io/hostmail/internal/domain/asset"
	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/domain/payment"
	"github.com/hostmail-io/hostmail/internal/domain/project"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/errors"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

// respondError translates application errors into HTTP responses. Domain
// sentinels carry the semantics; anything unmapped is masked as an internal
// error so storage details never leak to clients.
func respondError(c *gin.Context, err error) {
	utils.AppErrorResponse(c, toAppError(err))
}

func toAppError(err error) error {
	if errors.GetAppError(err) != nil {
		return err
	}

	var quotaErr *subscription.QuotaError
	if stderrors.As(err, &quotaErr) {
		return errors.NewQuotaExceededError(quotaErr.Error(), quotaErr.Limit, quotaErr.Current)
	}

	switch {
	case stderrors.Is(err, account.ErrAccountNotFound),
		stderrors.Is(err, subscription.ErrSubscriptionNotFound),
		stderrors.Is(err, website.ErrWebsiteNotFound),
		stderrors.Is(err, project.ErrProjectNotFound),
		stderrors.Is(err, contact.ErrMessageNotFound),
		stderrors.Is(err, asset.ErrAssetNotFound),
		stderrors.Is(err, payment.ErrPaymentNotFound),
		stderrors.Is(err, webhook.ErrWebhookNotFound):
		return errors.NewNotFoundError(err.Error())

	case stderrors.Is(err, account.ErrEmailAlreadyTaken),
		stderrors.Is(err, website.ErrDomainAlreadyTaken),
		stderrors.Is(err, project.ErrSlugAlreadyTaken):
		return errors.NewConflictError(err.Error())

	case stderrors.Is(err, usecases.ErrInvalidCredentials):
		return errors.NewUnauthorizedError(err.Error())

	case stderrors.Is(err, subscription.ErrFeatureNotAvailable):
		return errors.NewForbiddenError(err.Error())

	// A policy violation is a well-formed request asking for something the
	// rules forbid, a client error rather than a permission problem.
	case stderrors.Is(err, subscription.ErrPolicyViolation),
		stderrors.Is(err, subscription.ErrUnknownPlan),
		stderrors.Is(err, subscription.ErrInvalidStatusTransition),
		stderrors.Is(err, website.ErrWebsiteInactive):
		return errors.NewBadRequestError(err.Error())

	case stderrors.Is(err, payment.ErrOrderExpired):
		return errors.NewConflictError(err.Error())
	}

	return err
}

// bindError reports gin binding failures as validation errors.
func bindError(c *gin.Context, err error) {
	utils.AppErrorResponse(c, errors.NewValidationError("invalid request body", err.Error()))
}
