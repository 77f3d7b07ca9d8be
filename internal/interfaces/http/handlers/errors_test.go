package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostmail-io/hostmail/internal/application/account/usecases"
	"github.com/hostmail-io/hostmail/internal/domain/payment"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/errors"
)

func TestToAppErrorMapsDomainSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", website.ErrWebsiteNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", subscription.ErrSubscriptionNotFound), http.StatusNotFound},
		{"conflict", website.ErrDomainAlreadyTaken, http.StatusConflict},
		{"bad credentials", usecases.ErrInvalidCredentials, http.StatusUnauthorized},
		{"policy violation", fmt.Errorf("%w: cannot cancel the free plan", subscription.ErrPolicyViolation), http.StatusBadRequest},
		{"feature not on plan", fmt.Errorf("%w: analytics", subscription.ErrFeatureNotAvailable), http.StatusForbidden},
		{"unknown plan", subscription.ErrUnknownPlan, http.StatusBadRequest},
		{"expired order", payment.ErrOrderExpired, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := errors.GetAppError(toAppError(tt.err))
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestToAppErrorCarriesQuotaNumbers(t *testing.T) {
	err := subscription.NewQuotaError("contacts", 50, 50)

	appErr := errors.GetAppError(toAppError(err))
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
	require.NotNil(t, appErr.Limit)
	require.NotNil(t, appErr.Current)
	assert.Equal(t, int64(50), *appErr.Limit)
	assert.Equal(t, int64(50), *appErr.Current)
}

func TestToAppErrorMasksUnknownErrors(t *testing.T) {
	got := toAppError(fmt.Errorf("driver: bad connection"))
	assert.Nil(t, errors.GetAppError(got))
}

func TestToAppErrorPassesAppErrorsThrough(t *testing.T) {
	original := errors.NewForbiddenError("integrations not included in plan")
	assert.Equal(t, original, errors.GetAppError(toAppError(original)))
}
