package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriptionRepo is an in-memory Repository honoring the conditional
// counter contract, so concurrent admission can be exercised without a
// database.
type fakeSubscriptionRepo struct {
	mu     sync.Mutex
	nextID uint
	subs   map[uint]*subscription.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{nextID: 1, subs: map[uint]*subscription.Subscription{}}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := sub.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(_ context.Context, id uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.subs[id], nil
}

func (r *fakeSubscriptionRepo) FindByAccountID(_ context.Context, accountID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.AccountID() == accountID {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) List(_ context.Context, _, _ int) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*subscription.Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		out = append(out, sub)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.subs)), nil
}

func (r *fakeSubscriptionRepo) IncrementContactUsage(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return false, subscription.ErrSubscriptionNotFound
	}
	if !sub.CanReceiveContact() {
		return false, nil
	}
	sub.RecordContactUsage()
	return true, nil
}

func (r *fakeSubscriptionRepo) ReleaseContactUsage(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return subscription.ErrSubscriptionNotFound
	}
	sub.ReleaseContactUsage()
	return nil
}

func (r *fakeSubscriptionRepo) AddStorageUsage(_ context.Context, id uint, deltaMB float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return false, subscription.ErrSubscriptionNotFound
	}
	if !sub.CanUploadFile(deltaMB) {
		return false, nil
	}
	return true, sub.RecordStorageUsage(deltaMB)
}

func (r *fakeSubscriptionRepo) ReleaseStorageUsage(_ context.Context, id uint, deltaMB float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return subscription.ErrSubscriptionNotFound
	}
	return sub.ReleaseStorageUsage(deltaMB)
}

func (r *fakeSubscriptionRepo) ResetMonthlyUsage(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		sub.ResetMonthlyCounters()
	}
	return int64(len(r.subs)), nil
}

func (r *fakeSubscriptionRepo) FindExpired(_ context.Context, before time.Time) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*subscription.Subscription
	for _, sub := range r.subs {
		if sub.Status() == vo.StatusActive && sub.ExpiresAt() != nil && sub.ExpiresAt().Before(before) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func seedSubscription(t *testing.T, repo *fakeSubscriptionRepo, accountID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(accountID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub
}

// =====================================================================
// TestRequestUpgrade_*
// =====================================================================

func TestRequestUpgrade_PaidPlanRequiresPayment(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	decision, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "pro", BillingPeriod: "monthly",
	})

	require.NoError(t, err)
	assert.True(t, decision.PaymentRequired)
	assert.Equal(t, int64(900), decision.AmountCents)

	// the subscription itself is untouched until capture
	stored, err := repo.FindByID(context.Background(), sub.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.PlanFree, stored.Plan())
}

func TestRequestUpgrade_FreeDowngradeAppliesImmediately(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	decision, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "free", BillingPeriod: "monthly",
	})

	require.NoError(t, err)
	assert.False(t, decision.PaymentRequired)
	require.NotNil(t, decision.Subscription)
	assert.Equal(t, "free", decision.Subscription.Plan)
}

func TestRequestUpgrade_CurrentPlanRefused(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	_, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "pro", BillingPeriod: "monthly",
	})

	assert.ErrorIs(t, err, subscription.ErrPolicyViolation)
}

func TestRequestUpgrade_BillingPeriodChangeAllowed(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	decision, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "pro", BillingPeriod: "yearly",
	})

	require.NoError(t, err)
	assert.True(t, decision.PaymentRequired)
	assert.Equal(t, int64(9000), decision.AmountCents)
}

func TestRequestUpgrade_LapsedPlanMayRenew(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	require.NoError(t, sub.MarkAsExpired())
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	decision, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "pro", BillingPeriod: "monthly",
	})

	require.NoError(t, err)
	assert.True(t, decision.PaymentRequired)
}

func TestRequestUpgrade_UnknownPlan(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	seedSubscription(t, repo, 1)
	log := logger.NewNop()
	uc := NewRequestUpgradeUseCase(repo, NewApplyPlanUseCase(repo, log), log)

	_, err := uc.Execute(context.Background(), RequestUpgradeCommand{
		AccountID: 1, Plan: "enterprise", BillingPeriod: "monthly",
	})

	assert.ErrorIs(t, err, subscription.ErrUnknownPlan)
}

// =====================================================================
// TestApplyPlan_*
// =====================================================================

func TestApplyPlanUseCase_PreservesCounters(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	admitted, err := repo.IncrementContactUsage(context.Background(), sub.ID())
	require.NoError(t, err)
	require.True(t, admitted)
	log := logger.NewNop()
	uc := NewApplyPlanUseCase(repo, log)

	result, err := uc.Execute(context.Background(), ApplyPlanCommand{
		SubscriptionID: sub.ID(), Plan: "agency", BillingPeriod: "yearly",
	})

	require.NoError(t, err)
	assert.Equal(t, "agency", result.Plan)
	assert.Equal(t, 1, result.Usage.ContactsUsed)
	assert.NotNil(t, result.ExpiresAt)
}

// =====================================================================
// TestCancelSubscription_*
// =====================================================================

func TestCancelSubscription_FreePlanRefused(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	seedSubscription(t, repo, 1)
	uc := NewCancelSubscriptionUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, subscription.ErrPolicyViolation)
}

func TestCancelSubscription_PaidPlan(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	require.NoError(t, sub.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	uc := NewCancelSubscriptionUseCase(repo, logger.NewNop())

	err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	stored, _ := repo.FindByID(context.Background(), sub.ID())
	assert.Equal(t, vo.StatusCancelled, stored.Status())
}

// =====================================================================
// TestSuspendReactivate_*
// =====================================================================

func TestSuspendThenReactivate_RoundTrip(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	log := logger.NewNop()

	require.NoError(t, NewSuspendSubscriptionUseCase(repo, log).Execute(context.Background(), sub.ID()))
	stored, _ := repo.FindByID(context.Background(), sub.ID())
	assert.Equal(t, vo.StatusSuspended, stored.Status())
	assert.False(t, stored.CanReceiveContact())

	require.NoError(t, NewReactivateSubscriptionUseCase(repo, log).Execute(context.Background(), sub.ID()))
	stored, _ = repo.FindByID(context.Background(), sub.ID())
	assert.Equal(t, vo.StatusActive, stored.Status())
	assert.True(t, stored.CanReceiveContact())
}

func TestSuspend_MissingSubscription(t *testing.T) {
	uc := NewSuspendSubscriptionUseCase(newFakeSubscriptionRepo(), logger.NewNop())

	err := uc.Execute(context.Background(), 42)

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

// =====================================================================
// TestGuardedAdmission_*
// =====================================================================

// The conditional-increment contract: with N quota slots left and more than
// N concurrent submissions, exactly N are admitted.
func TestGuardedAdmission_ConcurrentQuotaBoundary(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	sub := seedSubscription(t, repo, 1)
	// free quota is 50; consume 45 leaving 5 slots
	for i := 0; i < 45; i++ {
		admitted, err := repo.IncrementContactUsage(context.Background(), sub.ID())
		require.NoError(t, err)
		require.True(t, admitted)
	}

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted, err := repo.IncrementContactUsage(context.Background(), sub.ID())
			if err == nil {
				results <- admitted
			}
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for ok := range results {
		if ok {
			admitted++
		}
	}

	assert.Equal(t, 5, admitted, "exactly the remaining quota slots are admitted")
	stored, _ := repo.FindByID(context.Background(), sub.ID())
	assert.Equal(t, 50, stored.ContactsUsedThisMonth())
}

// =====================================================================
// TestResetAndExpiry_*
// =====================================================================

func TestResetMonthlyUsage_AllSubscriptions(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	for acc := uint(1); acc <= 3; acc++ {
		sub := seedSubscription(t, repo, acc)
		_, err := repo.IncrementContactUsage(context.Background(), sub.ID())
		require.NoError(t, err)
	}
	uc := NewResetMonthlyUsageUseCase(repo, logger.NewNop())

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	for id := uint(1); id <= 3; id++ {
		sub, _ := repo.FindByID(context.Background(), id)
		assert.Equal(t, 0, sub.ContactsUsedThisMonth())
	}
}

func TestExpireSubscriptions_SweepsLapsedPaid(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	past := time.Now().UTC().AddDate(0, -1, 0)
	start := past.AddDate(0, -1, 0)
	lapsed, err := subscription.ReconstructSubscription(
		99, 1,
		vo.PlanPro, vo.BillingMonthly, vo.StatusActive,
		subscription.LimitsFor(vo.PlanPro),
		0, 0,
		start, &past, nil,
		1, start, start,
	)
	require.NoError(t, err)
	repo.subs[lapsed.ID()] = lapsed
	current := seedSubscription(t, repo, 2)
	require.NoError(t, current.ApplyPlan(vo.PlanPro, vo.BillingMonthly))
	uc := NewExpireSubscriptionsUseCase(repo, logger.NewNop())

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, vo.StatusExpired, lapsed.Status())
	assert.Equal(t, vo.StatusActive, current.Status())
}
