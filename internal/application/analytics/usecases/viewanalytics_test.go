package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	vo "github.com/hostmail-io/hostmail/internal/domain/subscription/valueobjects"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	nextID uint
	events []*analytics.Event

	byDay  []analytics.DayCount
	byType []analytics.TypeCount
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{nextID: 1}
}

func (r *fakeAnalyticsRepo) Create(_ context.Context, event *analytics.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := event.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAnalyticsRepo) List(_ context.Context, _ analytics.ListFilter, _, _ int) ([]*analytics.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events, nil
}

func (r *fakeAnalyticsRepo) Count(_ context.Context, _ analytics.ListFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.events)), nil
}

func (r *fakeAnalyticsRepo) CountByType(_ context.Context, _ analytics.ListFilter) ([]analytics.TypeCount, error) {
	return r.byType, nil
}

func (r *fakeAnalyticsRepo) CountByDay(_ context.Context, _ analytics.ListFilter) ([]analytics.DayCount, error) {
	return r.byDay, nil
}

type fakeSubFinder struct {
	sub *subscription.Subscription
}

func (r *fakeSubFinder) Create(_ context.Context, _ *subscription.Subscription) error { return nil }
func (r *fakeSubFinder) Update(_ context.Context, _ *subscription.Subscription) error { return nil }
func (r *fakeSubFinder) Delete(_ context.Context, _ uint) error                       { return nil }
func (r *fakeSubFinder) FindByID(_ context.Context, _ uint) (*subscription.Subscription, error) {
	return r.sub, nil
}
func (r *fakeSubFinder) FindByAccountID(_ context.Context, _ uint) (*subscription.Subscription, error) {
	return r.sub, nil
}
func (r *fakeSubFinder) List(_ context.Context, _, _ int) ([]*subscription.Subscription, error) {
	return nil, nil
}
func (r *fakeSubFinder) Count(_ context.Context) (int64, error) { return 1, nil }
func (r *fakeSubFinder) IncrementContactUsage(_ context.Context, _ uint) (bool, error) {
	return false, nil
}
func (r *fakeSubFinder) ReleaseContactUsage(_ context.Context, _ uint) error { return nil }
func (r *fakeSubFinder) AddStorageUsage(_ context.Context, _ uint, _ float64) (bool, error) {
	return false, nil
}
func (r *fakeSubFinder) ReleaseStorageUsage(_ context.Context, _ uint, _ float64) error { return nil }
func (r *fakeSubFinder) ResetMonthlyUsage(_ context.Context) (int64, error)             { return 0, nil }
func (r *fakeSubFinder) FindExpired(_ context.Context, _ time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func subscriptionOnPlan(t *testing.T, plan vo.PlanID) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(1)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(1))
	if plan != vo.PlanFree {
		require.NoError(t, sub.ApplyPlan(plan, vo.BillingMonthly))
	}
	return sub
}

// =====================================================================
// TestViewAnalytics_*
// =====================================================================

func TestViewAnalytics_FreePlanRefused(t *testing.T) {
	uc := NewViewAnalyticsUseCase(
		newFakeAnalyticsRepo(),
		&fakeSubFinder{sub: subscriptionOnPlan(t, vo.PlanFree)},
		logger.NewNop(),
	)

	_, err := uc.Stats(context.Background(), StatsQuery{AccountID: 1})
	assert.ErrorIs(t, err, subscription.ErrFeatureNotAvailable)

	_, _, err = uc.Events(context.Background(), ListEventsQuery{AccountID: 1}, utils.Pagination{Page: 1, PageSize: 20})
	assert.ErrorIs(t, err, subscription.ErrFeatureNotAvailable)
}

func TestViewAnalytics_StatsPivotsDailyCounts(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	repo.byDay = []analytics.DayCount{
		{Day: "2026-08-29", EventType: analytics.EventContactReceived, Count: 3},
		{Day: "2026-08-29", EventType: analytics.EventProjectViewed, Count: 10},
		{Day: "2026-08-30", EventType: analytics.EventContactReceived, Count: 1},
		{Day: "2026-08-30", EventType: analytics.EventAPICall, Count: 7},
	}
	repo.byType = []analytics.TypeCount{
		{EventType: analytics.EventProjectViewed, Count: 10},
		{EventType: analytics.EventAPICall, Count: 7},
		{EventType: analytics.EventContactReceived, Count: 4},
	}
	uc := NewViewAnalyticsUseCase(repo, &fakeSubFinder{sub: subscriptionOnPlan(t, vo.PlanPro)}, logger.NewNop())

	stats, err := uc.Stats(context.Background(), StatsQuery{AccountID: 1, Days: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalContacts)
	assert.Equal(t, int64(10), stats.TotalProjectViews)
	assert.Equal(t, int64(7), stats.TotalAPICalls)
	assert.Equal(t, int64(21), stats.TotalEvents)

	require.Len(t, stats.PeriodStats, 2)
	assert.Equal(t, "2026-08-29", stats.PeriodStats[0].Date)
	assert.Equal(t, int64(3), stats.PeriodStats[0].Contacts)
	assert.Equal(t, int64(10), stats.PeriodStats[0].ProjectViews)
	assert.Equal(t, int64(13), stats.PeriodStats[0].Total)
	assert.Equal(t, int64(7), stats.PeriodStats[1].APICalls)

	require.Len(t, stats.TopEvents, 3)
	assert.Equal(t, analytics.EventProjectViewed, stats.TopEvents[0].EventType)
}

func TestViewAnalytics_EventsPaginated(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	event, err := analytics.NewEvent(2, analytics.EventContactReceived, nil, "203.0.113.9", "curl/8", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), event))
	uc := NewViewAnalyticsUseCase(repo, &fakeSubFinder{sub: subscriptionOnPlan(t, vo.PlanAgency)}, logger.NewNop())

	events, total, err := uc.Events(context.Background(), ListEventsQuery{AccountID: 1}, utils.Pagination{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, analytics.EventContactReceived, events[0].EventType)
}

func TestViewAnalytics_MissingSubscription(t *testing.T) {
	uc := NewViewAnalyticsUseCase(newFakeAnalyticsRepo(), &fakeSubFinder{}, logger.NewNop())

	_, err := uc.Stats(context.Background(), StatsQuery{AccountID: 1})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

// =====================================================================
// TestRecordEvent_*
// =====================================================================

func TestRecordEvent_Persists(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	uc := NewRecordEventUseCase(repo, logger.NewNop())

	uc.Record(context.Background(), 2, analytics.EventContactReceived, map[string]any{"message_id": uint(5)}, "203.0.113.9", "curl/8")

	require.Len(t, repo.events, 1)
	assert.Equal(t, analytics.EventContactReceived, repo.events[0].EventType())
	assert.Equal(t, uint(2), repo.events[0].WebsiteID())
}

func TestRecordEvent_InvalidTypeSwallowed(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	uc := NewRecordEventUseCase(repo, logger.NewNop())

	uc.Record(context.Background(), 2, "page_scrolled", nil, "", "")

	assert.Empty(t, repo.events)
}
