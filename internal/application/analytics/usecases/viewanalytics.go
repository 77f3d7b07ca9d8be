package usecases

import (
	"context"
	"fmt"

	"github.com/hostmail-io/hostmail/internal/application/analytics/dto"
	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/hostmail-io/hostmail/internal/shared/utils"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
)

type StatsQuery struct {
	AccountID uint
	WebsiteID uint
	Days      int
}

type ListEventsQuery struct {
	AccountID uint
	WebsiteID uint
	EventType string
	Days      int
}

// ViewAnalyticsUseCase serves the owner-side analytics views. Both reads are
// gated on the plan's analytics feature.
type ViewAnalyticsUseCase struct {
	analyticsRepo    analytics.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewViewAnalyticsUseCase(
	analyticsRepo analytics.Repository,
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ViewAnalyticsUseCase {
	return &ViewAnalyticsUseCase{
		analyticsRepo:    analyticsRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ViewAnalyticsUseCase) Stats(ctx context.Context, query StatsQuery) (*dto.StatsDTO, error) {
	if err := uc.requireAnalytics(ctx, query.AccountID); err != nil {
		return nil, err
	}

	filter := analytics.ListFilter{
		AccountID: query.AccountID,
		WebsiteID: query.WebsiteID,
		Since:     biztime.NowUTC().AddDate(0, 0, -clampDays(query.Days)),
	}

	byDay, err := uc.analyticsRepo.CountByDay(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily stats: %w", err)
	}
	byType, err := uc.analyticsRepo.CountByType(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate event types: %w", err)
	}

	return assembleStats(byDay, byType), nil
}

func (uc *ViewAnalyticsUseCase) Events(ctx context.Context, query ListEventsQuery, pagination utils.Pagination) ([]*dto.EventDTO, int64, error) {
	if err := uc.requireAnalytics(ctx, query.AccountID); err != nil {
		return nil, 0, err
	}

	filter := analytics.ListFilter{
		AccountID: query.AccountID,
		WebsiteID: query.WebsiteID,
		EventType: query.EventType,
		Since:     biztime.NowUTC().AddDate(0, 0, -clampDays(query.Days)),
	}

	events, err := uc.analyticsRepo.List(ctx, filter, pagination.Offset(), pagination.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analytics events: %w", err)
	}
	total, err := uc.analyticsRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count analytics events: %w", err)
	}

	return dto.ToEventDTOList(events), total, nil
}

func (uc *ViewAnalyticsUseCase) requireAnalytics(ctx context.Context, accountID uint) error {
	sub, err := uc.subscriptionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "account_id", accountID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		uc.logger.Errorw("subscription missing for account", "account_id", accountID)
		return subscription.ErrSubscriptionNotFound
	}
	if !sub.HasAnalytics() {
		return fmt.Errorf("%w: analytics", subscription.ErrFeatureNotAvailable)
	}
	return nil
}

func clampDays(days int) int {
	if days <= 0 {
		return defaultStatsDays
	}
	if days > maxStatsDays {
		return maxStatsDays
	}
	return days
}

// assembleStats pivots the per-day counts into daily rows and carries the
// top five event types.
func assembleStats(byDay []analytics.DayCount, byType []analytics.TypeCount) *dto.StatsDTO {
	stats := &dto.StatsDTO{
		PeriodStats: []dto.DailyStatDTO{},
		TopEvents:   []dto.TopEventDTO{},
	}

	dayIndex := map[string]int{}
	for _, row := range byDay {
		idx, ok := dayIndex[row.Day]
		if !ok {
			idx = len(stats.PeriodStats)
			dayIndex[row.Day] = idx
			stats.PeriodStats = append(stats.PeriodStats, dto.DailyStatDTO{Date: row.Day})
		}

		day := &stats.PeriodStats[idx]
		day.Total += row.Count
		switch row.EventType {
		case analytics.EventContactReceived:
			day.Contacts += row.Count
		case analytics.EventProjectViewed:
			day.ProjectViews += row.Count
		case analytics.EventAPICall:
			day.APICalls += row.Count
		}
	}

	for _, row := range byType {
		stats.TotalEvents += row.Count
		switch row.EventType {
		case analytics.EventContactReceived:
			stats.TotalContacts = row.Count
		case analytics.EventProjectViewed:
			stats.TotalProjectViews = row.Count
		case analytics.EventAPICall:
			stats.TotalAPICalls = row.Count
		}
		if len(stats.TopEvents) < 5 {
			stats.TopEvents = append(stats.TopEvents, dto.TopEventDTO{EventType: row.EventType, Count: row.Count})
		}
	}

	return stats
}
