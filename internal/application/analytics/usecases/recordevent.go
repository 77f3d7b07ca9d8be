package usecases

import (
	"context"

	"github.com/hostmail-io/hostmail/internal/domain/analytics"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// RecordEventUseCase persists analytics events. Recording is best effort:
// a failure is logged and never surfaced to the operation that produced the
// event, so analytics can never break a submission or an inbox action.
type RecordEventUseCase struct {
	analyticsRepo analytics.Repository
	logger        logger.Interface
}

func NewRecordEventUseCase(analyticsRepo analytics.Repository, logger logger.Interface) *RecordEventUseCase {
	return &RecordEventUseCase{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

func (uc *RecordEventUseCase) Record(ctx context.Context, websiteID uint, eventType string, metadata map[string]any, ipAddress, userAgent string) {
	event, err := analytics.NewEvent(websiteID, eventType, metadata, ipAddress, userAgent, "")
	if err != nil {
		uc.logger.Warnw("invalid analytics event", "error", err, "website_id", websiteID, "event_type", eventType)
		return
	}

	if err := uc.analyticsRepo.Create(ctx, event); err != nil {
		uc.logger.Warnw("failed to record analytics event", "error", err, "website_id", websiteID, "event_type", eventType)
	}
}
