package webhook

import (
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

// Delivery is an audit record of one dispatch, written after the final
// attempt settles.
type Delivery struct {
	ID         uint
	WebhookID  uint
	Event      string
	Payload    string
	StatusCode int
	Attempts   int
	Success    bool
	Error      string
	CreatedAt  time.Time
}

// NewDelivery records the outcome of a finished dispatch.
func NewDelivery(webhookID uint, event, payload string, statusCode, attempts int, success bool, errMsg string) *Delivery {
	return &Delivery{
		WebhookID:  webhookID,
		Event:      event,
		Payload:    payload,
		StatusCode: statusCode,
		Attempts:   attempts,
		Success:    success,
		Error:      errMsg,
		CreatedAt:  biztime.NowUTC(),
	}
}
