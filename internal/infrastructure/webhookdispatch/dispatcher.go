package webhookdispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/shared/biztime"
	"github.com/hostmail-io/hostmail/internal/shared/config"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

const (
	headerEvent     = "X-HostMail-Event"
	headerSignature = "X-HostMail-Signature"
	headerDelivery  = "X-HostMail-Delivery"
)

// envelope is the wire format posted to every endpoint.
type envelope struct {
	Event     string `json:"event"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data"`
}

type task struct {
	websiteID uint
	event     string
	payload   any
}

// Dispatcher fans out domain events to the webhooks subscribed to them.
// Publishing is fire-and-forget: the queue is bounded and a full queue drops
// the event with a log line rather than blocking the originating request.
type Dispatcher struct {
	repo       webhook.Repository
	httpClient *http.Client
	logger     logger.Interface

	queue      chan task
	workers    int
	maxRetries int
	backoff    time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewDispatcher(repo webhook.Repository, cfg config.WebhookConfig, logger logger.Interface) *Dispatcher {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 256
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	backoff := time.Duration(cfg.RetryBackoff) * time.Second
	if backoff <= 0 {
		backoff = 30 * time.Second
	}

	return &Dispatcher{
		repo:       repo,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		queue:      make(chan task, queueSize),
		workers:    workers,
		maxRetries: maxRetries,
		backoff:    backoff,
		stopChan:   make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	d.logger.Infow("starting webhook dispatcher", "workers", d.workers, "queue_size", cap(d.queue))

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.worker()
		}()
	}
}

// Stop finishes in-flight deliveries and shuts the workers down. Events
// still sitting in the queue at shutdown are dropped with a count.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.logger.Infow("stopping webhook dispatcher")
		close(d.stopChan)
		d.wg.Wait()
		if n := len(d.queue); n > 0 {
			d.logger.Warnw("undelivered webhook events dropped at shutdown", "count", n)
		}
		d.logger.Infow("webhook dispatcher stopped")
	})
}

// Publish implements the application layer's EventPublisher.
func (d *Dispatcher) Publish(ctx context.Context, websiteID uint, event string, payload any) {
	select {
	case <-d.stopChan:
		d.logger.Warnw("webhook event dropped during shutdown", "event", event, "website_id", websiteID)
	case d.queue <- task{websiteID: websiteID, event: event, payload: payload}:
	default:
		d.logger.Warnw("webhook queue full, event dropped", "event", event, "website_id", websiteID)
	}
}

func (d *Dispatcher) worker() {
	for {
		select {
		case <-d.stopChan:
			return
		case t := <-d.queue:
			d.dispatch(t)
		}
	}
}

func (d *Dispatcher) dispatch(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(d.maxRetries+1)*time.Minute)
	defer cancel()

	hooks, err := d.repo.FindActiveByEvent(ctx, t.websiteID, t.event)
	if err != nil {
		d.logger.Errorw("failed to resolve webhooks for event", "error", err, "event", t.event, "website_id", t.websiteID)
		return
	}
	if len(hooks) == 0 {
		return
	}

	body, err := json.Marshal(envelope{
		Event:     t.event,
		Timestamp: biztime.NowUTC().Unix(),
		Data:      t.payload,
	})
	if err != nil {
		d.logger.Errorw("failed to marshal webhook payload", "error", err, "event", t.event)
		return
	}

	for _, hook := range hooks {
		d.deliver(ctx, hook, t.event, body)
	}
}

// deliver posts the event to one endpoint, retrying on network errors and 5xx
// responses. One audit row is written after the final attempt settles.
func (d *Dispatcher) deliver(ctx context.Context, hook *webhook.Webhook, event string, body []byte) {
	signature := Sign(hook.Secret(), body)

	var (
		statusCode int
		lastErr    error
		attempts   int
	)

	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		attempts = attempt
		statusCode, lastErr = d.post(ctx, hook, event, body, signature, attempt)

		if lastErr == nil && statusCode < 500 {
			break
		}

		if attempt < d.maxRetries {
			select {
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = d.maxRetries
			case <-time.After(d.backoff * time.Duration(attempt)):
			}
		}
	}

	success := lastErr == nil && statusCode >= 200 && statusCode < 300
	errMsg := ""
	if lastErr != nil {
		errMsg = lastErr.Error()
	} else if !success {
		errMsg = fmt.Sprintf("endpoint returned status %d", statusCode)
	}

	delivery := webhook.NewDelivery(hook.ID(), event, string(body), statusCode, attempts, success, errMsg)
	if err := d.repo.RecordDelivery(ctx, delivery); err != nil {
		d.logger.Errorw("failed to record webhook delivery", "error", err, "webhook_id", hook.ID())
	}

	if !success {
		d.logger.Warnw("webhook delivery failed",
			"webhook_id", hook.ID(),
			"event", event,
			"status", statusCode,
			"attempts", attempts,
			"error", errMsg,
		)
	}
}

func (d *Dispatcher) post(ctx context.Context, hook *webhook.Webhook, event string, body []byte, signature string, attempt int) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.TargetURL(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "HostMail-Webhook/1.0")
	req.Header.Set(headerEvent, event)
	req.Header.Set(headerSignature, signature)
	req.Header.Set(headerDelivery, fmt.Sprintf("%d-%d", hook.ID(), attempt))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, nil
}

// Sign computes the hex HMAC-SHA256 signature endpoints use to verify that a
// payload came from us.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
