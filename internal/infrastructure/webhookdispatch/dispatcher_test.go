package webhookdispatch

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostmail-io/hostmail/internal/domain/webhook"
	"github.com/hostmail-io/hostmail/internal/shared/config"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

type fakeWebhookRepo struct {
	mu         sync.Mutex
	hooks      []*webhook.Webhook
	deliveries []*webhook.Delivery
	recorded   chan *webhook.Delivery
}

func newFakeWebhookRepo(hooks ...*webhook.Webhook) *fakeWebhookRepo {
	return &fakeWebhookRepo{
		hooks:    hooks,
		recorded: make(chan *webhook.Delivery, 16),
	}
}

func (r *fakeWebhookRepo) Create(_ context.Context, _ *webhook.Webhook) error { return nil }
func (r *fakeWebhookRepo) Update(_ context.Context, _ *webhook.Webhook) error { return nil }
func (r *fakeWebhookRepo) Delete(_ context.Context, _ uint) error             { return nil }

func (r *fakeWebhookRepo) FindByID(_ context.Context, id uint) (*webhook.Webhook, error) {
	for _, h := range r.hooks {
		if h.ID() == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeWebhookRepo) FindByWebsiteID(_ context.Context, _ uint) ([]*webhook.Webhook, error) {
	return r.hooks, nil
}

func (r *fakeWebhookRepo) FindActiveByEvent(_ context.Context, websiteID uint, event string) ([]*webhook.Webhook, error) {
	var out []*webhook.Webhook
	for _, h := range r.hooks {
		if h.WebsiteID() == websiteID && h.IsActive() && h.SubscribesTo(event) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeWebhookRepo) RecordDelivery(_ context.Context, d *webhook.Delivery) error {
	r.mu.Lock()
	r.deliveries = append(r.deliveries, d)
	r.mu.Unlock()
	r.recorded <- d
	return nil
}

func (r *fakeWebhookRepo) FindDeliveries(_ context.Context, _ uint, _, _ int) ([]*webhook.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deliveries, nil
}

func testHook(t *testing.T, websiteID uint, targetURL string) *webhook.Webhook {
	t.Helper()
	hook, err := webhook.NewWebhook(websiteID, targetURL, []string{webhook.EventContactReceived})
	require.NoError(t, err)
	require.NoError(t, hook.SetID(1))
	return hook
}

func waitForDelivery(t *testing.T, repo *fakeWebhookRepo) *webhook.Delivery {
	t.Helper()
	select {
	case d := <-repo.recorded:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery record")
		return nil
	}
}

func TestSign(t *testing.T) {
	body := []byte(`{"event":"contact.received"}`)

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write(body)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, Sign("secret", body))
	assert.Equal(t, Sign("secret", body), Sign("secret", body))
	assert.NotEqual(t, Sign("secret", body), Sign("other", body))
}

func TestDispatcherDeliversSignedEvent(t *testing.T) {
	type received struct {
		body   []byte
		header http.Header
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{body: body, header: r.Header.Clone()}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook := testHook(t, 42, srv.URL)
	repo := newFakeWebhookRepo(hook)

	d := NewDispatcher(repo, config.WebhookConfig{Workers: 1, QueueSize: 8, MaxRetries: 1, TimeoutSecs: 5}, logger.NewNop())
	d.Start()
	defer d.Stop()

	d.Publish(context.Background(), 42, webhook.EventContactReceived, map[string]any{"id": 7})

	delivery := waitForDelivery(t, repo)
	assert.True(t, delivery.Success)
	assert.Equal(t, http.StatusOK, delivery.StatusCode)
	assert.Equal(t, 1, delivery.Attempts)
	assert.Equal(t, hook.ID(), delivery.WebhookID)

	req := <-got
	assert.Equal(t, webhook.EventContactReceived, req.header.Get("X-HostMail-Event"))
	assert.Equal(t, Sign(hook.Secret(), req.body), req.header.Get("X-HostMail-Signature"))
	assert.NotEmpty(t, req.header.Get("X-HostMail-Delivery"))

	var env struct {
		Event     string         `json:"event"`
		Timestamp int64          `json:"timestamp"`
		Data      map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(req.body, &env))
	assert.Equal(t, webhook.EventContactReceived, env.Event)
	assert.NotZero(t, env.Timestamp)
	assert.Equal(t, float64(7), env.Data["id"])
}

func TestDispatcherRecordsFailedDelivery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := newFakeWebhookRepo(testHook(t, 42, srv.URL))

	d := NewDispatcher(repo, config.WebhookConfig{Workers: 1, QueueSize: 8, MaxRetries: 1, TimeoutSecs: 5}, logger.NewNop())
	d.Start()
	defer d.Stop()

	d.Publish(context.Background(), 42, webhook.EventContactReceived, nil)

	delivery := waitForDelivery(t, repo)
	assert.False(t, delivery.Success)
	assert.Equal(t, http.StatusNotFound, delivery.StatusCode)
	assert.NotEmpty(t, delivery.Error)
}

func TestDispatcherSkipsUnsubscribedEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("endpoint should not be called")
	}))
	defer srv.Close()

	repo := newFakeWebhookRepo(testHook(t, 42, srv.URL))

	d := NewDispatcher(repo, config.WebhookConfig{Workers: 1, QueueSize: 8, MaxRetries: 1, TimeoutSecs: 5}, logger.NewNop())
	d.Start()

	d.Publish(context.Background(), 42, webhook.EventProjectDeleted, nil)

	// Stop drains in-flight work before returning.
	time.Sleep(100 * time.Millisecond)
	d.Stop()

	assert.Empty(t, repo.deliveries)
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	repo := newFakeWebhookRepo()

	// Never started: nothing consumes the queue.
	d := NewDispatcher(repo, config.WebhookConfig{Workers: 1, QueueSize: 1, MaxRetries: 1, TimeoutSecs: 1}, logger.NewNop())

	done := make(chan struct{})
	go func() {
		d.Publish(context.Background(), 1, webhook.EventContactReceived, nil)
		d.Publish(context.Background(), 1, webhook.EventContactReceived, nil)
		d.Publish(context.Background(), 1, webhook.EventContactReceived, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}
