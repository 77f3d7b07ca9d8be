package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hostmail-io/hostmail/internal/domain/account"
	accvo "github.com/hostmail-io/hostmail/internal/domain/account/valueobjects"
	"github.com/hostmail-io/hostmail/internal/domain/contact"
	"github.com/hostmail-io/hostmail/internal/domain/subscription"
	"github.com/hostmail-io/hostmail/internal/domain/website"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeContactRepo struct {
	mu     sync.Mutex
	nextID uint
	msgs   map[uint]*contact.Message
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1, msgs: map[uint]*contact.Message{}}
}

func (r *fakeContactRepo) Create(_ context.Context, msg *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := msg.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.msgs[msg.ID()] = msg
	return nil
}

func (r *fakeContactRepo) Update(_ context.Context, msg *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs[msg.ID()] = msg
	return nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.msgs, id)
	return nil
}

func (r *fakeContactRepo) FindByID(_ context.Context, id uint) (*contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.msgs[id], nil
}

func (r *fakeContactRepo) List(_ context.Context, _ contact.ListFilter, _, _ int) ([]*contact.Message, error) {
	return nil, nil
}

func (r *fakeContactRepo) Count(_ context.Context, _ contact.ListFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.msgs)), nil
}

func (r *fakeContactRepo) CountByWebsiteID(_ context.Context, _ uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.msgs)), nil
}

// failingContactRepo refuses every insert, for exercising the compensation
// path after an admitted slot.
type failingContactRepo struct {
	*fakeContactRepo
}

func (r *failingContactRepo) Create(_ context.Context, _ *contact.Message) error {
	return fmt.Errorf("connection lost")
}

type fakeWebsiteRepo struct {
	site *website.Website
}

func (r *fakeWebsiteRepo) Create(_ context.Context, _ *website.Website) error { return nil }
func (r *fakeWebsiteRepo) Update(_ context.Context, _ *website.Website) error { return nil }
func (r *fakeWebsiteRepo) Delete(_ context.Context, _ uint) error             { return nil }

func (r *fakeWebsiteRepo) FindByID(_ context.Context, id uint) (*website.Website, error) {
	if r.site != nil && r.site.ID() == id {
		return r.site, nil
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) FindByAPIKey(_ context.Context, apiKey string) (*website.Website, error) {
	if r.site != nil && r.site.APIKey() == apiKey {
		return r.site, nil
	}
	return nil, nil
}

func (r *fakeWebsiteRepo) FindByAccountID(_ context.Context, _ uint) ([]*website.Website, error) {
	return nil, nil
}

func (r *fakeWebsiteRepo) CountByAccountID(_ context.Context, _ uint) (int, error) { return 1, nil }
func (r *fakeWebsiteRepo) ExistsByDomain(_ context.Context, _ uint, _ string) (bool, error) {
	return false, nil
}
func (r *fakeWebsiteRepo) IncrementTotalContacts(_ context.Context, _ uint) error {
	r.site.RecordContact()
	return nil
}

type fakeSubRepo struct {
	mu  sync.Mutex
	sub *subscription.Subscription
}

func (r *fakeSubRepo) Create(_ context.Context, _ *subscription.Subscription) error { return nil }
func (r *fakeSubRepo) Update(_ context.Context, _ *subscription.Subscription) error { return nil }
func (r *fakeSubRepo) Delete(_ context.Context, _ uint) error                       { return nil }
func (r *fakeSubRepo) FindByID(_ context.Context, _ uint) (*subscription.Subscription, error) {
	return r.sub, nil
}
func (r *fakeSubRepo) FindByAccountID(_ context.Context, _ uint) (*subscription.Subscription, error) {
	return r.sub, nil
}
func (r *fakeSubRepo) List(_ context.Context, _, _ int) ([]*subscription.Subscription, error) {
	return nil, nil
}
func (r *fakeSubRepo) Count(_ context.Context) (int64, error) { return 1, nil }

func (r *fakeSubRepo) IncrementContactUsage(_ context.Context, _ uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sub.CanReceiveContact() {
		return false, nil
	}
	r.sub.RecordContactUsage()
	return true, nil
}

func (r *fakeSubRepo) ReleaseContactUsage(_ context.Context, _ uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sub.ReleaseContactUsage()
	return nil
}

func (r *fakeSubRepo) AddStorageUsage(_ context.Context, _ uint, deltaMB float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sub.CanUploadFile(deltaMB) {
		return false, nil
	}
	return true, r.sub.RecordStorageUsage(deltaMB)
}

func (r *fakeSubRepo) ReleaseStorageUsage(_ context.Context, _ uint, deltaMB float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sub.ReleaseStorageUsage(deltaMB)
}

func (r *fakeSubRepo) ResetMonthlyUsage(_ context.Context) (int64, error) { return 0, nil }
func (r *fakeSubRepo) FindExpired(_ context.Context, _ time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

type fakeAccountRepo struct {
	acc *account.Account
}

func (r *fakeAccountRepo) Create(_ context.Context, _ *account.Account) error { return nil }
func (r *fakeAccountRepo) Update(_ context.Context, _ *account.Account) error { return nil }
func (r *fakeAccountRepo) Delete(_ context.Context, _ uint) error             { return nil }
func (r *fakeAccountRepo) FindByID(_ context.Context, _ uint) (*account.Account, error) {
	return r.acc, nil
}
func (r *fakeAccountRepo) FindByEmail(_ context.Context, _ string) (*account.Account, error) {
	return r.acc, nil
}
func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return r.acc != nil, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *fakeNotifier) NotifyContactReceived(_ context.Context, _, _, _, _, _, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *fakePublisher) Publish(_ context.Context, _ uint, event string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *fakeRecorder) Record(_ context.Context, _ uint, eventType string, _ map[string]any, _, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

// --- fixtures ---

type submitFixture struct {
	uc        *SubmitContactUseCase
	contacts  *fakeContactRepo
	subs      *fakeSubRepo
	site      *website.Website
	notifier  *fakeNotifier
	publisher *fakePublisher
	recorder  *fakeRecorder
}

func newSubmitFixture(t *testing.T) *submitFixture {
	t.Helper()

	email, err := accvo.NewEmail("owner@example.com")
	require.NoError(t, err)
	acc, err := account.NewAccount(email, "Owner", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, acc.SetID(1))

	sub, err := subscription.NewSubscription(1)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(1))

	site, err := website.NewWebsite(1, "Portfolio", "example.com", "")
	require.NoError(t, err)
	require.NoError(t, site.SetID(1))

	contacts := newFakeContactRepo()
	subs := &fakeSubRepo{sub: sub}
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	recorder := &fakeRecorder{}

	uc := NewSubmitContactUseCase(
		contacts,
		&fakeWebsiteRepo{site: site},
		subs,
		&fakeAccountRepo{acc: acc},
		notifier,
		publisher,
		recorder,
		logger.NewNop(),
	)

	return &submitFixture{uc: uc, contacts: contacts, subs: subs, site: site, notifier: notifier, publisher: publisher, recorder: recorder}
}

func submitCmd() SubmitContactCommand {
	return SubmitContactCommand{
		WebsiteID: 1,
		FormData: map[string]any{
			"email":   "visitor@example.com",
			"name":    "Visitor",
			"subject": "Hello",
			"message": "I need a site",
			"budget":  "5k",
		},
		IPAddress: "203.0.113.9",
		UserAgent: "curl/8",
	}
}

// =====================================================================
// TestSubmitContact_*
// =====================================================================

func TestSubmitContact_HappyPath(t *testing.T) {
	fx := newSubmitFixture(t)

	result, err := fx.uc.Execute(context.Background(), submitCmd())

	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", result.Email)
	assert.Equal(t, "new", result.Status)
	assert.Equal(t, "5k", result.FormData["budget"])
	assert.Equal(t, 1, fx.subs.sub.ContactsUsedThisMonth(), "admission records usage")
	assert.Equal(t, 1, fx.site.TotalContacts())
	assert.Equal(t, 1, fx.notifier.calls)
	assert.Equal(t, []string{"contact.received"}, fx.publisher.events)
	assert.Equal(t, []string{"contact_received"}, fx.recorder.events)
}

func TestSubmitContact_QuotaDenialChangesNothing(t *testing.T) {
	fx := newSubmitFixture(t)
	// exhaust the free quota of 50
	for i := 0; i < 50; i++ {
		fx.subs.sub.RecordContactUsage()
	}

	_, err := fx.uc.Execute(context.Background(), submitCmd())

	require.Error(t, err)
	var qerr *subscription.QuotaError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "contacts", qerr.Resource)
	assert.Equal(t, int64(50), qerr.Limit)

	count, _ := fx.contacts.Count(context.Background(), contact.ListFilter{})
	assert.Equal(t, int64(0), count, "denied submission stores nothing")
	assert.Equal(t, 50, fx.subs.sub.ContactsUsedThisMonth(), "denial does not consume usage")
	assert.Equal(t, 0, fx.notifier.calls)
	assert.Empty(t, fx.publisher.events)
	assert.Empty(t, fx.recorder.events)
}

func TestSubmitContact_FailedWriteReleasesSlot(t *testing.T) {
	fx := newSubmitFixture(t)
	failing := &failingContactRepo{fakeContactRepo: fx.contacts}
	fx.uc = NewSubmitContactUseCase(
		failing,
		&fakeWebsiteRepo{site: fx.site},
		fx.subs,
		&fakeAccountRepo{},
		fx.notifier,
		fx.publisher,
		fx.recorder,
		logger.NewNop(),
	)

	_, err := fx.uc.Execute(context.Background(), submitCmd())

	require.Error(t, err)
	assert.Equal(t, 0, fx.subs.sub.ContactsUsedThisMonth(), "failed write returns the admitted slot")
	assert.Equal(t, 0, fx.site.TotalContacts())
	assert.Equal(t, 0, fx.notifier.calls)
	assert.Empty(t, fx.publisher.events)
	assert.Empty(t, fx.recorder.events)
}

func TestSubmitContact_InactiveWebsiteRefused(t *testing.T) {
	fx := newSubmitFixture(t)
	fx.site.Deactivate()

	_, err := fx.uc.Execute(context.Background(), submitCmd())

	assert.ErrorIs(t, err, website.ErrWebsiteInactive)
}

func TestSubmitContact_SuspendedSubscriptionDenied(t *testing.T) {
	fx := newSubmitFixture(t)
	require.NoError(t, fx.subs.sub.ApplyPlan("pro", "monthly"))
	require.NoError(t, fx.subs.sub.Suspend())

	_, err := fx.uc.Execute(context.Background(), submitCmd())

	require.Error(t, err)
	var qerr *subscription.QuotaError
	assert.ErrorAs(t, err, &qerr)
}

func TestSubmitContact_MissingEmailRejected(t *testing.T) {
	fx := newSubmitFixture(t)
	cmd := submitCmd()
	delete(cmd.FormData, "email")

	_, err := fx.uc.Execute(context.Background(), cmd)

	assert.Error(t, err)
}
