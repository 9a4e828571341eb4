package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/moverhub/backend/internal/domain/billing"
	"github.com/moverhub/backend/internal/domain/mirror"
	"github.com/moverhub/backend/internal/domain/profile"
	"github.com/moverhub/backend/internal/pkg/errors"
)

// MockProfileRepository is a map-backed implementation of profile.Repository
type MockProfileRepository struct {
	Profiles    map[string]*profile.Profile // keyed by email
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[string]*profile.Profile),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, ok := m.Profiles[p.Email]; ok {
		return fmt.Errorf("profile already exists")
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("prof_%d", len(m.Profiles)+1)
	}
	if p.Plan == "" {
		p.Plan = profile.PlanStarter
	}
	if p.Status == "" {
		p.Status = profile.StatusPending
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	cp := *p
	m.Profiles[p.Email] = &cp
	return nil
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	p, ok := m.Profiles[email]
	if !ok {
		return nil, errors.NotFound("Profile")
	}
	cp := *p
	return &cp, nil
}

func (m *MockProfileRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*profile.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, p := range m.Profiles {
		if p.StripeCustomerID != nil && *p.StripeCustomerID == customerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Profile")
}

func (m *MockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	for email, existing := range m.Profiles {
		if existing.ID == p.ID {
			delete(m.Profiles, email)
			cp := *p
			m.Profiles[p.Email] = &cp
			return nil
		}
	}
	return errors.NotFound("Profile")
}

func (m *MockProfileRepository) List(ctx context.Context, limit, offset int) ([]*profile.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	emails := make([]string, 0, len(m.Profiles))
	for email := range m.Profiles {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	var out []*profile.Profile
	for i, email := range emails {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		cp := *m.Profiles[email]
		out = append(out, &cp)
	}
	return out, nil
}

// MockMirrorStore is a map-backed implementation of mirror.Store
type MockMirrorStore struct {
	Records     map[string]mirror.Fields // keyed by record ID
	nextID      int
	FindError   error
	CreateError error
	UpdateError error
	FindCalls   int
	CreateCalls int
	UpdateCalls int
}

func NewMockMirrorStore() *MockMirrorStore {
	return &MockMirrorStore{
		Records: make(map[string]mirror.Fields),
	}
}

func (m *MockMirrorStore) FindByEmail(ctx context.Context, table, email string) (*mirror.Record, error) {
	m.FindCalls++
	if m.FindError != nil {
		return nil, m.FindError
	}
	for id, fields := range m.Records {
		if fields["Email"] == email {
			return &mirror.Record{ID: id, Fields: fields}, nil
		}
	}
	return nil, nil
}

func (m *MockMirrorStore) Create(ctx context.Context, table string, fields mirror.Fields) (string, error) {
	m.CreateCalls++
	if m.CreateError != nil {
		return "", m.CreateError
	}
	m.nextID++
	id := fmt.Sprintf("rec%d", m.nextID)
	m.Records[id] = fields
	return id, nil
}

func (m *MockMirrorStore) Update(ctx context.Context, table, id string, fields mirror.Fields) error {
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	existing, ok := m.Records[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

// MockGateway is a canned-response implementation of billing.Gateway
type MockGateway struct {
	CustomerID   string
	CheckoutURL  string
	PortalURL    string
	Subscription *billing.Subscription

	CreateCustomerError error
	CheckoutError       error
	PortalError         error
	CancelError         error

	CancelCalls   int32
	CustomerCalls int32
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		CustomerID:  "cus_mock",
		CheckoutURL: "https://checkout.example.com/session",
		PortalURL:   "https://billing.example.com/portal",
		Subscription: &billing.Subscription{
			ID:                    "sub_mock",
			CurrentPeriodEndEpoch: 1700000000,
		},
	}
}

func (m *MockGateway) CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (string, error) {
	atomic.AddInt32(&m.CustomerCalls, 1)
	if m.CreateCustomerError != nil {
		return "", m.CreateCustomerError
	}
	return m.CustomerID, nil
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, customerID, priceID, successURL, cancelURL string) (*billing.CheckoutSession, error) {
	if m.CheckoutError != nil {
		return nil, m.CheckoutError
	}
	return &billing.CheckoutSession{ID: "cs_mock", URL: m.CheckoutURL}, nil
}

func (m *MockGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if m.PortalError != nil {
		return "", m.PortalError
	}
	return m.PortalURL, nil
}

func (m *MockGateway) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	atomic.AddInt32(&m.CancelCalls, 1)
	if m.CancelError != nil {
		return nil, m.CancelError
	}
	return m.Subscription, nil
}

// MockIdentityProvider is a canned-response identity provider
type MockIdentityProvider struct {
	AccountID   string
	CreateError error
}

func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{AccountID: "acct_mock"}
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if m.CreateError != nil {
		return "", m.CreateError
	}
	return m.AccountID, nil
}

// MockStorage is a canned-response file store
type MockStorage struct {
	PublicURL   string
	UploadError error
	Uploads     []string
}

func NewMockStorage() *MockStorage {
	return &MockStorage{PublicURL: "https://cdn.example.com/logos/mock.png"}
}

func (m *MockStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if m.UploadError != nil {
		return "", m.UploadError
	}
	m.Uploads = append(m.Uploads, path)
	return m.PublicURL, nil
}
