package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

// mondayAt returns a Monday in June 2025 at the given wall time.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// fakeRepo is an in-memory aggregate store. Get and List hand out
// copies so a later Save is required to change stored state, mirroring
// the real repository.
type fakeRepo struct {
	mu        sync.Mutex
	brands    map[uuid.UUID]domain.Brand
	campaigns map[uuid.UUID]domain.Campaign

	saveBrandErr    error
	saveCampaignErr map[uuid.UUID]error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		brands:          make(map[uuid.UUID]domain.Brand),
		campaigns:       make(map[uuid.UUID]domain.Campaign),
		saveCampaignErr: make(map[uuid.UUID]error),
	}
}

func (r *fakeRepo) GetBrand(_ context.Context, id uuid.UUID) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &b, nil
}

func (r *fakeRepo) SaveBrand(_ context.Context, b *domain.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveBrandErr != nil {
		return r.saveBrandErr
	}
	if _, ok := r.brands[b.ID]; !ok {
		return port.ErrNotFound
	}
	r.brands[b.ID] = *b
	return nil
}

func (r *fakeRepo) ListBrands(_ context.Context, activeOnly bool) ([]domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Brand
	for _, b := range r.brands {
		if activeOnly && !b.Active {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (r *fakeRepo) SaveCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.saveCampaignErr[c.ID]; err != nil {
		return err
	}
	if _, ok := r.campaigns[c.ID]; !ok {
		return port.ErrNotFound
	}
	r.campaigns[c.ID] = *c
	return nil
}

func (r *fakeRepo) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Campaign
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) brand(id uuid.UUID) domain.Brand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.brands[id]
}

func (r *fakeRepo) campaign(id uuid.UUID) domain.Campaign {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.campaigns[id]
}

// fakeLedger is an in-memory append-only spend log.
type fakeLedger struct {
	mu      sync.Mutex
	spends  []domain.AdSpend
	brandOf map[uuid.UUID]uuid.UUID

	failCampaignSums bool
	failBrandSums    bool
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{brandOf: make(map[uuid.UUID]uuid.UUID)}
}

func (l *fakeLedger) CreateSpend(_ context.Context, s *domain.AdSpend) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.spends = append(l.spends, *s)
	return nil
}

func (l *fakeLedger) SumCampaignSpend(_ context.Context, campaignID uuid.UUID, from, to time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failCampaignSums {
		return 0, context.DeadlineExceeded
	}
	var total int64
	for _, s := range l.spends {
		if s.CampaignID == campaignID && inWindow(s.OccurredAt, from, to) {
			total += s.Amount
		}
	}
	return total, nil
}

func (l *fakeLedger) SumBrandSpend(_ context.Context, brandID uuid.UUID, from, to time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failBrandSums {
		return 0, context.DeadlineExceeded
	}
	var total int64
	for _, s := range l.spends {
		if l.brandOf[s.CampaignID] == brandID && inWindow(s.OccurredAt, from, to) {
			total += s.Amount
		}
	}
	return total, nil
}

func inWindow(at, from, to time.Time) bool {
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return !at.Before(from) && at.Before(end)
}

type fakeSink struct {
	mu      sync.Mutex
	alerts  []port.Alert
	emitErr error
}

func (s *fakeSink) Emit(_ context.Context, a port.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emitErr != nil {
		return s.emitErr
	}
	s.alerts = append(s.alerts, a)
	return nil
}

// fixture wires a BudgetUseCase to in-memory fakes with a fixed clock.
type fixture struct {
	t      *testing.T
	repo   *fakeRepo
	ledger *fakeLedger
	sink   *fakeSink
	clock  *fakeClock
	uc     *BudgetUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		t:      t,
		repo:   newFakeRepo(),
		ledger: newFakeLedger(),
		sink:   &fakeSink{},
		clock:  &fakeClock{now: mondayAt(10, 0)},
	}
	f.uc = NewBudgetUseCase(f.repo, f.ledger, f.sink, f.clock, Config{})
	return f
}

func (f *fixture) addBrand(name string, dailyBudget, monthlyBudget int64) *domain.Brand {
	b := domain.Brand{
		ID:            uuid.New(),
		Name:          name,
		Active:        true,
		DailyBudget:   dailyBudget,
		MonthlyBudget: monthlyBudget,
	}
	f.repo.brands[b.ID] = b
	return &b
}

func (f *fixture) addCampaign(b *domain.Brand, name string) *domain.Campaign {
	c := domain.Campaign{
		ID:      uuid.New(),
		BrandID: b.ID,
		Name:    name,
		Status:  domain.StatusActive,
	}
	f.repo.campaigns[c.ID] = c
	f.ledger.brandOf[c.ID] = b.ID
	return &c
}

func (f *fixture) addSpend(c *domain.Campaign, amount int64, at time.Time) {
	f.ledger.spends = append(f.ledger.spends, domain.AdSpend{
		ID:         uuid.New(),
		CampaignID: c.ID,
		Amount:     amount,
		OccurredAt: at,
	})
}
