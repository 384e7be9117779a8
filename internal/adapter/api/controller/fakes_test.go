package controller

import (
	"context"
	"sort"
	"strings"

	"github.com/dividazero/dividazero-api/internal/adapter/repository"
	"github.com/dividazero/dividazero-api/internal/domain/customer"
	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	"github.com/dividazero/dividazero-api/internal/domain/profile"
	"github.com/dividazero/dividazero-api/internal/domain/sale"
)

// Repositórios em memória com as mesmas regras de escrituração dos
// repositórios pgx, para testar os controllers sem banco.

type fakeProfileRepo struct {
	profiles []*profile.Profile
}

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.profiles = append(r.profiles, p)
	return nil
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByPIN(_ context.Context, pin string) (*profile.Profile, error) {
	var latest *profile.Profile
	for _, p := range r.profiles {
		if p.PIN == pin && (latest == nil || p.CreatedAt.After(latest.CreatedAt)) {
			latest = p
		}
	}
	if latest == nil {
		return nil, repository.ErrProfileNotFound
	}
	return latest, nil
}

func (r *fakeProfileRepo) FindLatest(_ context.Context) (*profile.Profile, error) {
	var latest *profile.Profile
	for _, p := range r.profiles {
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	if latest == nil {
		return nil, repository.ErrProfileNotFound
	}
	return latest, nil
}

func (r *fakeProfileRepo) UpdateStatus(_ context.Context, id string, status profile.Status) error {
	for _, p := range r.profiles {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return repository.ErrProfileNotFound
}

type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
	sales     *fakeSaleRepo
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*customer.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, profileID, id string) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.ProfileID != profileID {
		return nil, repository.ErrCustomerNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, profileID string) ([]*customer.Customer, error) {
	var out []*customer.Customer
	for _, c := range r.customers {
		if c.ProfileID == profileID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCustomerRepo) FindByName(ctx context.Context, profileID, name string) ([]*customer.Customer, error) {
	all, _ := r.List(ctx, profileID)
	var out []*customer.Customer
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) ListDebtors(ctx context.Context, profileID string, limit int) ([]*customer.Customer, error) {
	all, _ := r.List(ctx, profileID)
	return ledger.TopDebtors(all, limit), nil
}

func (r *fakeCustomerRepo) RecordPayment(_ context.Context, profileID, id string, amount float64) (float64, error) {
	if err := ledger.ValidateAmount(amount); err != nil {
		return 0, err
	}
	c, ok := r.customers[id]
	if !ok || c.ProfileID != profileID {
		return 0, repository.ErrCustomerNotFound
	}
	c.TotalDebt = ledger.ApplyPayment(c.TotalDebt, amount)
	return c.TotalDebt, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, profileID, id string) error {
	c, ok := r.customers[id]
	if !ok || c.ProfileID != profileID {
		return repository.ErrCustomerNotFound
	}
	delete(r.customers, id)
	// a chave estrangeira anula a referência nas vendas (ON DELETE SET NULL)
	if r.sales != nil {
		for _, s := range r.sales.sales {
			if s.CustomerID == id {
				s.CustomerID = ""
			}
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales     map[string]*sale.Sale
	customers *fakeCustomerRepo
}

func newFakeSaleRepo(customers *fakeCustomerRepo) *fakeSaleRepo {
	r := &fakeSaleRepo{sales: make(map[string]*sale.Sale), customers: customers}
	customers.sales = r
	return r
}

func (r *fakeSaleRepo) Create(_ context.Context, s *sale.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateDebt(ctx context.Context, s *sale.Sale) (float64, error) {
	c, ok := r.customers.customers[s.CustomerID]
	if !ok || c.ProfileID != s.ProfileID {
		return 0, repository.ErrCustomerNotFound
	}
	if err := r.Create(ctx, s); err != nil {
		return 0, err
	}
	c.TotalDebt = ledger.ApplyDebtSale(c.TotalDebt, s.Amount)
	return c.TotalDebt, nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, profileID, id string) (*sale.Sale, error) {
	s, ok := r.sales[id]
	if !ok || s.ProfileID != profileID {
		return nil, repository.ErrSaleNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) List(_ context.Context, profileID string, limit, offset int) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.sales {
		if s.ProfileID == profileID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSaleRepo) ListOpenByCustomer(_ context.Context, profileID, customerID string) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.sales {
		if s.ProfileID == profileID && s.CustomerID == customerID && s.IsOpenDebt() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeSaleRepo) CountByProfile(_ context.Context, profileID string) (int, error) {
	count := 0
	for _, s := range r.sales {
		if s.ProfileID == profileID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, profileID, id string) error {
	s, ok := r.sales[id]
	if !ok || s.ProfileID != profileID {
		// já removida: no-op
		return nil
	}
	delete(r.sales, id)
	if s.IsOpenDebt() {
		if c, ok := r.customers.customers[s.CustomerID]; ok {
			c.TotalDebt = ledger.ReverseSale(c.TotalDebt, s.Amount)
		}
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
