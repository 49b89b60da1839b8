package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/internal/domain/repository"
)

// In-memory repository fakes used across the service tests.

type fakeStaffRepo struct {
	members   map[uuid.UUID]*entity.StaffMember
	discounts map[uuid.UUID]*entity.StaffDiscount
	sales     map[uuid.UUID]*entity.StaffSale
	settled   []*entity.Expense
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		members:   make(map[uuid.UUID]*entity.StaffMember),
		discounts: make(map[uuid.UUID]*entity.StaffDiscount),
		sales:     make(map[uuid.UUID]*entity.StaffSale),
	}
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *entity.StaffMember) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	r.members[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) loaded(id uuid.UUID) *entity.StaffMember {
	m, ok := r.members[id]
	if !ok {
		return nil
	}
	copied := *m
	copied.Sales = nil
	copied.Discounts = nil
	for _, s := range r.sales {
		if s.StaffID == id {
			copied.Sales = append(copied.Sales, *s)
		}
	}
	for _, d := range r.discounts {
		if d.StaffID == id {
			copied.Discounts = append(copied.Discounts, *d)
		}
	}
	return &copied
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	return r.loaded(id), nil
}

func (r *fakeStaffRepo) GetByCode(ctx context.Context, code string) (*entity.StaffMember, error) {
	for id, m := range r.members {
		if m.Code == code {
			return r.loaded(id), nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) List(ctx context.Context) ([]entity.StaffMember, error) {
	var out []entity.StaffMember
	for id := range r.members {
		out = append(out, *r.loaded(id))
	}
	return out, nil
}

func (r *fakeStaffRepo) Update(ctx context.Context, staff *entity.StaffMember) error {
	r.members[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.members, id)
	return nil
}

func (r *fakeStaffRepo) AddSaleRecord(ctx context.Context, record *entity.StaffSale) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.sales[record.ID] = record
	return nil
}

func (r *fakeStaffRepo) AddDiscount(ctx context.Context, discount *entity.StaffDiscount) error {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	r.discounts[discount.ID] = discount
	return nil
}

func (r *fakeStaffRepo) GetDiscount(ctx context.Context, staffID, discountID uuid.UUID) (*entity.StaffDiscount, error) {
	d, ok := r.discounts[discountID]
	if !ok || d.StaffID != staffID {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeStaffRepo) UpdateDiscount(ctx context.Context, discount *entity.StaffDiscount) error {
	r.discounts[discount.ID] = discount
	return nil
}

func (r *fakeStaffRepo) ClearHistory(ctx context.Context, staffID uuid.UUID) error {
	for id, s := range r.sales {
		if s.StaffID == staffID {
			delete(r.sales, id)
		}
	}
	for id, d := range r.discounts {
		if d.StaffID == staffID {
			delete(r.discounts, id)
		}
	}
	return nil
}

func (r *fakeStaffRepo) SettleCommission(ctx context.Context, staffID uuid.UUID, expense *entity.Expense) error {
	for _, s := range r.sales {
		if s.StaffID == staffID && !s.CommissionPaid {
			s.CommissionPaid = true
		}
	}
	for _, d := range r.discounts {
		if d.StaffID == staffID && d.Status == enum.DiscountStatusActive {
			d.Status = enum.DiscountStatusApplied
		}
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	r.settled = append(r.settled, expense)
	return nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range r.expenses {
		if params.Category != "" && e.Category != params.Category {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeClientRepo struct {
	clients   map[uuid.UUID]*entity.Client
	purchases []*entity.ClientPurchase
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) GetByCode(ctx context.Context, code string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) ListPurchases(ctx context.Context, clientID uuid.UUID) ([]entity.ClientPurchase, error) {
	var out []entity.ClientPurchase
	for _, p := range r.purchases {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeSaleRepo mimics the transactional Record semantics: it assigns invoice
// numbers from the highest ever seen, including deleted sales, and applies
// the bundled side effects.
type fakeSaleRepo struct {
	sales      map[uuid.UUID]*entity.Sale
	items      map[uuid.UUID][]entity.SaleItem
	maxInvoice int
	products   *fakeProductRepo
	clients    *fakeClientRepo
	staff      *fakeStaffRepo
}

func newFakeSaleRepo(products *fakeProductRepo, clients *fakeClientRepo, staff *fakeStaffRepo) *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:    make(map[uuid.UUID]*entity.Sale),
		items:    make(map[uuid.UUID][]entity.SaleItem),
		products: products,
		clients:  clients,
		staff:    staff,
	}
}

func (r *fakeSaleRepo) Record(ctx context.Context, input *repository.SaleRecordInput) error {
	r.maxInvoice++
	input.Sale.InvoiceNumber = r.maxInvoice
	if input.Sale.ID == uuid.Nil {
		input.Sale.ID = uuid.New()
	}
	r.sales[input.Sale.ID] = input.Sale

	for i := range input.Items {
		input.Items[i].SaleID = input.Sale.ID
	}
	r.items[input.Sale.ID] = input.Items

	if input.Purchase != nil {
		input.Purchase.SaleID = input.Sale.ID
		r.clients.purchases = append(r.clients.purchases, input.Purchase)
	}

	if input.Staff != nil {
		input.Staff.SaleID = input.Sale.ID
		if err := r.staff.AddSaleRecord(ctx, input.Staff); err != nil {
			return err
		}
	}

	for productID, qty := range input.Stock {
		p, ok := r.products.products[productID]
		if !ok {
			return fmt.Errorf("unknown product %s", productID)
		}
		p.Quantity -= qty
	}

	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	copied.Items = r.items[id]
	return &copied, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	s, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("sale not found")
	}
	s.Status = enum.SaleStatusCancelled
	s.CancellationReason = &reason
	return nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) DeleteAll(ctx context.Context) error {
	r.sales = make(map[uuid.UUID]*entity.Sale)
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.ReceiptSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.ReceiptSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.ReceiptSettings) error {
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.ReceiptSettings) error {
	r.settings = settings
	return nil
}

type fakeCredentialRepo struct {
	credential *entity.AdminCredential
}

func (r *fakeCredentialRepo) Get(ctx context.Context) (*entity.AdminCredential, error) {
	if r.credential == nil {
		return nil, nil
	}
	copied := *r.credential
	return &copied, nil
}

func (r *fakeCredentialRepo) Create(ctx context.Context, credential *entity.AdminCredential) error {
	r.credential = credential
	return nil
}

func (r *fakeCredentialRepo) Update(ctx context.Context, credential *entity.AdminCredential) error {
	r.credential = credential
	return nil
}
