package application

import (
	"context"
	"errors"
	"time"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
	"github.com/draperhq/storefront-api/internal/domain/entity"
	"github.com/draperhq/storefront-api/pkg/helpers"
)

// In-memory repository fakes backing the service tests. They mirror the
// postgres implementations' contracts: (nil, nil) on miss, resolved cart
// lines, and an all-or-nothing PlaceOrder.

type memUsers struct {
	byID map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	u.ID = helpers.NewID()
	u.CreatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByResetTokenHash(_ context.Context, hash string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == hash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return errors.New("update of unknown user")
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memProducts struct {
	byID map[string]*entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{byID: map[string]*entity.Product{}}
}

func (m *memProducts) add(name string, priceCents int64, stock int) *entity.Product {
	p := &entity.Product{
		ID:         helpers.NewID(),
		Name:       name,
		PriceCents: priceCents,
		Category:   entity.CategoryCurtainsDrapes,
		Stock:      stock,
		InStock:    stock > 0,
	}
	m.byID[p.ID] = p
	return p
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = helpers.NewID()
	p.InStock = p.Stock > 0
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := m.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *memProducts) List(_ context.Context, category string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range m.byID {
		if category == "" || p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	p.InStock = p.Stock > 0
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type cartLine struct {
	productID string
	qty       int
	addedAt   time.Time
}

type memCarts struct {
	products *memProducts
	byUser   map[string]string // userID -> cartID
	lines    map[string][]cartLine
}

func newMemCarts(products *memProducts) *memCarts {
	return &memCarts{
		products: products,
		byUser:   map[string]string{},
		lines:    map[string][]cartLine{},
	}
}

func (m *memCarts) GetByUserID(_ context.Context, userID string) (*entity.Cart, error) {
	cartID, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	cart := &entity.Cart{ID: cartID, UserID: userID}
	for _, l := range m.lines[cartID] {
		p := m.products.byID[l.productID]
		if p == nil {
			continue
		}
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID:      p.ID,
			ProductName:    p.Name,
			UnitPriceCents: p.PriceCents,
			Stock:          p.Stock,
			Quantity:       l.qty,
			AddedAt:        l.addedAt,
		})
	}
	return cart, nil
}

func (m *memCarts) EnsureCart(_ context.Context, userID string) (string, error) {
	if id, ok := m.byUser[userID]; ok {
		return id, nil
	}
	id := helpers.NewID()
	m.byUser[userID] = id
	return id, nil
}

func (m *memCarts) UpsertItem(_ context.Context, cartID, productID string, qty int) error {
	lines := m.lines[cartID]
	for i := range lines {
		if lines[i].productID == productID {
			lines[i].qty += qty
			return nil
		}
	}
	m.lines[cartID] = append(lines, cartLine{productID: productID, qty: qty, addedAt: time.Now()})
	return nil
}

func (m *memCarts) RemoveItem(_ context.Context, cartID, productID string) (bool, error) {
	lines := m.lines[cartID]
	for i := range lines {
		if lines[i].productID == productID {
			m.lines[cartID] = append(lines[:i], lines[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memCarts) CountItems(_ context.Context, cartID string) (int, error) {
	return len(m.lines[cartID]), nil
}

func (m *memCarts) Delete(_ context.Context, cartID string) error {
	for uid, id := range m.byUser {
		if id == cartID {
			delete(m.byUser, uid)
		}
	}
	delete(m.lines, cartID)
	return nil
}

type memOrders struct {
	products *memProducts
	carts    *memCarts
	byID     map[string]*entity.Order
}

func newMemOrders(products *memProducts, carts *memCarts) *memOrders {
	return &memOrders{products: products, carts: carts, byID: map[string]*entity.Order{}}
}

func (m *memOrders) PlaceOrder(ctx context.Context, o *entity.Order, cartID string) error {
	// All-or-nothing: validate every decrement before applying any.
	for _, it := range o.Items {
		p := m.products.byID[it.ProductID]
		if p == nil || p.Stock < it.Quantity {
			return &apperr.InsufficientStockError{ProductName: it.ProductName}
		}
	}
	for _, it := range o.Items {
		p := m.products.byID[it.ProductID]
		p.Stock -= it.Quantity
		p.InStock = p.Stock > 0
	}
	o.ID = helpers.NewID()
	o.CreatedAt = time.Now()
	cp := *o
	m.byID[o.ID] = &cp
	return m.carts.Delete(ctx, cartID)
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if o, ok := m.byID[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID string) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range m.byID {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrders) List(_ context.Context) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range m.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memOrders) SetConfirmed(_ context.Context, id string) error {
	if o, ok := m.byID[id]; ok {
		o.Confirmed = true
	}
	return nil
}

type memContacts struct {
	msgs []entity.ContactMessage
}

func (m *memContacts) Create(_ context.Context, msg *entity.ContactMessage) error {
	msg.ID = helpers.NewID()
	msg.CreatedAt = time.Now()
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memContacts) List(_ context.Context) ([]entity.ContactMessage, error) {
	return m.msgs, nil
}

// capturePublisher records enqueued jobs and can simulate broker failure.
type capturePublisher struct {
	jobs []any
	err  error
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}
