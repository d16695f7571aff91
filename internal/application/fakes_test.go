package application

import (
	"context"
	"errors"

	"github.com/baw-market/baw-cli/internal/domain"
)

var errStoreBroken = errors.New("store broken")

// fakeStore is an in-memory StateStore with switchable write failures.
type fakeStore struct {
	session    *domain.Session
	cart       *domain.Cart
	failWrites bool

	sessionSaves int
	cartSaves    int
}

func (s *fakeStore) LoadSession(context.Context) (domain.Session, error) {
	if s.session == nil {
		return domain.Session{}, nil
	}
	return *s.session, nil
}

func (s *fakeStore) SaveSession(_ context.Context, session domain.Session) error {
	if s.failWrites {
		return errStoreBroken
	}
	s.sessionSaves++
	s.session = &session
	return nil
}

func (s *fakeStore) ClearSession(context.Context) error {
	if s.failWrites {
		return errStoreBroken
	}
	s.session = nil
	return nil
}

func (s *fakeStore) LoadCart(context.Context) (domain.Cart, error) {
	if s.cart == nil {
		return domain.Cart{}, nil
	}
	return *s.cart, nil
}

func (s *fakeStore) SaveCart(_ context.Context, cart domain.Cart) error {
	if s.failWrites {
		return errStoreBroken
	}
	s.cartSaves++
	s.cart = &cart
	return nil
}

func (s *fakeStore) ClearCart(context.Context) error {
	if s.failWrites {
		return errStoreBroken
	}
	s.cart = nil
	return nil
}

// fakeMarketplace returns canned results per operation.
type fakeMarketplace struct {
	loginResult    domain.AuthResult
	loginErr       error
	registerResult domain.AuthResult
	registerErr    error
	products       []domain.Product
	productsErr    error
	order          domain.Order
	orderErr       error

	submittedCarts []domain.Cart
}

func (m *fakeMarketplace) Login(context.Context, domain.Credentials) (domain.AuthResult, error) {
	return m.loginResult, m.loginErr
}

func (m *fakeMarketplace) Register(context.Context, domain.Registration) (domain.AuthResult, error) {
	return m.registerResult, m.registerErr
}

func (m *fakeMarketplace) FetchProducts(context.Context, domain.ProductFilter) ([]domain.Product, error) {
	return m.products, m.productsErr
}

func (m *fakeMarketplace) FetchProduct(context.Context, int64) (domain.Product, error) {
	if len(m.products) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return m.products[0], m.productsErr
}

func (m *fakeMarketplace) SubmitOrder(_ context.Context, cart domain.Cart) (domain.Order, error) {
	if m.orderErr != nil {
		return domain.Order{}, m.orderErr
	}
	m.submittedCarts = append(m.submittedCarts, cart)
	return m.order, nil
}
