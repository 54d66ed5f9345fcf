package httpserver

import (
	"context"
	"io"
	"log"

	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/domain"
	cartsvc "ventas-dashboard/internal/service/cart"
	dashboardsvc "ventas-dashboard/internal/service/dashboard"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubAuthService struct {
	session    *domain.Session
	user       *domain.User
	users      []domain.User
	loginErr   error
	lookupErr  error
	lastCreds  domain.Credentials
	lastLookup string
	lastToken  string
}

func (s *stubAuthService) Login(_ context.Context, creds domain.Credentials) (*domain.Session, error) {
	s.lastCreds = creds
	return s.session, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, in domain.Registration) (*domain.User, error) {
	return &domain.User{ID: "new", Email: in.Email, Name: in.Name}, nil
}

func (s *stubAuthService) LookupByToken(_ context.Context, token string) (*domain.User, error) {
	s.lastLookup = token
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.user, nil
}

func (s *stubAuthService) Current(ctx context.Context) (*domain.User, error) {
	s.lastToken = backend.TokenFrom(ctx)
	return s.user, nil
}

func (s *stubAuthService) Customers(ctx context.Context) ([]domain.User, error) {
	s.lastToken = backend.TokenFrom(ctx)
	return s.users, nil
}

type stubCategoryService struct {
	created domain.CategoryInput
	err     error
}

func (s *stubCategoryService) List(context.Context) ([]domain.Category, error) {
	return nil, s.err
}

func (s *stubCategoryService) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Category{ID: "c1", Name: in.Name}, nil
}

func (s *stubCategoryService) Update(_ context.Context, id string, in domain.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: in.Name}, s.err
}

func (s *stubCategoryService) Delete(context.Context, string) error { return s.err }

type stubProductService struct {
	lastFilter domain.ProductFilter
	listCalls  int
	getErr     error
}

func (s *stubProductService) List(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	s.listCalls++
	s.lastFilter = f
	return []domain.Product{{ID: "p1", Name: "Camisa", Price: decimal.RequireFromString("19.99"), Stock: 2}}, nil
}

func (s *stubProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Product{ID: id}, nil
}

func (s *stubProductService) Create(_ context.Context, _ domain.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: "p-new"}, nil
}

func (s *stubProductService) Update(_ context.Context, id string, _ domain.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (s *stubProductService) Delete(context.Context, string) error { return nil }

type stubDashboardService struct {
	summary   *dashboardsvc.Summary
	orders    []domain.Order
	err       error
	lastLimit int
	lastQuery dashboardsvc.OrderQuery
}

func (s *stubDashboardService) Summary(_ context.Context, limit int) (*dashboardsvc.Summary, error) {
	s.lastLimit = limit
	return s.summary, s.err
}

func (s *stubDashboardService) Orders(_ context.Context, q dashboardsvc.OrderQuery) ([]domain.Order, error) {
	s.lastQuery = q
	return s.orders, s.err
}

type stubCartService struct {
	draft       *cartsvc.Draft
	result      *cartsvc.SubmitResult
	err         error
	lastOwner   string
	lastID      string
	lastProduct string
	lastQty     int
	lastUserID  string
}

func (s *stubCartService) Create(_ context.Context, ownerID string) (*cartsvc.Draft, error) {
	s.lastOwner = ownerID
	return s.draft, s.err
}

func (s *stubCartService) Get(_ context.Context, ownerID, id string) (*cartsvc.Draft, error) {
	s.lastOwner, s.lastID = ownerID, id
	return s.draft, s.err
}

func (s *stubCartService) Discard(_ context.Context, ownerID, id string) error {
	s.lastOwner, s.lastID = ownerID, id
	return s.err
}

func (s *stubCartService) SelectCustomer(_ context.Context, ownerID, id, userID string) (*cartsvc.Draft, error) {
	s.lastOwner, s.lastID, s.lastUserID = ownerID, id, userID
	return s.draft, s.err
}

func (s *stubCartService) AddItem(_ context.Context, ownerID, id, productID string, quantity int) (*cartsvc.Draft, error) {
	s.lastOwner, s.lastID, s.lastProduct, s.lastQty = ownerID, id, productID, quantity
	return s.draft, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, ownerID, id, productID string) (*cartsvc.Draft, error) {
	s.lastOwner, s.lastID, s.lastProduct = ownerID, id, productID
	return s.draft, s.err
}

func (s *stubCartService) Submit(_ context.Context, ownerID, id string) (*cartsvc.SubmitResult, error) {
	s.lastOwner, s.lastID = ownerID, id
	return s.result, s.err
}

func testDeps() Deps {
	return Deps{
		AuthSvc:      &stubAuthService{user: &domain.User{ID: "seller-1", Email: "seller@example.com"}},
		CategorySvc:  &stubCategoryService{},
		ProductSvc:   &stubProductService{},
		DashboardSvc: &stubDashboardService{},
		CartSvc:      &stubCartService{},
	}
}
