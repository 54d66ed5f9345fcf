package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
	"ventas-dashboard/internal/messaging"
	"ventas-dashboard/internal/sale"
)

type Service struct {
	repo      cartRepo
	products  productLookup
	orders    sale.OrderCreator
	publisher messaging.Publisher
	topic     string
	logger    *log.Logger
	locks     *draftLocks
}

type cartRepo interface {
	Create(ctx context.Context, ownerID string) (*domain.CartDraft, error)
	Get(ctx context.Context, ownerID, id string) (*domain.CartDraft, error)
	Save(ctx context.Context, draft *domain.CartDraft) error
	Delete(ctx context.Context, ownerID, id string) error
}

type productLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// New wires a draft service. Sale events are dropped until WithEvents is called.
// Changes to one draft are serialized within the process.
func New(repo cartRepo, products productLookup, orders sale.OrderCreator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:      repo,
		products:  products,
		orders:    orders,
		publisher: messaging.Nop{},
		logger:    logger,
		locks:     newDraftLocks(),
	}
}

// WithEvents publishes a messaging.SaleCreated to topic after each accepted sale.
func (s *Service) WithEvents(publisher messaging.Publisher, topic string) *Service {
	if publisher != nil {
		s.publisher = publisher
	}
	s.topic = topic
	return s
}

// Draft is a cart draft with its derived figures.
type Draft struct {
	*domain.CartDraft
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// SubmitResult is the outcome of an accepted sale.
type SubmitResult struct {
	Order *domain.Order `json:"order"`
	Draft Draft         `json:"draft"`
}

func view(d *domain.CartDraft) *Draft {
	return &Draft{
		CartDraft: d,
		Total:     sale.Total(d.Items),
		ItemCount: sale.Quantity(d.Items),
	}
}

func (s *Service) Create(ctx context.Context, ownerID string) (*Draft, error) {
	d, err := s.repo.Create(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return view(d), nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Draft, error) {
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return view(d), nil
}

func (s *Service) Discard(ctx context.Context, ownerID, id string) error {
	defer s.locks.lock(id)()
	return s.repo.Delete(ctx, ownerID, id)
}

// SelectCustomer sets the customer the sale is for. A blank userID clears it.
func (s *Service) SelectCustomer(ctx context.Context, ownerID, id, userID string) (*Draft, error) {
	defer s.locks.lock(id)()
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	d.UserID = strings.TrimSpace(userID)
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return view(d), nil
}

// AddItem adds quantity units of productID at the product's current price.
// An id the catalog does not know leaves the draft as it was.
func (s *Service) AddItem(ctx context.Context, ownerID, id, productID string, quantity int) (*Draft, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.NewValidationError("productId", "select a product")
	}
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity", "must be at least 1")
	}
	defer s.locks.lock(id)()
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("cart service: add draft_id=%s product_id=%s unknown product, ignored", id, productID)
			return view(d), nil
		}
		return nil, err
	}

	d.Items = sale.Add(d.Items, product, quantity)
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return view(d), nil
}

func (s *Service) RemoveItem(ctx context.Context, ownerID, id, productID string) (*Draft, error) {
	defer s.locks.lock(id)()
	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	d.Items = sale.Remove(d.Items, productID)
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return view(d), nil
}

// Submit sends the draft to the inventory API as one sale. The draft is
// emptied before the order is requested, so a repeated submit finds nothing
// to send. If the API rejects the sale the items and customer are put back.
func (s *Service) Submit(ctx context.Context, ownerID, id string) (*SubmitResult, error) {
	defer s.locks.lock(id)()

	d, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	total := sale.Total(d.Items)
	emptied := &domain.CartDraft{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Items:     []domain.SaleLineItem{},
		CreatedAt: d.CreatedAt,
	}

	claimed := false
	claim := orderCreatorFunc(func(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error) {
		if err := s.repo.Save(ctx, emptied); err != nil {
			return nil, fmt.Errorf("claim draft: %w", err)
		}
		claimed = true
		return s.orders.CreateSale(ctx, in)
	})

	session := sale.Session{UserID: d.UserID, Items: d.Items}
	cleared, order, err := sale.Submit(ctx, session, claim)
	if err != nil {
		s.logger.Printf("cart service: submit draft_id=%s error=%v", id, err)
		if claimed {
			if rerr := s.repo.Save(context.WithoutCancel(ctx), d); rerr != nil {
				s.logger.Printf("cart service: submit draft_id=%s restore error=%v", id, rerr)
			}
		}
		return nil, err
	}

	event := messaging.NewSaleCreated(d, order, total)
	if err := s.publisher.PublishEvent(ctx, s.topic, order.ID, event); err != nil {
		s.logger.Printf("cart service: submit order_id=%s publish error=%v", order.ID, err)
	}
	s.logger.Printf("cart service: submitted draft_id=%s order_id=%s items=%d total=%s", id, order.ID, len(d.Items), total)

	emptied.UserID = cleared.UserID
	return &SubmitResult{Order: order, Draft: *view(emptied)}, nil
}

type orderCreatorFunc func(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error)

func (f orderCreatorFunc) CreateSale(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error) {
	return f(ctx, in)
}
