package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/id"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// CartService manages one shopping cart per signed-in user. Carts live
// in memory; only completed checkouts are persisted as orders.
type CartService struct {
	mu      sync.Mutex
	carts   map[string]*domain.Cart
	catalog *catalog.Catalog
	store   *store.Store
	logger  *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cat *catalog.Catalog, st *store.Store, logger *slog.Logger) *CartService {
	return &CartService{
		carts:   make(map[string]*domain.Cart),
		catalog: cat,
		store:   st,
		logger:  logger,
	}
}

// cart returns the user's cart, creating an empty one on first use.
// Caller must hold mu.
func (s *CartService) cart(userID string) *domain.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = domain.NewCart()
		s.carts[userID] = c
	}
	return c
}

// Get returns a snapshot of the user's cart.
func (s *CartService) Get(_ context.Context, userID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	snapshot := *c
	snapshot.Lines = make([]domain.CartLine, len(c.Lines))
	copy(snapshot.Lines, c.Lines)
	return &snapshot
}

// AddItem adds quantity copies of the book to the user's cart.
func (s *CartService) AddItem(_ context.Context, userID string, bookID, quantity int) (*domain.Cart, error) {
	book, err := s.catalog.ByID(bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	c.AddItem(*book, quantity)
	return s.snapshot(c), nil
}

// RemoveItem removes the book's line from the user's cart.
func (s *CartService) RemoveItem(_ context.Context, userID string, bookID int) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	c.RemoveItem(bookID)
	return s.snapshot(c)
}

// SetQuantity replaces the quantity of the book's line.
// Zero or below removes the line.
func (s *CartService) SetQuantity(_ context.Context, userID string, bookID, quantity int) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	c.SetQuantity(bookID, quantity)
	return s.snapshot(c)
}

// Clear empties the user's cart.
func (s *CartService) Clear(_ context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(userID).Clear()
}

// Contains reports whether the book is in the user's cart.
func (s *CartService) Contains(_ context.Context, userID string, bookID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(userID).Contains(bookID)
}

// QuantityOf returns the quantity of the book in the user's cart.
func (s *CartService) QuantityOf(_ context.Context, userID string, bookID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(userID).QuantityOf(bookID)
}

// Summary returns the order totals for the user's current cart.
func (s *CartService) Summary(_ context.Context, userID string) domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart(userID).Summarize()
}

// Checkout turns the user's cart into a persisted order and removes
// the purchased lines from it. The order's receipt id is what the
// confirmation screen shows.
func (s *CartService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	s.mu.Lock()
	c := s.cart(userID)
	if c.IsEmpty() {
		s.mu.Unlock()
		return nil, domainerrors.Validation("cart is empty")
	}

	summary := c.Summarize()
	lines := make([]domain.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	s.mu.Unlock()

	orderID, err := id.Generate("order")
	if err != nil {
		return nil, fmt.Errorf("generate order ID: %w", err)
	}

	order := &domain.Order{
		Record: domain.Record{
			ID: orderID,
		},
		UserID:     userID,
		ReceiptID:  uuid.NewString(),
		Lines:      lines,
		Subtotal:   summary.Subtotal,
		Tax:        summary.Tax,
		GrandTotal: summary.GrandTotal,
		ItemCount:  summary.ItemCount,
	}
	order.InitTimestamps()

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	// Fold the purchase into the back-office aggregates
	if account, err := s.store.Accounts.Get(ctx, userID); err == nil {
		account.RecordOrder(order.GrandTotal)
		if err := s.store.Accounts.Update(ctx, userID, account); err != nil && s.logger != nil {
			s.logger.Warn("Failed to update account aggregates", "user_id", userID, "error", err)
		}
	}

	// The order is safe. Only the purchased lines come out of the cart,
	// so anything added while the order was being written survives.
	s.removePurchased(userID, lines)

	if s.logger != nil {
		s.logger.Info("Checkout completed",
			"user_id", userID,
			"order_id", orderID,
			"items", order.ItemCount,
			"total", order.GrandTotal,
		)
	}

	return order, nil
}

// Orders returns the user's order history.
func (s *CartService) Orders(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.store.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Drop discards the user's in-memory cart entirely.
// Called on logout so the next sign-in starts clean.
func (s *CartService) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}

// removePurchased subtracts the checked-out quantities from the user's
// cart. A line that grew since the snapshot keeps the difference.
func (s *CartService) removePurchased(userID string, lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	for _, l := range lines {
		c.SetQuantity(l.Book.ID, c.QuantityOf(l.Book.ID)-l.Quantity)
	}
}

// snapshot copies a cart so callers can't mutate shared state.
// Caller must hold mu.
func (s *CartService) snapshot(c *domain.Cart) *domain.Cart {
	out := *c
	out.Lines = make([]domain.CartLine, len(c.Lines))
	copy(out.Lines, c.Lines)
	return &out
}
