package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

const (
	orderPrefix       = "order:"
	orderByUserPrefix = "idx:orders:user:" // For listing a user's order history
)

// ErrOrderNotFound is returned when an order cannot be found by ID.
var ErrOrderNotFound = errors.New("order not found")

// CreateOrder persists a completed checkout.
func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	key := []byte(orderPrefix + order.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if exists {
		return ErrAlreadyExists.WithMessage("order already exists")
	}

	userIndexKey := []byte(orderByUserPrefix + order.UserID + ":" + order.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("marshal order: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		// Create user index for order history
		if err := txn.Set(userIndexKey, []byte{}); err != nil {
			return err
		}

		return nil
	})
}

// GetOrder retrieves an order by ID.
func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	key := []byte(orderPrefix + id)

	var order domain.Order
	if err := s.get(key, &order); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &order, nil
}

// ListUserOrders returns all orders a user has placed, oldest first.
func (s *Store) ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	prefix := []byte(orderByUserPrefix + userID + ":")
	var orders []*domain.Order

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false // We only need keys

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			// Key format: idx:orders:user:userID:orderID
			key := string(it.Item().Key())
			parts := strings.Split(key, ":")
			if len(parts) < 5 {
				continue
			}
			orderID := parts[4]

			order, err := s.GetOrder(ctx, orderID)
			if err != nil {
				if errors.Is(err, ErrOrderNotFound) {
					continue
				}
				return err
			}

			orders = append(orders, order)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}

	return orders, nil
}
