package orders

import (
	"context"
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// Store holds the order history in memory.
type Store struct {
	orders []Order
	delay  time.Duration
}

func NewStore(orders []Order, delay time.Duration) *Store {
	return &Store{orders: orders, delay: delay}
}

// NewSeededStore returns a store preloaded with the built-in history.
func NewSeededStore(delay time.Duration) *Store {
	return NewStore(SeedOrders(), delay)
}

func (s *Store) GetAll(ctx context.Context) ([]Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Order, error) {
	if err := s.wait(ctx); err != nil {
		return Order{}, err
	}
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
