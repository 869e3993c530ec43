package catalog

import (
	"context"
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("item not found")

// Store holds the sellable catalog in memory. FetchDelay simulates the
// latency of the upstream catalog source.
type Store struct {
	items []Item
	delay time.Duration
}

func NewStore(items []Item, delay time.Duration) *Store {
	return &Store{items: items, delay: delay}
}

// NewSeededStore returns a store preloaded with the built-in catalog.
func NewSeededStore(delay time.Duration) *Store {
	return NewStore(SeedItems(), delay)
}

func (s *Store) GetAll(ctx context.Context) ([]Item, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id int) (Item, error) {
	if err := s.wait(ctx); err != nil {
		return Item{}, err
	}
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
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
