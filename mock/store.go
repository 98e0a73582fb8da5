package mock

import (
	"context"

	"github.com/fwojciec/regdoc"
)

var _ regdoc.Store = (*Store)(nil)

// Store is a mock implementation of regdoc.Store.
type Store struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	PutFn    func(ctx context.Context, key string, value []byte) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.PutFn(ctx, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}
