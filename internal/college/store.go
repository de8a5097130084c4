package college

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("college not found")

type Store interface {
	List(ctx context.Context, f Filter) ([]College, error)
	Get(ctx context.Context, id string) (College, error)
	Create(ctx context.Context, c College) (College, error) // assigns ID
	Update(ctx context.Context, c College) error
	Delete(ctx context.Context, id string) error
}
