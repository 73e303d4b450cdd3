package restaurant

import "context"

type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	ListAll(ctx context.Context) ([]*Restaurant, error)
}
