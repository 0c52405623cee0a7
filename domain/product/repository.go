package product

import (
	"context"

	"layerit/domain/shared"
)

// Repository Product catalog repository interface
// The catalog is read-only: it is loaded once and never written by the domain.
type Repository interface {
	// FindByID returns a not-found domain error for unknown ids.
	FindByID(ctx context.Context, id int) (Product, error)

	// List returns every product in dataset order.
	List(ctx context.Context) ([]Product, error)

	// FindBySpecification returns matching products in dataset order; a nil spec matches all.
	FindBySpecification(ctx context.Context, spec shared.Specification[Product]) ([]Product, error)
}

// Resolve looks up ids in order, skipping ids the repository does not know.
// It is how persisted routine ids are turned back into products.
func Resolve(ctx context.Context, repo Repository, ids []int) ([]Product, []int, error) {
	products := make([]Product, 0, len(ids))
	var missing []int
	for _, id := range ids {
		p, err := repo.FindByID(ctx, id)
		if err != nil {
			if shared.IsNotFound(err) {
				missing = append(missing, id)
				continue
			}
			return nil, nil, err
		}
		products = append(products, p)
	}
	return products, missing, nil
}
