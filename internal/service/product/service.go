package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/logging"
	"storefront/internal/storefront"
)

type catalogClient interface {
	Products(ctx context.Context) (storefront.ProductConnection, error)
}

type Service struct {
	client catalogClient
	logger *zap.Logger
}

func New(client catalogClient, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logging.OrNop(logger)}
}

// List fetches the catalog and returns it as view models. Every call hits the
// API; results are not cached.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	conn, err := s.client.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	products := Normalize(conn)
	s.logger.Debug("products fetched", zap.Int("count", len(products)))
	return products, nil
}

// Get returns a single product from the current catalog page.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
