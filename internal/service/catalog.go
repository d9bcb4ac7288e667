package service

import (
	"context"
	"log/slog"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

// CatalogService exposes the storefront's browse and search queries.
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(cat *catalog.Catalog, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: cat, logger: logger}
}

// ListBooks returns the full catalog.
func (s *CatalogService) ListBooks(_ context.Context) []domain.Book {
	return s.catalog.All()
}

// GetBook returns a single book by id.
func (s *CatalogService) GetBook(_ context.Context, id int) (*domain.Book, error) {
	return s.catalog.ByID(id)
}

// BooksByCategory returns books in the named section.
func (s *CatalogService) BooksByCategory(_ context.Context, category string) []domain.Book {
	return s.catalog.ByCategory(category)
}

// Search runs a case-insensitive substring search over the catalog.
func (s *CatalogService) Search(_ context.Context, query string) []domain.Book {
	return s.catalog.Search(query)
}

// Featured returns the featured shelf.
func (s *CatalogService) Featured(_ context.Context) []domain.Book {
	return s.catalog.Featured()
}

// BestSellers returns the best-sellers shelf.
func (s *CatalogService) BestSellers(_ context.Context) []domain.Book {
	return s.catalog.BestSellers()
}

// Categories returns the browsable sections.
func (s *CatalogService) Categories(_ context.Context) []domain.Category {
	return s.catalog.Categories()
}
