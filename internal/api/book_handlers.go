package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the full catalog",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a single book by id",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/search",
		Summary:     "Search books",
		Description: "Case-insensitive substring search over title, author and description. Queries shorter than 3 characters return no results.",
		Tags:        []string{"Books"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "featuredBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/featured",
		Summary:     "Featured shelf",
		Description: "Returns up to 5 books rated 4.5 or higher",
		Tags:        []string{"Books"},
	}, s.handleFeaturedBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "bestSellerBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/best-sellers",
		Summary:     "Best sellers shelf",
		Description: "Returns up to 4 books ordered by rating",
		Tags:        []string{"Books"},
	}, s.handleBestSellerBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns the browsable sections",
		Tags:        []string{"Books"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "booksByCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{name}/books",
		Summary:     "Books in category",
		Description: "Returns books whose category exactly matches the section name",
		Tags:        []string{"Books"},
	}, s.handleBooksByCategory)
}

// === DTOs ===

// BookListResponse contains a list of books.
type BookListResponse struct {
	Books []domain.Book `json:"books" doc:"Books in catalog order"`
	Total int           `json:"total" doc:"Number of books returned"`
}

// BookListOutput wraps the book list for Huma.
type BookListOutput struct {
	Body BookListResponse
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body domain.Book
}

// CategoryListResponse contains the browsable sections.
type CategoryListResponse struct {
	Categories []domain.Category `json:"categories" doc:"Browsable sections"`
}

// CategoryListOutput wraps the category list for Huma.
type CategoryListOutput struct {
	Body CategoryListResponse
}

// GetBookInput carries the book id path parameter.
type GetBookInput struct {
	ID int `path:"id" doc:"Book ID"`
}

// SearchBooksInput carries the search query.
type SearchBooksInput struct {
	Query string `query:"q" doc:"Search query (minimum 3 characters for results)"`
}

// BooksByCategoryInput carries the category path parameter.
type BooksByCategoryInput struct {
	Name string `path:"name" doc:"Category name (exact, case-sensitive)"`
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, _ *struct{}) (*BookListOutput, error) {
	books := s.services.Catalog.ListBooks(ctx)
	return bookList(books), nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	book, err := s.services.Catalog.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*BookListOutput, error) {
	books := s.services.Catalog.Search(ctx, input.Query)
	return bookList(books), nil
}

func (s *Server) handleFeaturedBooks(ctx context.Context, _ *struct{}) (*BookListOutput, error) {
	return bookList(s.services.Catalog.Featured(ctx)), nil
}

func (s *Server) handleBestSellerBooks(ctx context.Context, _ *struct{}) (*BookListOutput, error) {
	return bookList(s.services.Catalog.BestSellers(ctx)), nil
}

func (s *Server) handleListCategories(ctx context.Context, _ *struct{}) (*CategoryListOutput, error) {
	return &CategoryListOutput{Body: CategoryListResponse{
		Categories: s.services.Catalog.Categories(ctx),
	}}, nil
}

func (s *Server) handleBooksByCategory(ctx context.Context, input *BooksByCategoryInput) (*BookListOutput, error) {
	return bookList(s.services.Catalog.BooksByCategory(ctx, input.Name)), nil
}

func bookList(books []domain.Book) *BookListOutput {
	if books == nil {
		books = []domain.Book{}
	}
	return &BookListOutput{Body: BookListResponse{
		Books: books,
		Total: len(books),
	}}
}
