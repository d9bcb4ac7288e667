package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

func (s *Server) registerAdminRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "adminListAccounts",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/accounts",
		Summary:     "List customer accounts",
		Description: "Returns all customer account records, optionally filtered by role",
		Tags:        []string{"Admin"},
	}, s.handleAdminListAccounts)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminGetAccount",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/accounts/{id}",
		Summary:     "Get account",
		Description: "Returns a single customer account record",
		Tags:        []string{"Admin"},
	}, s.handleAdminGetAccount)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminSetAccountActive",
		Method:      http.MethodPut,
		Path:        "/api/v1/admin/accounts/{id}/active",
		Summary:     "Activate or deactivate account",
		Description: "Deactivated accounts cannot sign in",
		Tags:        []string{"Admin"},
	}, s.handleAdminSetAccountActive)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminDeleteAccount",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/accounts/{id}",
		Summary:     "Delete account",
		Description: "Soft-deletes an account and revokes its sessions",
		Tags:        []string{"Admin"},
	}, s.handleAdminDeleteAccount)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/stats",
		Summary:     "Dashboard stats",
		Description: "Returns customer, order and revenue totals",
		Tags:        []string{"Admin"},
	}, s.handleAdminStats)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminAddBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/books",
		Summary:     "Add book",
		Description: "Adds a new entry to the catalog",
		Tags:        []string{"Admin"},
	}, s.handleAdminAddBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "adminDeleteBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/books/{bookID}",
		Summary:     "Delete book",
		Description: "Removes a title from the catalog",
		Tags:        []string{"Admin"},
	}, s.handleAdminDeleteBook)
}

// === DTOs ===

// AccountListResponse contains customer account records.
type AccountListResponse struct {
	Accounts []*domain.CustomerAccount `json:"accounts" doc:"Customer account records"`
	Total    int                       `json:"total" doc:"Number of accounts returned"`
}

// AccountListOutput wraps the account list for Huma.
type AccountListOutput struct {
	Body AccountListResponse
}

// AccountListInput carries the optional role filter.
type AccountListInput struct {
	Role   string `query:"role" doc:"Filter by role (admin or customer)"`
	Active string `query:"active" doc:"Filter by active state (true or false)"`
}

// AccountInput carries the account id path parameter.
type AccountInput struct {
	ID string `path:"id" doc:"Account ID"`
}

// AccountOutput wraps a single account for Huma.
type AccountOutput struct {
	Body domain.CustomerAccount
}

// SetAccountActiveRequest is the request body for the active toggle.
type SetAccountActiveRequest struct {
	Active bool `json:"active" doc:"New active value"`
}

// SetAccountActiveInput wraps the toggle for Huma.
type SetAccountActiveInput struct {
	ID   string `path:"id" doc:"Account ID"`
	Body SetAccountActiveRequest
}

// StatsOutput wraps the dashboard stats for Huma.
type StatsOutput struct {
	Body service.DashboardStats
}

// AddBookRequest is the request body for a new catalog entry.
type AddBookRequest struct {
	Title           string  `json:"title" doc:"Book title"`
	Author          string  `json:"author" doc:"Author name"`
	Price           string  `json:"price" doc:"Price as a decimal string"`
	Rating          float64 `json:"rating,omitempty" doc:"Rating from 0 to 5"`
	Category        string  `json:"category" doc:"Category name"`
	Description     string  `json:"description,omitempty" doc:"Description"`
	Pages           int     `json:"pages,omitempty" doc:"Page count"`
	Language        string  `json:"language,omitempty" doc:"Language"`
	Publisher       string  `json:"publisher,omitempty" doc:"Publisher"`
	PublicationYear int     `json:"publication_year,omitempty" doc:"Publication year"`
	ISBN            string  `json:"isbn,omitempty" doc:"ISBN"`
	CoverURL        string  `json:"cover_url,omitempty" doc:"Cover image URL"`
}

// AddBookInput wraps the new book for Huma.
type AddBookInput struct {
	Body AddBookRequest
}

// DeleteBookInput carries the book id path parameter.
type DeleteBookInput struct {
	BookID int `path:"bookID" doc:"Book ID"`
}

// === Handlers ===

func (s *Server) handleAdminListAccounts(ctx context.Context, input *AccountListInput) (*AccountListOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	filter := service.AccountFilter{Role: domain.Role(input.Role)}
	switch input.Active {
	case "true":
		active := true
		filter.Active = &active
	case "false":
		active := false
		filter.Active = &active
	case "":
	default:
		return nil, huma.Error400BadRequest("active must be true or false")
	}

	accounts, err := s.services.Admin.ListAccounts(ctx, actor, filter)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*domain.CustomerAccount{}
	}

	return &AccountListOutput{Body: AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	}}, nil
}

func (s *Server) handleAdminGetAccount(ctx context.Context, input *AccountInput) (*AccountOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.services.Admin.GetAccount(ctx, actor, input.ID)
	if err != nil {
		return nil, err
	}

	return &AccountOutput{Body: *account}, nil
}

func (s *Server) handleAdminSetAccountActive(ctx context.Context, input *SetAccountActiveInput) (*AccountOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.services.Admin.SetAccountActive(ctx, actor, input.ID, input.Body.Active)
	if err != nil {
		return nil, err
	}

	return &AccountOutput{Body: *account}, nil
}

func (s *Server) handleAdminDeleteAccount(ctx context.Context, input *AccountInput) (*MessageOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Admin.DeleteAccount(ctx, actor, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Account deleted"}}, nil
}

func (s *Server) handleAdminStats(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.services.Admin.Stats(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &StatsOutput{Body: *stats}, nil
}

func (s *Server) handleAdminAddBook(ctx context.Context, input *AddBookInput) (*BookOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Body.Price)
	if err != nil {
		return nil, huma.Error400BadRequest("price must be a decimal string")
	}

	book, err := s.services.Admin.AddBook(ctx, actor, service.AddBookRequest{
		Title:           input.Body.Title,
		Author:          input.Body.Author,
		Price:           price,
		Rating:          input.Body.Rating,
		Category:        input.Body.Category,
		Description:     input.Body.Description,
		Pages:           input.Body.Pages,
		Language:        input.Body.Language,
		Publisher:       input.Body.Publisher,
		PublicationYear: input.Body.PublicationYear,
		ISBN:            input.Body.ISBN,
		CoverURL:        input.Body.CoverURL,
	})
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleAdminDeleteBook(ctx context.Context, input *DeleteBookInput) (*MessageOutput, error) {
	actor, err := s.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Admin.DeleteBook(ctx, actor, input.BookID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Book deleted"}}, nil
}
