package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// AdminService exposes the back-office operations behind the admin
// dashboard. Every method takes the acting user and rejects
// non-admins.
type AdminService struct {
	store   *store.Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(st *store.Store, cat *catalog.Catalog, logger *slog.Logger) *AdminService {
	return &AdminService{store: st, catalog: cat, logger: logger}
}

// DashboardStats summarizes the store for the admin dashboard.
type DashboardStats struct {
	TotalCustomers  int             `json:"total_customers"`
	ActiveCustomers int             `json:"active_customers"`
	TotalOrders     int             `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalBooks      int             `json:"total_books"`
}

// AddBookRequest contains the fields for a new catalog entry.
type AddBookRequest struct {
	Title           string          `json:"title" validate:"required"`
	Author          string          `json:"author" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	Rating          float64         `json:"rating" validate:"gte=0,lte=5"`
	Category        string          `json:"category" validate:"required"`
	Description     string          `json:"description,omitempty"`
	Pages           int             `json:"pages,omitempty"`
	Language        string          `json:"language,omitempty"`
	Publisher       string          `json:"publisher,omitempty"`
	PublicationYear int             `json:"publication_year,omitempty"`
	ISBN            string          `json:"isbn,omitempty"`
	CoverURL        string          `json:"cover_url,omitempty"`
}

func (s *AdminService) requireAdmin(actor *domain.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domainerrors.Forbidden("admin access required")
	}
	return nil
}

// AccountFilter narrows an account listing. Zero values mean no filter.
type AccountFilter struct {
	Role   domain.Role
	Active *bool
}

// ListAccounts returns the customer account records matching the
// filter. A storage failure surfaces as Unavailable so the dashboard
// can show an empty list with a retry hint instead of a hard error.
func (s *AdminService) ListAccounts(ctx context.Context, actor *domain.User, filter AccountFilter) ([]*domain.CustomerAccount, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		accounts []*domain.CustomerAccount
		err      error
	)
	if filter.Role != "" {
		accounts, err = s.store.ListAccountsByRole(ctx, filter.Role)
	} else {
		accounts, err = s.store.ListAccounts(ctx)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to list accounts", "role", filter.Role, "error", err)
		}
		return nil, domainerrors.Unavailable("accounts are temporarily unavailable")
	}

	if filter.Active == nil {
		return accounts, nil
	}
	filtered := accounts[:0]
	for _, account := range accounts {
		if account.IsActive == *filter.Active {
			filtered = append(filtered, account)
		}
	}
	return filtered, nil
}

// GetAccount returns a single customer account record.
func (s *AdminService) GetAccount(ctx context.Context, actor *domain.User, accountID string) (*domain.CustomerAccount, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	account, err := s.store.Accounts.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("account not found")
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// SetAccountActive toggles an account between active and deactivated.
// Deactivated accounts cannot sign in.
func (s *AdminService) SetAccountActive(ctx context.Context, actor *domain.User, accountID string, active bool) (*domain.CustomerAccount, error) {
	account, err := s.GetAccount(ctx, actor, accountID)
	if err != nil {
		return nil, err
	}

	account.IsActive = active
	account.Touch()
	if err := s.store.Accounts.Update(ctx, accountID, account); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Account active flag changed", "account_id", accountID, "active", active, "by", actor.ID)
	}
	return account, nil
}

// DeleteAccount soft-deletes a customer account and revokes its
// sessions. The underlying user record stays for order history.
func (s *AdminService) DeleteAccount(ctx context.Context, actor *domain.User, accountID string) error {
	account, err := s.GetAccount(ctx, actor, accountID)
	if err != nil {
		return err
	}
	if account.ID == actor.ID {
		return domainerrors.Validation("cannot delete your own account")
	}

	account.IsActive = false
	account.MarkDeleted()
	if err := s.store.Accounts.Update(ctx, accountID, account); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	if err := s.store.DeleteAllUserSessions(ctx, accountID); err != nil && s.logger != nil {
		s.logger.Warn("Failed to revoke sessions for deleted account", "account_id", accountID, "error", err)
	}

	if s.logger != nil {
		s.logger.Info("Account deleted", "account_id", accountID, "by", actor.ID)
	}
	return nil
}

// Stats builds the dashboard summary from the account aggregates.
func (s *AdminService) Stats(ctx context.Context, actor *domain.User) (*DashboardStats, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to list accounts for stats", "error", err)
		}
		return nil, domainerrors.Unavailable("stats are temporarily unavailable")
	}

	stats := &DashboardStats{
		TotalRevenue: decimal.Zero,
		TotalBooks:   len(s.catalog.All()),
	}
	for _, account := range accounts {
		if account.Role != domain.RoleCustomer {
			continue
		}
		stats.TotalCustomers++
		if account.IsActive {
			stats.ActiveCustomers++
		}
		stats.TotalOrders += account.TotalOrders
		stats.TotalRevenue = stats.TotalRevenue.Add(account.TotalSpent)
	}
	return stats, nil
}

// AddBook adds a new entry to the catalog.
func (s *AdminService) AddBook(ctx context.Context, actor *domain.User, req AddBookRequest) (*domain.Book, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	book, err := s.catalog.Add(domain.Book{
		Title:           req.Title,
		Author:          req.Author,
		Price:           req.Price,
		Rating:          req.Rating,
		Category:        req.Category,
		Description:     req.Description,
		Pages:           req.Pages,
		Language:        req.Language,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		ISBN:            req.ISBN,
		CoverURL:        req.CoverURL,
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Book added to catalog", "book_id", book.ID, "title", book.Title, "by", actor.ID)
	}
	return book, nil
}

// DeleteBook removes a title from the catalog.
func (s *AdminService) DeleteBook(ctx context.Context, actor *domain.User, bookID int) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	if err := s.catalog.Remove(bookID); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("Book removed from catalog", "book_id", bookID, "by", actor.ID)
	}
	return nil
}
