package store

import (
	"context"
	"fmt"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

// ListAccounts returns all non-deleted customer accounts.
func (s *Store) ListAccounts(ctx context.Context) ([]*domain.CustomerAccount, error) {
	var accounts []*domain.CustomerAccount

	for account, err := range s.Accounts.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		if account.IsDeleted() {
			continue
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

// ListAccountsByRole returns all non-deleted accounts with the given role.
func (s *Store) ListAccountsByRole(ctx context.Context, role domain.Role) ([]*domain.CustomerAccount, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := accounts[:0]
	for _, account := range accounts {
		if account.Role == role {
			filtered = append(filtered, account)
		}
	}

	return filtered, nil
}
