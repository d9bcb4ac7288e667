// Package main provides a tool to seed the database with demo accounts.
//
// It creates the admin user plus a handful of demo customers so the admin
// dashboard and account screens have something to show on a fresh install.
//
// Usage:
//
//	DB_PATH=~/bookstore/db go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/auth"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/id"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

type seedUser struct {
	name     string
	email    string
	password string
	phone    string
}

var seedUsers = []seedUser{
	{"Admin", "admin@gmail.com", "admin12345", ""},
	{"Amara Phiri", "amara.phiri@example.com", "password123", "+265990000001"},
	{"Daniel Banda", "daniel.banda@example.com", "password123", "+265990000002"},
	{"Grace Mwale", "grace.mwale@example.com", "password123", ""},
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/bookstore/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	created := 0
	for _, su := range seedUsers {
		ok, err := createUser(ctx, s, su)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", su.email, err)
		}
		if ok {
			fmt.Printf("  created %s (%s)\n", su.name, su.email)
			created++
		} else {
			fmt.Printf("  skipped %s, already exists\n", su.email)
		}
	}

	fmt.Printf("Done. %d of %d accounts created.\n", created, len(seedUsers))
}

// createUser inserts the user and its mirrored account record.
// Returns false when the email is already taken.
func createUser(ctx context.Context, s *store.Store, su seedUser) (bool, error) {
	if _, err := s.Users.GetByIndex(ctx, "email", su.email); err == nil {
		return false, nil
	}

	passwordHash, err := auth.HashPassword(su.password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.Generate("user")
	if err != nil {
		return false, fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		Record:       domain.Record{ID: userID},
		Email:        su.email,
		PasswordHash: passwordHash,
		Role:         domain.RoleForEmail(su.email),
		DisplayName:  su.name,
		PhoneNumber:  su.phone,
		LastLoginAt:  time.Now(),
	}
	user.InitTimestamps()

	if err := s.Users.Create(ctx, userID, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("create user: %w", err)
	}

	account := &domain.CustomerAccount{
		Record:      domain.Record{ID: userID},
		Name:        su.name,
		Email:       su.email,
		PhoneNumber: su.phone,
		IsActive:    true,
		TotalSpent:  decimal.Zero,
		Role:        user.Role,
	}
	account.InitTimestamps()

	if err := s.Accounts.Create(ctx, userID, account); err != nil {
		_ = s.Users.Delete(ctx, userID)
		return false, fmt.Errorf("create account record: %w", err)
	}

	return true, nil
}
