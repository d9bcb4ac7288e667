package api

import (
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth      *service.AuthService
	Session   *service.SessionService
	Catalog   *service.CatalogService
	Cart      *service.CartService
	Navigator *service.NavigatorService
	Profile   *service.ProfileService
	Admin     *service.AdminService
}
