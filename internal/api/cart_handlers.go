package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

func (s *Server) registerCartRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCart",
		Method:      http.MethodGet,
		Path:        "/api/v1/cart",
		Summary:     "Get cart",
		Description: "Returns the caller's cart with derived item count and total",
		Tags:        []string{"Cart"},
	}, s.handleGetCart)

	huma.Register(s.api, huma.Operation{
		OperationID: "addCartItem",
		Method:      http.MethodPost,
		Path:        "/api/v1/cart/items",
		Summary:     "Add item",
		Description: "Adds a book to the cart. Adding a book already in the cart increases its quantity.",
		Tags:        []string{"Cart"},
	}, s.handleAddCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "setCartItemQuantity",
		Method:      http.MethodPut,
		Path:        "/api/v1/cart/items/{bookID}",
		Summary:     "Set item quantity",
		Description: "Sets the quantity of a cart line. A quantity of zero or less removes the line.",
		Tags:        []string{"Cart"},
	}, s.handleSetCartItemQuantity)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeCartItem",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cart/items/{bookID}",
		Summary:     "Remove item",
		Description: "Removes the whole line for a book regardless of quantity",
		Tags:        []string{"Cart"},
	}, s.handleRemoveCartItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearCart",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cart",
		Summary:     "Clear cart",
		Description: "Removes every line from the cart",
		Tags:        []string{"Cart"},
	}, s.handleClearCart)

	huma.Register(s.api, huma.Operation{
		OperationID: "cartSummary",
		Method:      http.MethodGet,
		Path:        "/api/v1/cart/summary",
		Summary:     "Order summary",
		Description: "Returns subtotal, tax and grand total for the cart",
		Tags:        []string{"Cart"},
	}, s.handleCartSummary)

	huma.Register(s.api, huma.Operation{
		OperationID: "checkout",
		Method:      http.MethodPost,
		Path:        "/api/v1/cart/checkout",
		Summary:     "Checkout",
		Description: "Turns the cart into a persisted order and removes the purchased lines",
		Tags:        []string{"Cart"},
	}, s.handleCheckout)

	huma.Register(s.api, huma.Operation{
		OperationID: "listOrders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "Order history",
		Description: "Returns the caller's past orders",
		Tags:        []string{"Cart"},
	}, s.handleListOrders)
}

// === DTOs ===

// CartOutput wraps the cart for Huma.
type CartOutput struct {
	Body domain.Cart
}

// AddCartItemRequest is the request body for adding a book to the cart.
// An omitted quantity means one; an explicit quantity below one is not
// applied to the cart.
type AddCartItemRequest struct {
	BookID   int  `json:"book_id" doc:"Book to add"`
	Quantity *int `json:"quantity,omitempty" doc:"Quantity to add (defaults to 1)"`
}

// AddCartItemInput wraps the add-item request for Huma.
type AddCartItemInput struct {
	Body AddCartItemRequest
}

// CartItemInput carries the book id path parameter.
type CartItemInput struct {
	BookID int `path:"bookID" doc:"Book ID"`
}

// SetQuantityRequest is the request body for a quantity change.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" doc:"New quantity (zero or less removes the line)"`
}

// SetQuantityInput wraps the quantity change for Huma.
type SetQuantityInput struct {
	BookID int `path:"bookID" doc:"Book ID"`
	Body   SetQuantityRequest
}

// SummaryOutput wraps the order summary for Huma.
type SummaryOutput struct {
	Body domain.OrderSummary
}

// OrderOutput wraps a persisted order for Huma.
type OrderOutput struct {
	Body domain.Order
}

// OrderListResponse contains the caller's order history.
type OrderListResponse struct {
	Orders []*domain.Order `json:"orders" doc:"Past orders"`
	Total  int             `json:"total" doc:"Number of orders returned"`
}

// OrderListOutput wraps the order history for Huma.
type OrderListOutput struct {
	Body OrderListResponse
}

// === Handlers ===

func (s *Server) handleGetCart(ctx context.Context, _ *struct{}) (*CartOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	return &CartOutput{Body: *s.services.Cart.Get(ctx, userID)}, nil
}

func (s *Server) handleAddCartItem(ctx context.Context, input *AddCartItemInput) (*CartOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if input.Body.Quantity != nil {
		quantity = *input.Body.Quantity
	}

	cart, err := s.services.Cart.AddItem(ctx, userID, input.Body.BookID, quantity)
	if err != nil {
		return nil, err
	}

	return &CartOutput{Body: *cart}, nil
}

func (s *Server) handleSetCartItemQuantity(ctx context.Context, input *SetQuantityInput) (*CartOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	cart := s.services.Cart.SetQuantity(ctx, userID, input.BookID, input.Body.Quantity)
	return &CartOutput{Body: *cart}, nil
}

func (s *Server) handleRemoveCartItem(ctx context.Context, input *CartItemInput) (*CartOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	cart := s.services.Cart.RemoveItem(ctx, userID, input.BookID)
	return &CartOutput{Body: *cart}, nil
}

func (s *Server) handleClearCart(ctx context.Context, _ *struct{}) (*CartOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	s.services.Cart.Clear(ctx, userID)
	return &CartOutput{Body: *s.services.Cart.Get(ctx, userID)}, nil
}

func (s *Server) handleCartSummary(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{Body: s.services.Cart.Summary(ctx, userID)}, nil
}

func (s *Server) handleCheckout(ctx context.Context, _ *struct{}) (*OrderOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.services.Cart.Checkout(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &OrderOutput{Body: *order}, nil
}

func (s *Server) handleListOrders(ctx context.Context, _ *struct{}) (*OrderListOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.services.Cart.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	return &OrderListOutput{Body: OrderListResponse{
		Orders: orders,
		Total:  len(orders),
	}}, nil
}
