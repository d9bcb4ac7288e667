package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/service"
)

func (s *Server) registerNavigationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getNavigationState",
		Method:      http.MethodGet,
		Path:        "/api/v1/navigation",
		Summary:     "Navigation state",
		Description: "Returns the caller's screen stack, current screen and busy flag",
		Tags:        []string{"Navigation"},
	}, s.handleGetNavigationState)

	huma.Register(s.api, huma.Operation{
		OperationID: "pushScreen",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/push",
		Summary:     "Push screen",
		Description: "Makes the screen the current destination. Rejected while navigation is busy.",
		Tags:        []string{"Navigation"},
	}, s.handlePushScreen)

	huma.Register(s.api, huma.Operation{
		OperationID: "popScreen",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/pop",
		Summary:     "Pop screen",
		Description: "Returns to the previous screen. Popping at the root is a no-op.",
		Tags:        []string{"Navigation"},
	}, s.handlePopScreen)

	huma.Register(s.api, huma.Operation{
		OperationID: "resetNavigation",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/reset",
		Summary:     "Reset navigation",
		Description: "Discards navigation history and lands on the given screen",
		Tags:        []string{"Navigation"},
	}, s.handleResetNavigation)

	huma.Register(s.api, huma.Operation{
		OperationID: "setNavigationBusy",
		Method:      http.MethodPut,
		Path:        "/api/v1/navigation/busy",
		Summary:     "Set busy flag",
		Description: "Marks navigation busy or idle. Navigation requests are rejected while busy.",
		Tags:        []string{"Navigation"},
	}, s.handleSetNavigationBusy)

	huma.Register(s.api, huma.Operation{
		OperationID: "initialScreen",
		Method:      http.MethodGet,
		Path:        "/api/v1/navigation/initial",
		Summary:     "Initial screen",
		Description: "Resolves where the caller lands: landing when signed out, admin dashboard for admins, home otherwise",
		Tags:        []string{"Navigation"},
	}, s.handleInitialScreen)
}

// === DTOs ===

// ScreenDTO identifies one navigation destination.
type ScreenDTO struct {
	Kind     string `json:"kind" doc:"Screen kind"`
	BookID   int    `json:"book_id,omitempty" doc:"Book payload (book_detail only)"`
	Category string `json:"category,omitempty" doc:"Category payload (category_books only)"`
}

// NavStateDTO is the caller-visible navigation state.
type NavStateDTO struct {
	Current domain.Screen   `json:"current" doc:"Current screen"`
	Depth   int             `json:"depth" doc:"Stack depth"`
	Stack   []domain.Screen `json:"stack" doc:"Full stack, root first"`
	Busy    bool            `json:"busy" doc:"Whether navigation is busy"`
}

// NavStateOutput wraps the navigation state for Huma.
type NavStateOutput struct {
	Body NavStateDTO
}

// ScreenInput wraps a screen request body for Huma.
type ScreenInput struct {
	Body ScreenDTO
}

// SetBusyRequest is the request body for the busy flag.
type SetBusyRequest struct {
	Busy bool `json:"busy" doc:"New busy value"`
}

// SetBusyInput wraps the busy request for Huma.
type SetBusyInput struct {
	Body SetBusyRequest
}

// InitialScreenResponse carries the resolved initial screen.
type InitialScreenResponse struct {
	Screen domain.Screen `json:"screen" doc:"Screen the client should land on"`
}

// InitialScreenOutput wraps the initial screen for Huma.
type InitialScreenOutput struct {
	Body InitialScreenResponse
}

// === Handlers ===

func (s *Server) handleGetNavigationState(ctx context.Context, _ *struct{}) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	return &NavStateOutput{Body: mapNavState(s.services.Navigator.State(ctx, userID))}, nil
}

func (s *Server) handlePushScreen(ctx context.Context, input *ScreenInput) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.services.Navigator.Push(ctx, userID, mapScreen(input.Body))
	if err != nil {
		return nil, err
	}

	return &NavStateOutput{Body: mapNavState(state)}, nil
}

func (s *Server) handlePopScreen(ctx context.Context, _ *struct{}) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.services.Navigator.Pop(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &NavStateOutput{Body: mapNavState(state)}, nil
}

func (s *Server) handleResetNavigation(ctx context.Context, input *ScreenInput) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.services.Navigator.ResetTo(ctx, userID, mapScreen(input.Body))
	if err != nil {
		return nil, err
	}

	return &NavStateOutput{Body: mapNavState(state)}, nil
}

func (s *Server) handleSetNavigationBusy(ctx context.Context, input *SetBusyInput) (*NavStateOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	state := s.services.Navigator.SetBusy(ctx, userID, input.Body.Busy)
	return &NavStateOutput{Body: mapNavState(state)}, nil
}

// handleInitialScreen works for anonymous callers too, so it does not
// go through GetUserID.
func (s *Server) handleInitialScreen(ctx context.Context, _ *struct{}) (*InitialScreenOutput, error) {
	var user *domain.User
	if userID, err := GetUserID(ctx); err == nil {
		if u, err := s.store.Users.Get(ctx, userID); err == nil {
			user = u
		}
	}

	return &InitialScreenOutput{Body: InitialScreenResponse{
		Screen: s.services.Navigator.ResolveInitialScreen(user),
	}}, nil
}

// === Helpers ===

func mapScreen(dto ScreenDTO) domain.Screen {
	return domain.Screen{
		Kind:     domain.ScreenKind(dto.Kind),
		BookID:   dto.BookID,
		Category: dto.Category,
	}
}

func mapNavState(state service.NavigationState) NavStateDTO {
	return NavStateDTO{
		Current: state.Current,
		Depth:   state.Depth,
		Stack:   state.Stack,
		Busy:    state.Busy,
	}
}
