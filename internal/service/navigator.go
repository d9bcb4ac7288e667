package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	domainerrors "github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
)

// NavigatorService tracks one screen stack per signed-in user, mirroring
// what the mobile client shows. The stack is never empty; signed-out
// users sit on the landing screen.
type NavigatorService struct {
	mu     sync.Mutex
	navs   map[string]*navigatorState
	cat    *catalog.Catalog
	carts  *CartService
	auth   *AuthService
	logger *slog.Logger
}

type navigatorState struct {
	stack *domain.NavigationStack
	// busy blocks navigation while a blocking operation is in flight,
	// the way the client disables its UI during checkout.
	busy bool
}

// NewNavigatorService creates a new navigation service.
func NewNavigatorService(cat *catalog.Catalog, carts *CartService, authSvc *AuthService, logger *slog.Logger) *NavigatorService {
	return &NavigatorService{
		navs:   make(map[string]*navigatorState),
		cat:    cat,
		carts:  carts,
		auth:   authSvc,
		logger: logger,
	}
}

// NavigationState is a snapshot of a user's screen stack.
type NavigationState struct {
	Current domain.Screen   `json:"current"`
	Depth   int             `json:"depth"`
	Stack   []domain.Screen `json:"stack"`
	Busy    bool            `json:"busy"`
}

// state returns the user's navigator, creating one rooted at the
// landing screen on first use. Caller must hold mu.
func (s *NavigatorService) state(userID string) *navigatorState {
	st, ok := s.navs[userID]
	if !ok {
		st = &navigatorState{
			stack: domain.NewNavigationStack(domain.NewScreen(domain.ScreenLanding)),
		}
		s.navs[userID] = st
	}
	return st
}

func (s *NavigatorService) snapshot(st *navigatorState) NavigationState {
	return NavigationState{
		Current: st.stack.Current(),
		Depth:   st.stack.Depth(),
		Stack:   st.stack.Screens(),
		Busy:    st.busy,
	}
}

// State returns the user's current navigation state.
func (s *NavigatorService) State(_ context.Context, userID string) NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(s.state(userID))
}

// Push makes the screen the user's current destination.
// Screens with payloads are checked against the catalog first.
func (s *NavigatorService) Push(_ context.Context, userID string, screen domain.Screen) (NavigationState, error) {
	if err := screen.Validate(); err != nil {
		return NavigationState{}, domainerrors.Validation(err.Error())
	}
	if screen.Kind == domain.ScreenBookDetail {
		if _, err := s.cat.ByID(screen.BookID); err != nil {
			return NavigationState{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if st.busy {
		return NavigationState{}, domainerrors.Conflict("navigation is busy")
	}

	st.stack.Push(screen)
	return s.snapshot(st), nil
}

// Pop returns to the previous screen. Popping at the root is a no-op.
func (s *NavigatorService) Pop(_ context.Context, userID string) (NavigationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if st.busy {
		return NavigationState{}, domainerrors.Conflict("navigation is busy")
	}

	st.stack.Pop()
	return s.snapshot(st), nil
}

// ResetTo discards the user's navigation history and lands on the screen.
func (s *NavigatorService) ResetTo(_ context.Context, userID string, screen domain.Screen) (NavigationState, error) {
	if err := screen.Validate(); err != nil {
		return NavigationState{}, domainerrors.Validation(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if st.busy {
		return NavigationState{}, domainerrors.Conflict("navigation is busy")
	}

	st.stack.ResetTo(screen)
	return s.snapshot(st), nil
}

// SetBusy flips the user's busy flag. While busy, navigation requests
// are rejected with a conflict.
func (s *NavigatorService) SetBusy(_ context.Context, userID string, busy bool) NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	st.busy = busy
	return s.snapshot(st)
}

// ResolveInitialScreen decides where a user lands. Signed-out users see
// the landing screen, admins their dashboard, everyone else home.
func (s *NavigatorService) ResolveInitialScreen(user *domain.User) domain.Screen {
	switch {
	case user == nil:
		return domain.NewScreen(domain.ScreenLanding)
	case user.IsAdmin():
		return domain.NewScreen(domain.ScreenAdminDashboard)
	default:
		return domain.NewScreen(domain.ScreenHome)
	}
}

// OnAuthSuccess resets the user's stack to their role's initial screen.
// Called after sign-in and sign-up.
func (s *NavigatorService) OnAuthSuccess(_ context.Context, user *domain.User) NavigationState {
	initial := s.ResolveInitialScreen(user)

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(user.ID)
	st.stack.ResetTo(initial)
	st.busy = false
	return s.snapshot(st)
}

// Logout revokes the session and resets the user's local state. The
// local reset happens even when revocation fails, so the client always
// lands back on the login screen; the remote failure is still
// reported to the caller.
func (s *NavigatorService) Logout(ctx context.Context, userID, sessionID string) (NavigationState, error) {
	signOutErr := s.auth.SignOut(ctx, sessionID)

	s.carts.Drop(userID)

	s.mu.Lock()
	st := s.state(userID)
	st.stack.ResetTo(domain.NewScreen(domain.ScreenLogin))
	st.busy = false
	snap := s.snapshot(st)
	s.mu.Unlock()

	if signOutErr != nil {
		if s.logger != nil {
			s.logger.Warn("Remote sign-out failed, local state reset anyway",
				"user_id", userID,
				"error", signOutErr,
			)
		}
		return snap, fmt.Errorf("sign out: %w", signOutErr)
	}

	if s.logger != nil {
		s.logger.Info("User logged out", "user_id", userID)
	}

	return snap, nil
}
