package domain

import "fmt"

// ScreenKind identifies one of the app's screens.
type ScreenKind string

const (
	ScreenLanding         ScreenKind = "landing"
	ScreenLogin           ScreenKind = "login"
	ScreenSignup          ScreenKind = "signup"
	ScreenHome            ScreenKind = "home"
	ScreenAdminDashboard  ScreenKind = "admin_dashboard"
	ScreenBookDetail      ScreenKind = "book_detail"
	ScreenCategoryBooks   ScreenKind = "category_books"
	ScreenCart            ScreenKind = "cart"
	ScreenProfile         ScreenKind = "profile"
	ScreenEditProfile     ScreenKind = "edit_profile"
	ScreenHelpSupport     ScreenKind = "help_support"
	ScreenAbout           ScreenKind = "about"
	ScreenPrivacyPolicy   ScreenKind = "privacy_policy"
	ScreenTermsConditions ScreenKind = "terms_conditions"
	ScreenPaymentMethods  ScreenKind = "payment_methods"
	ScreenSearch          ScreenKind = "search"
	ScreenFavorites       ScreenKind = "favorites"
)

// screenKinds is the set of valid kinds. BookDetail and CategoryBooks
// carry a payload; everything else is a plain destination.
var screenKinds = map[ScreenKind]bool{
	ScreenLanding:         true,
	ScreenLogin:           true,
	ScreenSignup:          true,
	ScreenHome:            true,
	ScreenAdminDashboard:  true,
	ScreenBookDetail:      true,
	ScreenCategoryBooks:   true,
	ScreenCart:            true,
	ScreenProfile:         true,
	ScreenEditProfile:     true,
	ScreenHelpSupport:     true,
	ScreenAbout:           true,
	ScreenPrivacyPolicy:   true,
	ScreenTermsConditions: true,
	ScreenPaymentMethods:  true,
	ScreenSearch:          true,
	ScreenFavorites:       true,
}

// Screen is one navigation destination. Two screens are the same
// destination when they compare equal, payload included.
type Screen struct {
	Kind ScreenKind `json:"kind"`
	// BookID is set only for book_detail screens.
	BookID int `json:"book_id,omitempty"`
	// Category is set only for category_books screens.
	Category string `json:"category,omitempty"`
}

// NewScreen builds a payload-free screen.
func NewScreen(kind ScreenKind) Screen {
	return Screen{Kind: kind}
}

// BookDetailScreen builds the detail screen for a book.
func BookDetailScreen(bookID int) Screen {
	return Screen{Kind: ScreenBookDetail, BookID: bookID}
}

// CategoryBooksScreen builds the category listing screen.
func CategoryBooksScreen(category string) Screen {
	return Screen{Kind: ScreenCategoryBooks, Category: category}
}

// Validate checks the kind is known and the payload matches it.
func (s Screen) Validate() error {
	if !screenKinds[s.Kind] {
		return fmt.Errorf("unknown screen kind %q", s.Kind)
	}
	switch s.Kind {
	case ScreenBookDetail:
		if s.BookID <= 0 {
			return fmt.Errorf("book_detail screen requires a book id")
		}
	case ScreenCategoryBooks:
		if s.Category == "" {
			return fmt.Errorf("category_books screen requires a category")
		}
	default:
		if s.BookID != 0 || s.Category != "" {
			return fmt.Errorf("%s screen carries no payload", s.Kind)
		}
	}
	return nil
}

// NavigationStack is the per-session screen stack. It always holds at
// least one screen; Pop at the root is a no-op.
//
// NavigationStack is not safe for concurrent use; callers serialize access.
type NavigationStack struct {
	screens []Screen
}

// NewNavigationStack returns a stack holding only the given root.
func NewNavigationStack(root Screen) *NavigationStack {
	return &NavigationStack{screens: []Screen{root}}
}

// Push makes the screen the new current destination.
func (n *NavigationStack) Push(s Screen) {
	n.screens = append(n.screens, s)
}

// Pop removes the current screen and returns true. At the root it
// leaves the stack unchanged and returns false.
func (n *NavigationStack) Pop() bool {
	if len(n.screens) <= 1 {
		return false
	}
	n.screens = n.screens[:len(n.screens)-1]
	return true
}

// ResetTo discards the whole history and makes the screen the sole entry.
func (n *NavigationStack) ResetTo(s Screen) {
	n.screens = []Screen{s}
}

// Current returns the top of the stack.
func (n *NavigationStack) Current() Screen {
	return n.screens[len(n.screens)-1]
}

// Depth returns the number of screens on the stack.
func (n *NavigationStack) Depth() int {
	return len(n.screens)
}

// Screens returns a copy of the stack, root first.
func (n *NavigationStack) Screens() []Screen {
	out := make([]Screen, len(n.screens))
	copy(out, n.screens)
	return out
}
