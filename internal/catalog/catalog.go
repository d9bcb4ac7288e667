// Package catalog holds the in-memory book catalog and its query
// functions. The catalog ships with a launch inventory; admins can
// add and remove titles at runtime.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
)

const (
	// minQueryLength is the shortest search query that runs. Anything
	// shorter returns no results rather than scanning on every keystroke.
	minQueryLength = 3

	// featuredMinRating is the rating floor for the featured shelf.
	featuredMinRating = 4.5

	// featuredLimit caps the featured shelf.
	featuredLimit = 5

	// bestSellerLimit caps the best-sellers shelf.
	bestSellerLimit = 4
)

// Catalog is the storefront inventory. All query methods return copies
// so callers cannot mutate the shared book list.
type Catalog struct {
	mu         sync.RWMutex
	books      []domain.Book
	categories []domain.Category
	nextID     int
}

// New returns a catalog seeded with the launch inventory.
func New() *Catalog {
	books := make([]domain.Book, len(seedBooks))
	copy(books, seedBooks)

	categories := make([]domain.Category, len(seedCategories))
	copy(categories, seedCategories)

	nextID := 0
	for _, b := range books {
		if b.ID > nextID {
			nextID = b.ID
		}
	}

	return &Catalog{
		books:      books,
		categories: categories,
		nextID:     nextID + 1,
	}
}

// All returns every book in catalog order.
func (c *Catalog) All() []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyBooks(c.books)
}

// ByID returns the book with the given id.
func (c *Catalog) ByID(id int) (*domain.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, b := range c.books {
		if b.ID == id {
			book := b
			return &book, nil
		}
	}
	return nil, errors.NotFoundf("book %d", id)
}

// ByCategory returns books whose category matches exactly.
// The match is case sensitive; an unknown category yields an empty list.
func (c *Catalog) ByCategory(category string) []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Book
	for _, b := range c.books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Search matches the query case-insensitively against title, author and
// description. Queries shorter than three characters return no results.
func (c *Catalog) Search(query string) []domain.Book {
	// Measured in runes so multibyte queries are throttled the same way
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil
	}
	q := strings.ToLower(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Description), q) {
			out = append(out, b)
		}
	}
	return out
}

// Featured returns up to five books rated at least 4.5, in catalog order.
func (c *Catalog) Featured() []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Book
	for _, b := range c.books {
		if b.Rating >= featuredMinRating {
			out = append(out, b)
			if len(out) == featuredLimit {
				break
			}
		}
	}
	return out
}

// BestSellers returns up to four books sorted by rating, highest first.
// Books with equal ratings keep their catalog order.
func (c *Catalog) BestSellers() []domain.Book {
	c.mu.RLock()
	sorted := c.copyBooks(c.books)
	c.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if len(sorted) > bestSellerLimit {
		sorted = sorted[:bestSellerLimit]
	}
	return sorted
}

// Categories returns the browsable sections.
func (c *Catalog) Categories() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Add appends a new title and returns it with its assigned id.
// The category must already exist; admins manage sections separately.
func (c *Catalog) Add(book domain.Book) (*domain.Book, error) {
	if book.Title == "" {
		return nil, errors.Validation("title is required")
	}
	if book.Author == "" {
		return nil, errors.Validation("author is required")
	}
	if book.Price.IsNegative() {
		return nil, errors.Validation("price cannot be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasCategory(book.Category) {
		return nil, errors.Validationf("unknown category %q", book.Category)
	}

	book.ID = c.nextID
	c.nextID++
	c.books = append(c.books, book)

	added := book
	return &added, nil
}

// Remove deletes the book with the given id from the inventory.
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.books {
		if c.books[i].ID == id {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("book %d", id)
}

func (c *Catalog) hasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

func (c *Catalog) copyBooks(books []domain.Book) []domain.Book {
	out := make([]domain.Book, len(books))
	copy(out, books)
	return out
}
