package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/errors"
)

func TestCatalogSeed(t *testing.T) {
	c := New()

	assert.Len(t, c.All(), 12)
	assert.Len(t, c.Categories(), 6)
}

func TestCatalogByID(t *testing.T) {
	c := New()

	t.Run("finds a seeded book", func(t *testing.T) {
		book, err := c.ByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Forest Spirit", book.Title)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := c.ByID(999)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("returned book is a copy", func(t *testing.T) {
		book, err := c.ByID(1)
		require.NoError(t, err)
		book.Title = "Mutated"

		again, err := c.ByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Forest Spirit", again.Title)
	})
}

func TestCatalogByCategory(t *testing.T) {
	c := New()

	t.Run("exact match", func(t *testing.T) {
		books := c.ByCategory("Fiction")
		require.Len(t, books, 3)
		for _, b := range books {
			assert.Equal(t, "Fiction", b.Category)
		}
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		assert.Empty(t, c.ByCategory("fiction"))
		assert.Empty(t, c.ByCategory("FICTION"))
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		assert.Empty(t, c.ByCategory("Poetry"))
	})
}

func TestCatalogSearch(t *testing.T) {
	c := New()

	t.Run("short queries return nothing", func(t *testing.T) {
		assert.Empty(t, c.Search(""))
		assert.Empty(t, c.Search("a"))
		assert.Empty(t, c.Search("ze"))
	})

	t.Run("title match is case insensitive", func(t *testing.T) {
		books := c.Search("forest")
		require.Len(t, books, 1)
		assert.Equal(t, "Forest Spirit", books[0].Title)
	})

	t.Run("matches author", func(t *testing.T) {
		books := c.Search("msiska")
		require.Len(t, books, 1)
		assert.Equal(t, "Where You Left Us", books[0].Title)
	})

	t.Run("matches description", func(t *testing.T) {
		books := c.Search("detective")
		require.Len(t, books, 1)
		assert.Equal(t, "Self Help", books[0].Title)
	})

	t.Run("substring can hit multiple books", func(t *testing.T) {
		// Both Zero One titles.
		books := c.Search("zero one")
		assert.Len(t, books, 2)
	})

	t.Run("no match is empty", func(t *testing.T) {
		assert.Empty(t, c.Search("xyzzy"))
	})

	t.Run("short queries are counted in runes", func(t *testing.T) {
		c := New()
		_, err := c.Add(domain.Book{
			Title:    "Über Nacht",
			Author:   "A. WRITER",
			Price:    decimal.RequireFromString("9.99"),
			Category: "Fiction",
		})
		require.NoError(t, err)

		// Two runes but three bytes, still too short to search
		assert.Empty(t, c.Search("Üb"))

		books := c.Search("Übe")
		require.Len(t, books, 1)
		assert.Equal(t, "Über Nacht", books[0].Title)
	})
}

func TestCatalogFeatured(t *testing.T) {
	c := New()
	books := c.Featured()

	// Eleven seeded books qualify, so the shelf is capped at five.
	require.Len(t, books, 5)
	for _, b := range books {
		assert.GreaterOrEqual(t, b.Rating, 4.5)
	}
	// Catalog order, so the first qualifying ids.
	assert.Equal(t, []int{1, 2, 3, 4, 6},
		[]int{books[0].ID, books[1].ID, books[2].ID, books[3].ID, books[4].ID})
}

func TestCatalogBestSellers(t *testing.T) {
	c := New()
	books := c.BestSellers()

	require.Len(t, books, 4)
	for i := 1; i < len(books); i++ {
		assert.GreaterOrEqual(t, books[i-1].Rating, books[i].Rating)
	}
	// 4.9 first, then the 4.8s in catalog order.
	assert.Equal(t, 6, books[0].ID)
	assert.Equal(t, []int{2, 8, 12}, []int{books[1].ID, books[2].ID, books[3].ID})
}

func TestCatalogAdd(t *testing.T) {
	newBook := func() domain.Book {
		return domain.Book{
			Title:    "New Arrival",
			Author:   "A. WRITER",
			Price:    decimal.RequireFromString("9.99"),
			Rating:   4.0,
			Category: "Fiction",
		}
	}

	t.Run("assigns the next id", func(t *testing.T) {
		c := New()
		added, err := c.Add(newBook())
		require.NoError(t, err)

		assert.Equal(t, 13, added.ID)
		assert.Len(t, c.All(), 13)

		got, err := c.ByID(13)
		require.NoError(t, err)
		assert.Equal(t, "New Arrival", got.Title)
	})

	t.Run("ids keep increasing", func(t *testing.T) {
		c := New()
		first, err := c.Add(newBook())
		require.NoError(t, err)
		second, err := c.Add(newBook())
		require.NoError(t, err)

		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		c := New()
		b := newBook()
		b.Title = ""
		_, err := c.Add(b)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("missing author rejected", func(t *testing.T) {
		c := New()
		b := newBook()
		b.Author = ""
		_, err := c.Add(b)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		c := New()
		b := newBook()
		b.Price = decimal.RequireFromString("-1")
		_, err := c.Add(b)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		c := New()
		b := newBook()
		b.Category = "Poetry"
		_, err := c.Add(b)
		assert.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestCatalogRemove(t *testing.T) {
	t.Run("removes the book", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Remove(2))

		_, err := c.ByID(2)
		assert.ErrorIs(t, err, errors.ErrNotFound)
		assert.Len(t, c.All(), 11)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		c := New()
		assert.ErrorIs(t, c.Remove(999), errors.ErrNotFound)
	})

	t.Run("removed ids are not reused", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Remove(12))

		added, err := c.Add(domain.Book{
			Title:    "New Arrival",
			Author:   "A. WRITER",
			Price:    decimal.RequireFromString("9.99"),
			Category: "Fiction",
		})
		require.NoError(t, err)
		assert.Equal(t, 13, added.ID)
	})
}
