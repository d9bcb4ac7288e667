package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/catalog"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/config"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/logger"
	"github.com/YOHANEKUMWENDA/bookstore-application/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// ProvideCatalog provides the seeded in-memory book catalog.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	log := do.MustInvoke[*logger.Logger](i)

	cat := catalog.New()
	log.Info("Catalog loaded",
		"books", len(cat.All()),
		"categories", len(cat.Categories()),
	)

	return cat, nil
}
