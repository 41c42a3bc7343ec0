package repository

import (
	"context"
	"errors"

	"catalog_service/internal/models"
	"catalog_service/internal/repository/db"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int64, error)
	GetByCredentials(ctx context.Context, username, hash string) (*models.User, error)
}

type Catalog interface {
	Add(ctx context.Context, item models.NewCatalogItem) (int64, error)
	Page(ctx context.Context, f ItemFilter) (ItemPage, error)
}

// Sessions persists issued session tokens.
type Sessions interface {
	Save(ctx context.Context, s models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
}

// ItemFilter selects one page of catalog items. An empty Tag means no filter.
type ItemFilter struct {
	Tag    string
	Limit  int
	Offset int
}

// ItemPage is one page of items plus the figures computed alongside it.
type ItemPage struct {
	Items   []models.CatalogItem
	Total   int
	AllTags []string
}

type Repository struct {
	Auth     Authorization
	Catalog  Catalog
	Sessions Sessions
}

// NewRepository wires SQL repositories for the given dialect. sessions may be
// nil when tokens are not persisted.
func NewRepository(conn *sqlx.DB, dialect db.Dialect, sessions Sessions) *Repository {
	return &Repository{
		Auth:     NewUserRepository(conn),
		Catalog:  NewCatalogRepository(conn, dialect),
		Sessions: sessions,
	}
}
