package service

import (
	"context"
	"time"

	"catalog_service/internal/repository"
)

type Authorization interface {
	Authenticate(ctx context.Context, username, password string) (AuthResult, error)
	CheckSession(ctx context.Context, sessionID string) (bool, error)
}

// Admin exposes content creation: users and catalog items.
type Admin interface {
	CreateUser(ctx context.Context, username, password string) (int64, error)
	AddItem(ctx context.Context, item NewItem) (int64, error)
}

// Catalog exposes paginated, tag-filtered catalog reads.
type Catalog interface {
	List(ctx context.Context, q CatalogQuery) (CatalogPage, error)
}

// Options tunes service behaviour; zero values fall back to defaults.
type Options struct {
	DefaultLimit int
	MaxLimit     int
	SessionTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Admin
	Catalog
}

// NewService wires repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, repos.Sessions, opts.SessionTTL),
		Admin:         NewAdminService(repos.Auth, repos.Catalog),
		Catalog:       NewCatalogService(repos.Catalog, opts.DefaultLimit, opts.MaxLimit),
	}
}
