package service

import (
	"context"
	"errors"

	"catalog_service/internal/models"
	"catalog_service/internal/repository"
)

type AdminService struct {
	authRepo    repository.Authorization
	catalogRepo repository.Catalog
}

func NewAdminService(authRepo repository.Authorization, catalogRepo repository.Catalog) *AdminService {
	return &AdminService{authRepo: authRepo, catalogRepo: catalogRepo}
}

// CreateUser stores a new credential row and returns its id.
func (s *AdminService) CreateUser(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ErrCredentialsRequired
	}
	id, err := s.authRepo.Create(ctx, username, hashPassword(password))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// AddItem validates the item and appends it after the current highest position.
// Only the first three images are kept.
func (s *AdminService) AddItem(ctx context.Context, item NewItem) (int64, error) {
	validated, err := validateNewItem(item)
	if err != nil {
		return 0, err
	}
	return s.catalogRepo.Add(ctx, validated)
}

func validateNewItem(item NewItem) (models.NewCatalogItem, error) {
	if item.Title == "" || item.Link == "" || len(item.Images) < models.ImagesPerItem {
		return models.NewCatalogItem{}, ErrItemInvalid
	}

	out := models.NewCatalogItem{
		Title:        item.Title,
		Tags:         item.Tags,
		ExternalLink: item.Link,
	}
	for i := range out.ImageURLs {
		if item.Images[i] == "" {
			return models.NewCatalogItem{}, ErrItemInvalid
		}
		out.ImageURLs[i] = item.Images[i]
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out, nil
}
