package services

import (
	"errors"
	"strings"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/validate"
)

var ErrNameRequired = errors.New("product name required")

const placeholderImage = "/static/img/placeholder.jpg"

type CatalogService struct {
	Store catalog.Store
}

func NewCatalogService(store catalog.Store) *CatalogService { return &CatalogService{Store: store} }

func (s *CatalogService) List() ([]domain.Product, error) { return s.Store.Load() }

func (s *CatalogService) Get(id int) (domain.Product, error) { return s.Store.Get(id) }

// AddProduct coerces the admin form permissively: price defaults to 0 when it
// does not parse, the image falls back to the placeholder. Only the name is
// required.
func (s *CatalogService) AddProduct(name, priceRaw, image, description string) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, ErrNameRequired
	}
	image = strings.TrimSpace(image)
	if image == "" {
		image = placeholderImage
	}
	return s.Store.Append(domain.Product{
		Name:        name,
		Price:       validate.Price(priceRaw),
		Image:       image,
		Description: strings.TrimSpace(description),
	})
}

func (s *CatalogService) RemoveProduct(id int) error { return s.Store.Remove(id) }
