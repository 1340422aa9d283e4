package repository

import (
	"errors"

	"wce-catalog/models"
)

// ErrNotFound is returned when a product code or customer slug has no record.
var ErrNotFound = errors.New("record not found")

// ErrSlugConflict is returned when a catalog save would land on a slug already owned by
// a customer with a different display name.
var ErrSlugConflict = errors.New("slug already in use by another customer")

// ProductRepositoryInterface defines the contract for product database operations
type ProductRepositoryInterface interface {
	All() ([]models.Product, error)
	Find(code string) (*models.Product, error)
	Upsert(product models.Product) error
	Remove(code string) error
}

// CatalogRepositoryInterface defines the contract for customer catalog operations
type CatalogRepositoryInterface interface {
	Save(catalog models.CustomerCatalog) (string, error)
	Load(slug string) (*models.CustomerCatalog, error)
	// List returns one summary per readable catalog file plus the names of files that
	// failed to parse; malformed files never abort the listing.
	List() ([]models.CatalogSummary, []string, error)
	Delete(slug string) error
}
