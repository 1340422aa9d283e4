package service

import "wce-catalog/models"

// CatalogServiceInterface defines the customer-facing catalog operations plus the admin
// listing. Resolve never fails because of a missing product: the entry is skipped and
// reported in the result's warnings.
type CatalogServiceInterface interface {
	Resolve(slug string) (*models.ResolvedCatalog, error)
	List() ([]models.CatalogSummary, []string, error)
	Delete(slug string) error
	BuildOrder(slug string, selections []models.OrderSelection) (*models.OrderLink, error)
}
