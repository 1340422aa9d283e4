package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"wce-catalog/models"
	"wce-catalog/repository"
	"wce-catalog/utils"
)

// CatalogService resolves stored customer catalogs against the product database and
// builds the order message handed to the messaging link.
// Implements CatalogServiceInterface
type CatalogService struct {
	catalogs repository.CatalogRepositoryInterface
	products repository.ProductRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogs repository.CatalogRepositoryInterface, products repository.ProductRepositoryInterface) *CatalogService {
	return &CatalogService{
		catalogs: catalogs,
		products: products,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// Resolve loads the catalog at slug and resolves each item by code against the product
// database. A code that is no longer in the database yields a warning and the item is
// skipped; the remaining items still render.
func (s *CatalogService) Resolve(slug string) (*models.ResolvedCatalog, error) {
	catalog, err := s.catalogs.Load(slug)
	if err != nil {
		return nil, err
	}

	resolved := &models.ResolvedCatalog{
		Slug:          slug,
		CustomerName:  catalog.CustomerName,
		SellerName:    catalog.SellerName,
		SellerContact: catalog.SellerContact,
		Items:         []models.Product{},
	}

	for _, item := range catalog.Items {
		product, err := s.products.Find(item.Code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("⚠️  Catalog %s references unknown product %s", slug, item.Code)
				resolved.Warnings = append(resolved.Warnings, fmt.Sprintf("product %s not found in database", item.Code))
				continue
			}
			return nil, err
		}
		resolved.Items = append(resolved.Items, *product)
	}

	log.Printf("✓ Resolved catalog %s: %d items, %d warnings", slug, len(resolved.Items), len(resolved.Warnings))
	return resolved, nil
}

// List returns the catalog summaries plus the names of files skipped as malformed.
func (s *CatalogService) List() ([]models.CatalogSummary, []string, error) {
	return s.catalogs.List()
}

// Delete removes a stored catalog.
func (s *CatalogService) Delete(slug string) error {
	return s.catalogs.Delete(slug)
}

// BuildOrder turns the customer's selections into the plain-text order summary and the
// WhatsApp link carrying it. Selections whose code does not resolve are skipped with a
// warning; an order with no resolvable selection is a validation error.
func (s *CatalogService) BuildOrder(slug string, selections []models.OrderSelection) (*models.OrderLink, error) {
	if len(selections) == 0 {
		return nil, fmt.Errorf("select at least one item: %w", ErrValidation)
	}

	resolved, err := s.Resolve(slug)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]models.Product, len(resolved.Items))
	for _, p := range resolved.Items {
		byCode[p.Code] = p
	}

	var lines []string
	var warnings []string
	for _, sel := range selections {
		if sel.Quantity < 1 {
			return nil, fmt.Errorf("quantity for %s must be at least 1: %w", sel.Code, ErrValidation)
		}
		product, ok := byCode[sel.Code]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("product %s is not available in this catalog", sel.Code))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (código %s) — Quantidade: %d", product.Name, product.Code, sel.Quantity))
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no selected item could be resolved: %w", ErrValidation)
	}

	message := fmt.Sprintf("Pedido de Reposição de Peças\nCliente: %s\n\nItens Selecionados:\n%s",
		resolved.CustomerName, strings.Join(lines, "\n"))

	log.Printf("✓ Order message built for %s (%d lines)", slug, len(lines))
	return &models.OrderLink{
		Message:  message,
		Link:     utils.WhatsAppLink(resolved.SellerContact, message),
		Warnings: warnings,
	}, nil
}
