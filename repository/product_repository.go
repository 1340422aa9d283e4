package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"wce-catalog/models"
)

// ProductRepository stores the global product list as a single JSON file
// (historically database/database.json). Every mutation rewrites the whole file; the
// system assumes a single admin operator at a time, so last writer wins by design of
// the data model, not by accident.
// Implements ProductRepositoryInterface
type ProductRepository struct {
	path string
}

// NewProductRepository creates a new ProductRepository backed by the given file path
func NewProductRepository(path string) *ProductRepository {
	return &ProductRepository{path: path}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// All returns every product in the database. A missing file is an empty database, not
// an error.
func (r *ProductRepository) All() ([]models.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("failed to read product database: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product database: %w", err)
	}
	return products, nil
}

// Find returns the product with the given code, or ErrNotFound.
func (r *ProductRepository) Find(code string) (*models.Product, error) {
	products, err := r.All()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].Code == code {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", code, ErrNotFound)
}

// Upsert inserts the product if its code is absent, otherwise replaces the existing
// entry, then rewrites the whole file.
func (r *ProductRepository) Upsert(product models.Product) error {
	products, err := r.All()
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].Code == product.Code {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	if err := r.write(products); err != nil {
		return err
	}

	if replaced {
		log.Printf("💾 Product %s updated in database (%d total)", product.Code, len(products))
	} else {
		log.Printf("💾 Product %s added to database (%d total)", product.Code, len(products))
	}
	return nil
}

// Remove deletes the product with the given code. Removing a code that was never
// inserted is a no-op.
func (r *ProductRepository) Remove(code string) error {
	products, err := r.All()
	if err != nil {
		return err
	}

	kept := products[:0]
	removed := false
	for _, p := range products {
		if p.Code == code {
			removed = true
			continue
		}
		kept = append(kept, p)
	}

	if !removed {
		log.Printf("⚠️  Product %s not in database, nothing to remove", code)
		return nil
	}

	if err := r.write(kept); err != nil {
		return err
	}

	log.Printf("🗑 Product %s removed from database (%d remaining)", code, len(kept))
	return nil
}

// write persists the full product list, creating the parent directory on first use.
// Matches the historical writer: 2-space indent.
func (r *ProductRepository) write(products []models.Product) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode product database: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write product database: %w", err)
	}
	return nil
}
