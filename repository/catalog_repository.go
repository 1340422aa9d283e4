package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"wce-catalog/models"
	"wce-catalog/utils"
)

// CatalogRepository stores one JSON file per customer catalog, named by the slug of the
// customer name (historically the clientes/ directory). A save fully overwrites the
// record at that slug; there are no merge semantics.
// Implements CatalogRepositoryInterface
type CatalogRepository struct {
	dir string
}

// NewCatalogRepository creates a new CatalogRepository backed by the given directory
func NewCatalogRepository(dir string) *CatalogRepository {
	return &CatalogRepository{dir: dir}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

func (r *CatalogRepository) pathFor(slug string) string {
	return filepath.Join(r.dir, slug+".json")
}

// Save writes the catalog to <dir>/<slug>.json, overwriting any previous version.
// A slug collision with a record holding a different display name is rejected with
// ErrSlugConflict; the caller must pick a distinguishable customer name.
func (r *CatalogRepository) Save(catalog models.CustomerCatalog) (string, error) {
	slug := utils.Slug(catalog.CustomerName)
	if slug == "" {
		return "", fmt.Errorf("customer name %q produces an empty slug", catalog.CustomerName)
	}

	existing, loadErr := r.Load(slug)
	switch {
	case loadErr == nil:
		if existing.CustomerName != catalog.CustomerName {
			log.Printf("⚠️  Slug %s already belongs to customer %q", slug, existing.CustomerName)
			return "", fmt.Errorf("slug %s is taken by %q: %w", slug, existing.CustomerName, ErrSlugConflict)
		}
	case !errors.Is(loadErr, ErrNotFound):
		// The record at this slug exists but cannot be read, so the conflict check
		// cannot run. The overwrite proceeds but leaves a trace.
		log.Printf("⚠️  Overwriting unreadable catalog at slug %s: %v", slug, loadErr)
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create catalog directory: %w", err)
	}

	// Matches the historical writer: 4-space indent.
	data, err := json.MarshalIndent(catalog, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(r.pathFor(slug), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}

	log.Printf("💾 Catalog saved for customer %q (slug: %s, %d items)", catalog.CustomerName, slug, len(catalog.Items))
	return slug, nil
}

// Load returns the catalog stored at the given slug, or ErrNotFound.
func (r *CatalogRepository) Load(slug string) (*models.CustomerCatalog, error) {
	data, err := os.ReadFile(r.pathFor(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", slug, err)
	}

	var catalog models.CustomerCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", slug, err)
	}
	return &catalog, nil
}

// List scans the catalog directory and returns one summary per readable record plus the
// file names that failed to parse. A malformed file is reported and skipped, never fatal.
func (r *CatalogRepository) List() ([]models.CatalogSummary, []string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CatalogSummary{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	// Non-nil so an all-malformed directory still serializes as an empty list,
	// like the missing-directory path above.
	summaries := []models.CatalogSummary{}
	var skipped []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".json")
		catalog, err := r.Load(slug)
		if err != nil {
			log.Printf("❌ Skipping unreadable catalog file %s: %v", entry.Name(), err)
			skipped = append(skipped, entry.Name())
			continue
		}

		summaries = append(summaries, models.CatalogSummary{
			Slug:         slug,
			CustomerName: catalog.CustomerName,
			SellerName:   catalog.SellerName,
			ItemCount:    len(catalog.Items),
		})
	}

	log.Printf("✓ Listed %d catalogs (%d skipped)", len(summaries), len(skipped))
	return summaries, skipped, nil
}

// Delete removes the catalog stored at the given slug, or returns ErrNotFound.
func (r *CatalogRepository) Delete(slug string) error {
	if err := os.Remove(r.pathFor(slug)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("catalog %s: %w", slug, ErrNotFound)
		}
		return fmt.Errorf("failed to delete catalog %s: %w", slug, err)
	}

	log.Printf("🗑 Catalog %s deleted", slug)
	return nil
}
