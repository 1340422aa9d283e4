package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"wce-catalog/models"
	"wce-catalog/repository"
)

const (
	imagesDir        = "images"
	pdfsDir          = "pdfs"
	databaseRepoPath = "database/database.json"
)

// ProductService handles product registration and editing: it normalizes and stores the
// uploaded assets, rewrites the product database, and mirrors every written file to the
// remote store on a best-effort basis.
// Implements ProductServiceInterface
type ProductService struct {
	products repository.ProductRepositoryInterface
	sync     SyncServiceInterface
	dataDir  string
}

// NewProductService creates a new ProductService rooted at dataDir
func NewProductService(products repository.ProductRepositoryInterface, sync SyncServiceInterface, dataDir string) *ProductService {
	return &ProductService{
		products: products,
		sync:     sync,
		dataDir:  dataDir,
	}
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// CreateProduct registers a new product. The image is required; the PDF manual is
// optional. A code that already exists is overwritten (last write wins, single admin).
func (s *ProductService) CreateProduct(ctx context.Context, upload ProductUpload) (*models.Product, []string, error) {
	if upload.Code == "" {
		return nil, nil, fmt.Errorf("product code is required: %w", ErrValidation)
	}
	if upload.Name == "" || upload.Description == "" {
		return nil, nil, fmt.Errorf("product name and description are required: %w", ErrValidation)
	}
	if upload.Image == nil {
		return nil, nil, fmt.Errorf("product image is required: %w", ErrValidation)
	}

	var warnings []string

	imageRef, syncWarnings, err := s.storeImage(ctx, upload.Code, upload.Image)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, syncWarnings...)

	product := models.Product{
		Code:        upload.Code,
		Name:        upload.Name,
		Description: upload.Description,
		ImageRef:    imageRef,
	}

	if upload.Manual != nil {
		manualRef, syncWarnings, err := s.storeManual(ctx, upload.Code, upload.Manual)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, syncWarnings...)
		product.ManualRef = manualRef
	}

	if err := s.products.Upsert(product); err != nil {
		return nil, nil, err
	}

	warnings = append(warnings, s.syncDatabase(ctx, fmt.Sprintf("Updating database.json after adding product %s", upload.Code))...)

	log.Printf("✅ Product %s registered", upload.Code)
	return &product, warnings, nil
}

// UpdateProduct edits an existing product. Name and description are replaced; a new
// image or manual replaces the stored asset, otherwise the previous references stay.
func (s *ProductService) UpdateProduct(ctx context.Context, code, name, description string, image *FileUpload, manual []byte) (*models.Product, []string, error) {
	product, err := s.products.Find(code)
	if err != nil {
		return nil, nil, err
	}
	if name == "" || description == "" {
		return nil, nil, fmt.Errorf("product name and description are required: %w", ErrValidation)
	}

	updated := *product
	updated.Name = name
	updated.Description = description

	var warnings []string

	if image != nil {
		imageRef, syncWarnings, err := s.storeImage(ctx, code, image)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, syncWarnings...)
		updated.ImageRef = imageRef
	}

	if manual != nil {
		manualRef, syncWarnings, err := s.storeManual(ctx, code, manual)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, syncWarnings...)
		if manualRef != nil {
			updated.ManualRef = manualRef
		}
	}

	if err := s.products.Upsert(updated); err != nil {
		return nil, nil, err
	}

	warnings = append(warnings, s.syncDatabase(ctx, fmt.Sprintf("Updating product %s in database.json", code))...)

	log.Printf("✅ Product %s updated", code)
	return &updated, warnings, nil
}

// RemoveProduct deletes a product from the database. Catalogs still referencing the
// code keep it; the reference resolves as not-found at render time.
func (s *ProductService) RemoveProduct(ctx context.Context, code string) ([]string, error) {
	if err := s.products.Remove(code); err != nil {
		return nil, err
	}
	return s.syncDatabase(ctx, fmt.Sprintf("Removing product %s from database.json", code)), nil
}

// GetProduct looks up a product by code.
func (s *ProductService) GetProduct(code string) (*models.Product, error) {
	return s.products.Find(code)
}

// ListProducts returns the full product database.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.products.All()
}

// storeImage normalizes the uploaded image, writes it under images/<code>.<ext>, and
// mirrors it to the remote store. The stored reference is the local relative path.
func (s *ProductService) storeImage(ctx context.Context, code string, image *FileUpload) (string, []string, error) {
	ext, data, err := NormalizeImage(image.Filename, image.Data)
	if err != nil {
		return "", nil, fmt.Errorf("invalid product image: %w (%v)", ErrValidation, err)
	}

	relPath := fmt.Sprintf("%s/%s.%s", imagesDir, code, ext)
	localPath := filepath.Join(s.dataDir, imagesDir, code+"."+ext)
	if err := writeAsset(localPath, data); err != nil {
		return "", nil, err
	}

	var warnings []string
	res := s.sync.SyncFile(ctx, localPath, relPath, fmt.Sprintf("Adding image for product %s", code))
	if !res.Synced {
		warnings = append(warnings, fmt.Sprintf("image saved locally; remote sync failed: %s", res.Detail))
	}
	return relPath, warnings, nil
}

// storeManual writes the PDF under pdfs/<code>.pdf and mirrors it. Unlike images, the
// manual reference is the public raw URL, pinned to the exact commit when one is known;
// when the sync fails there is no usable reference, so nil is returned and the caller
// keeps whatever reference it had.
func (s *ProductService) storeManual(ctx context.Context, code string, manual []byte) (*string, []string, error) {
	relPath := fmt.Sprintf("%s/%s.pdf", pdfsDir, code)
	localPath := filepath.Join(s.dataDir, pdfsDir, code+".pdf")
	if err := writeAsset(localPath, manual); err != nil {
		return nil, nil, err
	}

	res := s.sync.SyncFile(ctx, localPath, relPath, fmt.Sprintf("Adding manual for product %s", code))
	if !res.Synced {
		return nil, []string{fmt.Sprintf("manual saved locally; remote sync failed: %s", res.Detail)}, nil
	}
	return &res.RawURL, nil, nil
}

func (s *ProductService) syncDatabase(ctx context.Context, message string) []string {
	localPath := filepath.Join(s.dataDir, filepath.FromSlash(databaseRepoPath))
	res := s.sync.SyncFile(ctx, localPath, databaseRepoPath, message)
	if !res.Synced {
		return []string{fmt.Sprintf("database.json saved locally; remote sync failed: %s", res.Detail)}
	}
	return nil
}

func writeAsset(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create asset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write asset: %w", err)
	}
	return nil
}
