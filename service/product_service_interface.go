package service

import (
	"context"

	"wce-catalog/models"
)

// FileUpload is a file received from a multipart form.
type FileUpload struct {
	Filename string
	Data     []byte
}

// ProductUpload carries everything needed to register a new product.
type ProductUpload struct {
	Code        string
	Name        string
	Description string
	Image       *FileUpload
	Manual      []byte
}

// ProductServiceInterface defines the contract for product administration.
// The returned warnings describe remote sync failures: the local write already
// succeeded, so they never abort the operation.
type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, upload ProductUpload) (*models.Product, []string, error)
	UpdateProduct(ctx context.Context, code, name, description string, image *FileUpload, manual []byte) (*models.Product, []string, error)
	RemoveProduct(ctx context.Context, code string) ([]string, error)
	GetProduct(code string) (*models.Product, error)
	ListProducts() ([]models.Product, error)
}
