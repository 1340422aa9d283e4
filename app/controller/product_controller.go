package controller

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"wce-catalog/service"
)

const maxUploadBytes = 32 << 20

// ProductController handles HTTP requests for product administration
type ProductController struct {
	products service.ProductServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(products service.ProductServiceInterface) *ProductController {
	return &ProductController{products: products}
}

// readFormFile reads an optional multipart file field; a missing field returns nil.
func readFormFile(r *http.Request, field string) (*service.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	return &service.FileUpload{Filename: header.Filename, Data: data}, nil
}

// Create handles POST /admin/products
// Multipart form: code, name, description, image (file), manual (optional PDF file).
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	image, err := readFormFile(r, "image")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var manual []byte
	if pdf, err := readFormFile(r, "manual"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if pdf != nil {
		manual = pdf.Data
	}

	upload := service.ProductUpload{
		Code:        r.FormValue("code"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Image:       image,
		Manual:      manual,
	}

	product, warnings, err := c.products.CreateProduct(r.Context(), upload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"product":  product,
		"warnings": warnings,
	})
}

// List handles GET /admin/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := c.products.ListProducts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByCode handles GET /admin/products/{code}
func (c *ProductController) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	product, err := c.products.GetProduct(code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /admin/products/{code}
// Multipart form: name, description, optional image file, optional manual file.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	image, err := readFormFile(r, "image")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var manual []byte
	if pdf, err := readFormFile(r, "manual"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if pdf != nil {
		manual = pdf.Data
	}

	product, warnings, err := c.products.UpdateProduct(r.Context(), code, r.FormValue("name"), r.FormValue("description"), image, manual)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product":  product,
		"warnings": warnings,
	})
}

// Delete handles DELETE /admin/products/{code}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	warnings, err := c.products.RemoveProduct(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"code":     code,
		"warnings": warnings,
	})
}
