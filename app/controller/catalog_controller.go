package controller

import (
	"net/http"
	"strings"

	"wce-catalog/repository"
	"wce-catalog/service"
)

// CatalogController handles the admin-side catalog endpoints
type CatalogController struct {
	catalogs service.CatalogServiceInterface
	store    repository.CatalogRepositoryInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogs service.CatalogServiceInterface, store repository.CatalogRepositoryInterface) *CatalogController {
	return &CatalogController{
		catalogs: catalogs,
		store:    store,
	}
}

// List handles GET /admin/catalogs
// Returns one summary per stored catalog plus the names of files skipped as malformed.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, skipped, err := c.catalogs.List()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"catalogs": summaries,
		"skipped":  skipped,
	})
}

// GetBySlug handles GET /admin/catalogs/{slug}
// Returns the stored record as-is (item refs unresolved) for editing.
func (c *CatalogController) GetBySlug(w http.ResponseWriter, r *http.Request, slug string) {
	catalog, err := c.store.Load(slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Delete handles DELETE /admin/catalogs/{slug}
func (c *CatalogController) Delete(w http.ResponseWriter, r *http.Request, slug string) {
	if err := c.catalogs.Delete(slug); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "success", "slug": slug})
}

// Route dispatches /admin/catalogs/{slug} by method.
func (c *CatalogController) Route(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/admin/catalogs/")
	if slug == "" {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.GetBySlug(w, r, slug)
	case http.MethodDelete:
		c.Delete(w, r, slug)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
