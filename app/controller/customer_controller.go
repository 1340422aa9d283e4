package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"wce-catalog/models"
	"wce-catalog/service"
	"wce-catalog/utils"
)

// CustomerController handles the customer-facing endpoints: viewing a catalog by slug
// and generating the order message.
type CustomerController struct {
	catalogs service.CatalogServiceInterface
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(catalogs service.CatalogServiceInterface) *CustomerController {
	return &CustomerController{catalogs: catalogs}
}

// GetCatalog handles GET /catalog?cliente={slug}
// Pure lookup, no side effects. Items are resolved against the product database; codes
// no longer in the database come back as warnings alongside the remaining items.
func (c *CustomerController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := utils.Slug(r.URL.Query().Get("cliente"))
	if slug == "" {
		http.Error(w, "cliente parameter is required", http.StatusBadRequest)
		return
	}

	resolved, err := c.catalogs.Resolve(slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// Order handles POST /catalog/order
// Builds the plain-text order summary and the WhatsApp link for the seller contact.
func (c *CustomerController) Order(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	order, err := c.catalogs.BuildOrder(utils.Slug(req.Slug), req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
