package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wce-catalog/models"
	"wce-catalog/service"
	"wce-catalog/utils"
)

// DraftController handles HTTP requests for catalog editing sessions
type DraftController struct {
	drafts service.DraftServiceInterface
}

// NewDraftController creates a new DraftController
func NewDraftController(drafts service.DraftServiceInterface) *DraftController {
	return &DraftController{drafts: drafts}
}

// Create handles POST /admin/drafts
func (c *DraftController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	draft, err := c.drafts.Create(req.CustomerName, req.SellerName, req.SellerContact)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// Get handles GET /admin/drafts/{id}
func (c *DraftController) Get(w http.ResponseWriter, r *http.Request, id string) {
	draft, err := c.drafts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// AddItem handles POST /admin/drafts/{id}/items
func (c *DraftController) AddItem(w http.ResponseWriter, r *http.Request, id string) {
	var req models.AddDraftItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	draft, err := c.drafts.AddItem(id, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// RemoveItem handles DELETE /admin/drafts/{id}/items/{index}
func (c *DraftController) RemoveItem(w http.ResponseWriter, r *http.Request, id, indexStr string) {
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid item index %q", indexStr), http.StatusBadRequest)
		return
	}

	draft, err := c.drafts.RemoveItem(id, index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Save handles POST /admin/drafts/{id}/save
func (c *DraftController) Save(w http.ResponseWriter, r *http.Request, id string) {
	slug, warnings, err := c.drafts.Save(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"slug":     slug,
		"warnings": warnings,
	})
}

// Discard handles DELETE /admin/drafts/{id}
func (c *DraftController) Discard(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.drafts.Discard(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "success"})
}

// Route dispatches /admin/drafts/{id}... paths to the matching handler.
func (c *DraftController) Route(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/drafts/")
	parts := strings.Split(path, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		id := parts[0]
		switch r.Method {
		case http.MethodGet:
			c.Get(w, r, id)
		case http.MethodDelete:
			c.Discard(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodPost:
		c.AddItem(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "save" && r.Method == http.MethodPost:
		c.Save(w, r, parts[0])
	case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodDelete:
		c.RemoveItem(w, r, parts[0], parts[2])
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}
