package models

import (
	"encoding/json"
	"fmt"
)

// ItemRef is a single entry in a customer catalog. Historical catalog files store items
// either as a bare product code string or as an embedded product object; both forms are
// normalized here at parse time. Resolution against the product database is always done
// by code, the embedded copy is only kept so the file round-trips unchanged.
type ItemRef struct {
	Code     string
	Embedded *Product
}

// UnmarshalJSON accepts either "P100" or {"codigo": "P100", ...}.
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		r.Code = code
		r.Embedded = nil
		return nil
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return fmt.Errorf("catalog item is neither a code string nor a product object: %w", err)
	}
	if product.Code == "" {
		return fmt.Errorf("catalog item object has no 'codigo' field")
	}

	r.Code = product.Code
	r.Embedded = &product
	return nil
}

// MarshalJSON writes the item back in the same shape it was read.
func (r ItemRef) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	return json.Marshal(r.Code)
}

// CustomerCatalog is the per-customer selection of parts.
// JSON keys match the historical clientes/<slug>.json format.
type CustomerCatalog struct {
	CustomerName  string    `json:"cliente"`
	SellerName    string    `json:"vendedor"`
	SellerContact string    `json:"contato"`
	Items         []ItemRef `json:"pecas"`
}

// CatalogSummary is one row in the admin catalog listing.
type CatalogSummary struct {
	Slug         string `json:"slug"`
	CustomerName string `json:"cliente"`
	SellerName   string `json:"vendedor"`
	ItemCount    int    `json:"qtdPecas"`
}

// ResolvedCatalog is a customer catalog with every item resolved against the product
// database. Items whose code is no longer in the database are skipped and reported in
// Warnings instead of aborting the render.
type ResolvedCatalog struct {
	Slug          string    `json:"slug"`
	CustomerName  string    `json:"cliente"`
	SellerName    string    `json:"vendedor"`
	SellerContact string    `json:"contato"`
	Items         []Product `json:"pecas"`
	Warnings      []string  `json:"warnings,omitempty"`
}

// CatalogDraft is an in-progress catalog owned by an admin editing session.
// It only becomes a CustomerCatalog on an explicit save.
type CatalogDraft struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"cliente"`
	SellerName    string    `json:"vendedor"`
	SellerContact string    `json:"contato"`
	Items         []ItemRef `json:"pecas"`
}
