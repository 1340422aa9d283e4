package models

// CreateDraftRequest opens a catalog editing session.
type CreateDraftRequest struct {
	CustomerName  string `json:"cliente" validate:"required"`
	SellerName    string `json:"vendedor" validate:"required"`
	SellerContact string `json:"contato" validate:"required"`
}

// AddDraftItemRequest appends a product to a draft by code.
type AddDraftItemRequest struct {
	Code string `json:"code" validate:"required"`
}

// OrderRequest is the customer's selection posted from the catalog page.
type OrderRequest struct {
	Slug  string           `json:"cliente" validate:"required"`
	Items []OrderSelection `json:"items" validate:"required,min=1,dive"`
}
