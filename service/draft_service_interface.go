package service

import (
	"context"

	"wce-catalog/models"
)

// DraftServiceInterface defines the admin catalog editing session. A draft lives in
// memory, owned by its ID, and is only persisted on an explicit Save; Discard throws it
// away without touching disk.
type DraftServiceInterface interface {
	Create(customerName, sellerName, sellerContact string) (*models.CatalogDraft, error)
	Get(id string) (*models.CatalogDraft, error)
	// AddItem resolves code against the product database and appends the product to
	// the draft. An unknown code is a not-found error so the admin can register the
	// product first.
	AddItem(id, code string) (*models.CatalogDraft, error)
	// RemoveItem drops the item at index. An out-of-range index is a validation error.
	RemoveItem(id string, index int) (*models.CatalogDraft, error)
	// Save persists the draft as the customer's catalog, mirrors it to the remote
	// store, and discards the draft. Returns the slug and any sync warnings.
	Save(ctx context.Context, id string) (string, []string, error)
	Discard(id string) error
}
