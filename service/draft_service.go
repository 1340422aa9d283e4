package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"wce-catalog/models"
	"wce-catalog/repository"
)

const customersDir = "customers"

// DraftService owns the in-memory catalog editing sessions. Drafts are keyed by a
// generated ID and passed back to the admin on every request; nothing is written to
// disk until Save. The mutex only guards the map itself, the single-admin assumption
// still holds for the data.
// Implements DraftServiceInterface
type DraftService struct {
	mu       sync.Mutex
	drafts   map[string]*models.CatalogDraft
	products repository.ProductRepositoryInterface
	catalogs repository.CatalogRepositoryInterface
	sync     SyncServiceInterface
	dataDir  string
}

// NewDraftService creates a new DraftService
func NewDraftService(products repository.ProductRepositoryInterface, catalogs repository.CatalogRepositoryInterface, syncService SyncServiceInterface, dataDir string) *DraftService {
	return &DraftService{
		drafts:   make(map[string]*models.CatalogDraft),
		products: products,
		catalogs: catalogs,
		sync:     syncService,
		dataDir:  dataDir,
	}
}

// Ensure DraftService implements DraftServiceInterface
var _ DraftServiceInterface = (*DraftService)(nil)

// Create opens a new editing session for the given customer/seller pair.
func (s *DraftService) Create(customerName, sellerName, sellerContact string) (*models.CatalogDraft, error) {
	if customerName == "" || sellerName == "" || sellerContact == "" {
		return nil, fmt.Errorf("customer name, seller name and seller contact are required: %w", ErrValidation)
	}

	draft := &models.CatalogDraft{
		ID:            uuid.NewString(),
		CustomerName:  customerName,
		SellerName:    sellerName,
		SellerContact: sellerContact,
		Items:         []models.ItemRef{},
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()

	log.Printf("📝 Draft %s opened for customer %q", draft.ID, customerName)
	return draft, nil
}

// Get returns the draft with the given ID, or ErrNotFound.
func (s *DraftService) Get(id string) (*models.CatalogDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, repository.ErrNotFound)
	}
	return draft, nil
}

// AddItem resolves the code and appends the product to the draft. Duplicate codes are
// allowed; the item list keeps insertion order.
func (s *DraftService) AddItem(id, code string) (*models.CatalogDraft, error) {
	product, err := s.products.Find(code)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, repository.ErrNotFound)
	}

	draft.Items = append(draft.Items, models.ItemRef{Code: product.Code, Embedded: product})
	log.Printf("📝 Draft %s: added product %s (%d items)", id, code, len(draft.Items))
	return draft, nil
}

// RemoveItem drops the item at index from the draft.
func (s *DraftService) RemoveItem(id string, index int) (*models.CatalogDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, repository.ErrNotFound)
	}
	if index < 0 || index >= len(draft.Items) {
		return nil, fmt.Errorf("item index %d out of range (draft has %d items): %w", index, len(draft.Items), ErrValidation)
	}

	draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)
	log.Printf("📝 Draft %s: removed item %d (%d items left)", id, index, len(draft.Items))
	return draft, nil
}

// Save persists the draft as customers/<slug>.json, mirrors the file to the remote
// store, and closes the session. The draft survives a failed save so the admin can fix
// the input and retry.
func (s *DraftService) Save(ctx context.Context, id string) (string, []string, error) {
	draft, err := s.Get(id)
	if err != nil {
		return "", nil, err
	}
	if len(draft.Items) == 0 {
		return "", nil, fmt.Errorf("add at least one item before saving: %w", ErrValidation)
	}

	catalog := models.CustomerCatalog{
		CustomerName:  draft.CustomerName,
		SellerName:    draft.SellerName,
		SellerContact: draft.SellerContact,
		Items:         draft.Items,
	}

	slug, err := s.catalogs.Save(catalog)
	if err != nil {
		return "", nil, err
	}

	var warnings []string
	repoPath := fmt.Sprintf("%s/%s.json", customersDir, slug)
	localPath := filepath.Join(s.dataDir, customersDir, slug+".json")
	res := s.sync.SyncFile(ctx, localPath, repoPath, fmt.Sprintf("Saving catalog for customer %s", draft.CustomerName))
	if !res.Synced {
		warnings = append(warnings, fmt.Sprintf("catalog saved locally; remote sync failed: %s", res.Detail))
	}

	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()

	log.Printf("✅ Draft %s saved as catalog %s", id, slug)
	return slug, warnings, nil
}

// Discard closes an editing session without saving.
func (s *DraftService) Discard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return fmt.Errorf("draft %s: %w", id, repository.ErrNotFound)
	}
	delete(s.drafts, id)

	log.Printf("🗑 Draft %s discarded", id)
	return nil
}
