package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wce-catalog/models"
	"wce-catalog/repository"
)

func newDraftFixture(t *testing.T) (*DraftService, *repository.ProductRepository, *repository.CatalogRepository) {
	t.Helper()
	dir := t.TempDir()
	products := repository.NewProductRepository(filepath.Join(dir, "database", "database.json"))
	catalogs := repository.NewCatalogRepository(filepath.Join(dir, "customers"))
	drafts := NewDraftService(products, catalogs, newSyncService(nil), dir)
	return drafts, products, catalogs
}

func TestDraftService_CreateRequiresAllFields(t *testing.T) {
	drafts, _, _ := newDraftFixture(t)

	_, err := drafts.Create("Acme Co", "", "5511999990000")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDraftService_AddItemResolvesProduct(t *testing.T) {
	drafts, products, _ := newDraftFixture(t)
	require.NoError(t, products.Upsert(models.Product{Code: "P100", Name: "Filter"}))

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)

	draft, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "P100", draft.Items[0].Code)
	require.NotNil(t, draft.Items[0].Embedded)
	assert.Equal(t, "Filter", draft.Items[0].Embedded.Name)
}

func TestDraftService_AddItemUnknownCode(t *testing.T) {
	drafts, _, _ := newDraftFixture(t)

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)

	_, err = drafts.AddItem(draft.ID, "NOPE")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDraftService_AddItemAllowsDuplicates(t *testing.T) {
	drafts, products, _ := newDraftFixture(t)
	require.NoError(t, products.Upsert(models.Product{Code: "P100", Name: "Filter"}))

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)

	_, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)
	draft, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)

	assert.Len(t, draft.Items, 2)
}

func TestDraftService_RemoveItemBoundsChecked(t *testing.T) {
	drafts, products, _ := newDraftFixture(t)
	require.NoError(t, products.Upsert(models.Product{Code: "P100", Name: "Filter"}))

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)
	_, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)

	_, err = drafts.RemoveItem(draft.ID, 1)
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = drafts.RemoveItem(draft.ID, -1)
	assert.True(t, errors.Is(err, ErrValidation))

	draft, err = drafts.RemoveItem(draft.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, draft.Items)
}

func TestDraftService_SaveRequiresItems(t *testing.T) {
	drafts, _, _ := newDraftFixture(t)

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)

	_, _, err = drafts.Save(context.Background(), draft.ID)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDraftService_SavePersistsAndCloses(t *testing.T) {
	drafts, products, catalogs := newDraftFixture(t)
	require.NoError(t, products.Upsert(models.Product{Code: "P100", Name: "Filter"}))

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)
	_, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)

	slug, warnings, err := drafts.Save(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme_co", slug)
	// Sync is disabled in this fixture, so the save reports the kept-local warning.
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "remote sync failed")

	saved, err := catalogs.Load("acme_co")
	require.NoError(t, err)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "P100", saved.Items[0].Code)

	// The session is closed after a successful save.
	_, err = drafts.Get(draft.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDraftService_SaveSurvivesSlugConflict(t *testing.T) {
	drafts, products, catalogs := newDraftFixture(t)
	require.NoError(t, products.Upsert(models.Product{Code: "P100", Name: "Filter"}))

	_, err := catalogs.Save(models.CustomerCatalog{
		CustomerName:  "ACME CO",
		SellerName:    "Ana",
		SellerContact: "5511888880000",
		Items:         []models.ItemRef{{Code: "P100"}},
	})
	require.NoError(t, err)

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)
	_, err = drafts.AddItem(draft.ID, "P100")
	require.NoError(t, err)

	_, _, err = drafts.Save(context.Background(), draft.ID)
	assert.True(t, errors.Is(err, repository.ErrSlugConflict))

	// The draft is kept so the admin can adjust and retry.
	_, err = drafts.Get(draft.ID)
	assert.NoError(t, err)
}

func TestDraftService_Discard(t *testing.T) {
	drafts, _, _ := newDraftFixture(t)

	draft, err := drafts.Create("Acme Co", "Maria", "5511999990000")
	require.NoError(t, err)

	require.NoError(t, drafts.Discard(draft.ID))

	_, err = drafts.Get(draft.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.Error(t, drafts.Discard(draft.ID))
}
