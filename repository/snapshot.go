package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/models"
)

// Snapshot record names. The whole catalog and the whole ledger round-trip
// as two textual records, loaded once at startup and rewritten in full after
// every mutation to either collection.
const (
	RecordProducts = "products"
	RecordSales    = "sales"
)

// ErrNoSnapshot is returned by Read when a record has never been written.
var ErrNoSnapshot = errors.New("snapshot record not found")

// SnapshotStore persists named JSON records.
type SnapshotStore interface {
	Read(ctx context.Context, record string) ([]byte, error)
	Write(ctx context.Context, record string, data []byte) error
}

// LoadState restores catalog and ledger contents from the snapshot store.
// Missing records are not an error; the corresponding seed data stays in
// place.
func LoadState(ctx context.Context, store SnapshotStore, catalog *CatalogRepository, sales *SalesRepository) error {
	if data, err := store.Read(ctx, RecordProducts); err == nil {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return fmt.Errorf("decode products snapshot: %w", err)
		}
		catalog.ReplaceAll(products)
	} else if !errors.Is(err, ErrNoSnapshot) {
		return fmt.Errorf("read products snapshot: %w", err)
	}

	if data, err := store.Read(ctx, RecordSales); err == nil {
		var history []models.Sale
		if err := json.Unmarshal(data, &history); err != nil {
			return fmt.Errorf("decode sales snapshot: %w", err)
		}
		sales.ReplaceAll(history)
	} else if !errors.Is(err, ErrNoSnapshot) {
		return fmt.Errorf("read sales snapshot: %w", err)
	}

	return nil
}

// SaveProducts rewrites the products record in full.
func SaveProducts(ctx context.Context, store SnapshotStore, catalog CatalogStore) error {
	data, err := json.Marshal(catalog.List())
	if err != nil {
		return fmt.Errorf("encode products snapshot: %w", err)
	}
	return store.Write(ctx, RecordProducts, data)
}

// SaveSales rewrites the sales record in full.
func SaveSales(ctx context.Context, store SnapshotStore, ledger SalesLedger) error {
	data, err := json.Marshal(ledger.List())
	if err != nil {
		return fmt.Errorf("encode sales snapshot: %w", err)
	}
	return store.Write(ctx, RecordSales, data)
}
