package controllers

import (
	"context"

	"storefront/repository"

	"go.uber.org/zap"
)

// Persister rewrites the two snapshot records after successful mutations.
// The engine itself never persists; controllers call this once their
// mutation has been applied. With no snapshot backend configured every call
// is a no-op. Persistence failures are logged, not surfaced: in-memory
// state is already consistent and the next mutation rewrites the record in
// full anyway.
type Persister struct {
	store   repository.SnapshotStore
	catalog repository.CatalogStore
	ledger  repository.SalesLedger
}

func NewPersister(store repository.SnapshotStore, catalog repository.CatalogStore, ledger repository.SalesLedger) *Persister {
	return &Persister{store: store, catalog: catalog, ledger: ledger}
}

func (p *Persister) SaveProducts(ctx context.Context) {
	if p == nil || p.store == nil {
		return
	}
	if err := repository.SaveProducts(ctx, p.store, p.catalog); err != nil {
		zap.L().Error("Failed to persist products snapshot", zap.Error(err))
	}
}

func (p *Persister) SaveSales(ctx context.Context) {
	if p == nil || p.store == nil {
		return
	}
	if err := repository.SaveSales(ctx, p.store, p.ledger); err != nil {
		zap.L().Error("Failed to persist sales snapshot", zap.Error(err))
	}
}
