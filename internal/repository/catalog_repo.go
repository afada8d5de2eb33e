package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/pkg/storage"
)

// DefaultKey is the storage key the serialized catalog lives under.
const DefaultKey = "products"

// CatalogRepository owns the authoritative, insertion-ordered product
// list. Every mutation rewrites the full serialized catalog into the
// backing store; reads are always served from memory, the store is
// only consulted once by Load.
type CatalogRepository interface {
	Load(ctx context.Context) error
	FindAll() []model.Product
	FindByID(id int) (model.Product, bool)
	Count() int
	Append(ctx context.Context, product model.Product) error
	AppendBatch(ctx context.Context, products []model.Product) error
	Replace(ctx context.Context, product model.Product) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type catalogRepo struct {
	mu       sync.RWMutex
	products []model.Product
	store    storage.KeyValue
	key      string
}

func NewCatalogRepo(store storage.KeyValue, key string) CatalogRepository {
	if key == "" {
		key = DefaultKey
	}
	return &catalogRepo{store: store, key: key}
}

// Load reads the stored catalog. An absent value means an empty
// catalog, not an error.
func (r *catalogRepo) Load(ctx context.Context) error {
	raw, ok, err := r.store.Read(ctx, r.key)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !ok {
		r.products = nil
		return nil
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return fmt.Errorf("decode stored catalog: %w", err)
	}
	r.products = products
	return nil
}

func (r *catalogRepo) FindAll() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *catalogRepo) FindByID(id int) (model.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (r *catalogRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}

func (r *catalogRepo) Append(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, product)
	return r.persist(ctx)
}

// AppendBatch appends the whole batch and persists once, so a bulk
// import produces a single store write.
func (r *catalogRepo) AppendBatch(ctx context.Context, products []model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, products...)
	return r.persist(ctx)
}

// Replace overwrites the entry with the matching ID. The catalog is
// persisted either way; the bool reports whether a match existed.
func (r *catalogRepo) Replace(ctx context.Context, product model.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			found = true
			break
		}
	}
	return found, r.persist(ctx)
}

// Delete removes the entry with the matching ID; deleting an unknown
// ID is a successful no-op.
func (r *catalogRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	return found, r.persist(ctx)
}

// persist mirrors the current catalog into the store. Callers hold
// the write lock.
func (r *catalogRepo) persist(ctx context.Context) error {
	raw, err := json.Marshal(r.products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := r.store.Write(ctx, r.key, raw); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}
