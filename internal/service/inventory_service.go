package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"go-inventory-admin/internal/event"
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/pkg/validator"
)

// InventoryService owns every catalog mutation plus the single-slot
// edit session and notification. Validation failures are silent
// no-ops that leave the draft untouched so the caller can correct the
// input; no error crosses this boundary for them. The returned bools
// only report whether a mutation happened.
type InventoryService interface {
	Load(ctx context.Context) error
	Products() []model.Product

	Draft() model.Draft
	SetDraft(draft model.Draft)
	EditingID() (int, bool)

	AddProduct(ctx context.Context) bool
	DeleteProduct(ctx context.Context, id int)
	BeginEdit(id int) bool
	CancelEdit()
	SaveEdit(ctx context.Context) bool
	ImportProducts(ctx context.Context, rows []model.ImportRow) int

	Notification() string
}

type inventoryService struct {
	repo repository.CatalogRepository
	hub  *event.Hub

	mu           sync.Mutex
	draft        model.Draft
	editingID    *int
	notification string
}

func NewInventoryService(repo repository.CatalogRepository, hub *event.Hub) InventoryService {
	return &inventoryService{repo: repo, hub: hub}
}

// Load pulls the stored catalog into memory. Called once at startup;
// all later reads are served from memory.
func (s *inventoryService) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

func (s *inventoryService) Products() []model.Product {
	return s.repo.FindAll()
}

func (s *inventoryService) Draft() model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *inventoryService) SetDraft(draft model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = draft
}

func (s *inventoryService) EditingID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editingID == nil {
		return 0, false
	}
	return *s.editingID, true
}

func (s *inventoryService) Notification() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notification
}

// AddProduct commits the current draft as a new catalog entry. The ID
// is derived from the catalog length at call time. A draft with a
// missing required field or a non-numeric stock/price is rejected
// without touching catalog or draft.
func (s *inventoryService) AddProduct(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := validator.ValidateStruct(&s.draft); len(errs) > 0 {
		return false
	}

	stock, price, ok := coerceDraft(s.draft)
	if !ok {
		return false
	}

	product := model.Product{
		ID:       s.repo.Count() + 1,
		Name:     s.draft.Name,
		Category: s.draft.Category,
		Stock:    stock,
		Price:    price,
	}

	if err := s.repo.Append(ctx, product); err != nil {
		log.Println("Warning: failed to persist catalog:", err)
	}

	s.draft = model.Draft{}
	s.notification = "Product added successfully!"
	s.hub.Broadcast(event.Event{
		Action:  event.ActionProductAdded,
		Message: s.notification,
	})
	return true
}

// DeleteProduct removes the matching entry. Deleting an unknown ID is
// still reported as a success, matching the single-record semantics
// of the admin form.
func (s *inventoryService) DeleteProduct(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Delete(ctx, id); err != nil {
		log.Println("Warning: failed to persist catalog:", err)
	}

	s.notification = "Product deleted successfully!"
	s.hub.Broadcast(event.Event{
		Action:  event.ActionProductDeleted,
		Message: s.notification,
	})
}

// BeginEdit copies the target product into the draft and marks it as
// the edit target. An unknown ID leaves the session exactly as it
// was. Calling BeginEdit while already editing retargets the session
// unconditionally.
func (s *inventoryService) BeginEdit(id int) bool {
	product, ok := s.repo.FindByID(id)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = model.Draft{
		Name:     product.Name,
		Category: product.Category,
		Stock:    strconv.Itoa(product.Stock),
		Price:    strconv.FormatFloat(product.Price, 'f', -1, 64),
	}
	s.editingID = &id
	return true
}

// CancelEdit abandons the session without touching the catalog.
func (s *inventoryService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = model.Draft{}
	s.editingID = nil
}

// SaveEdit writes the draft back over the edit target, keeping its
// ID. On validation or coercion failure the session stays open so the
// input can be corrected. The session is cleared even when the target
// has been deleted in the meantime.
func (s *inventoryService) SaveEdit(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editingID == nil {
		return false
	}
	if errs := validator.ValidateStruct(&s.draft); len(errs) > 0 {
		return false
	}
	stock, price, ok := coerceDraft(s.draft)
	if !ok {
		return false
	}

	product := model.Product{
		ID:       *s.editingID,
		Name:     s.draft.Name,
		Category: s.draft.Category,
		Stock:    stock,
		Price:    price,
	}

	if _, err := s.repo.Replace(ctx, product); err != nil {
		log.Println("Warning: failed to persist catalog:", err)
	}

	s.draft = model.Draft{}
	s.editingID = nil
	s.notification = "Product updated successfully!"
	s.hub.Broadcast(event.Event{
		Action:  event.ActionProductUpdated,
		Message: s.notification,
	})
	return true
}

// ImportProducts appends the whole batch in one operation with a
// single persistence write. Unlike AddProduct, rows are never
// rejected: stock and price are parsed best-effort and fall back to
// zero, keeping the historical bulk-upload behavior. An empty batch
// is a no-op with no notification.
func (s *inventoryService) ImportProducts(ctx context.Context, rows []model.ImportRow) int {
	if len(rows) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.repo.Count()
	products := make([]model.Product, 0, len(rows))
	for i, row := range rows {
		products = append(products, model.Product{
			ID:       base + i + 1,
			Name:     row.Name,
			Category: row.Category,
			Stock:    parseIntLoose(row.Stock),
			Price:    parseFloatLoose(row.Price),
		})
	}

	if err := s.repo.AppendBatch(ctx, products); err != nil {
		log.Println("Warning: failed to persist catalog:", err)
	}

	s.notification = fmt.Sprintf("%d products added from CSV.", len(products))
	s.hub.Broadcast(event.Event{
		Action:  event.ActionProductsImported,
		Message: s.notification,
		Count:   len(products),
	})
	return len(products)
}

// coerceDraft turns the textual stock/price into numbers. A value
// that fails to parse, or a negative quantity, rejects the record
// rather than storing text in a numeric field.
func coerceDraft(draft model.Draft) (stock int, price float64, ok bool) {
	stock, err := strconv.Atoi(strings.TrimSpace(draft.Stock))
	if err != nil || stock < 0 {
		return 0, 0, false
	}
	price, err = strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil || price < 0 {
		return 0, 0, false
	}
	return stock, price, true
}

func parseIntLoose(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatLoose(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
