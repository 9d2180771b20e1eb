package orderstore

import (
	"context"
	"time"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// Collection is the backing collection name.
const Collection = "order"

type Store struct {
	docs *docs.Store
}

func New(d *docs.Store) *Store {
	return &Store{docs: d}
}

// Create persists one order document and returns the generated id. Totals
// and status are expected to be set by the caller; this store does not touch
// product stock and does not verify user or product references.
func (s *Store) Create(ctx context.Context, o models.Order) (string, error) {
	if o.Status == "" {
		o.Status = models.StatusPlaced
	}
	o.CreatedAt = time.Now().UTC()
	return s.docs.CreateDocument(ctx, Collection, o)
}
