package categorystore

import (
	"context"
	"time"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// Collection is the backing collection name.
const Collection = "category"

type Store struct {
	docs *docs.Store
}

func New(d *docs.Store) *Store {
	return &Store{docs: d}
}

// Create inserts a category and returns the generated id. The parent
// reference is stored as-is: no existence check and no cycle detection.
func (s *Store) Create(ctx context.Context, c models.Category) (string, error) {
	c.CreatedAt = time.Now().UTC()
	return s.docs.CreateDocument(ctx, Collection, c)
}

// ListAll returns categories in store-native order, capped at the adapter's
// default limit.
func (s *Store) ListAll(ctx context.Context) ([]models.Category, error) {
	cats := []models.Category{}
	if err := s.docs.GetDocuments(ctx, Collection, nil, 0, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
