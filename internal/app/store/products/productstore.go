package productstore

import (
	"context"
	"time"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// Collection is the backing collection name.
const Collection = "product"

type Store struct {
	docs *docs.Store
}

func New(d *docs.Store) *Store {
	return &Store{docs: d}
}

// Create inserts a product and returns the generated id. The category
// reference has already been format-checked by the handler; existence in the
// category collection is deliberately not verified.
func (s *Store) Create(ctx context.Context, p models.Product) (string, error) {
	p.CreatedAt = time.Now().UTC()
	return s.docs.CreateDocument(ctx, Collection, p)
}

// ListOptions are the optional product listing constraints. Zero-valued
// fields impose no constraint.
type ListOptions struct {
	CategoryID    string
	SubcategoryID string
	Query         string // case-insensitive substring match on name
	Limit         int64
}

// List returns products matching opts in store-native order.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]models.Product, error) {
	filter := docs.NewFilter().
		Eq("category_id", opts.CategoryID).
		Eq("subcategory_id", opts.SubcategoryID).
		NameContains(opts.Query)

	prods := []models.Product{}
	if err := s.docs.GetDocuments(ctx, Collection, filter, opts.Limit, &prods); err != nil {
		return nil, err
	}
	return prods, nil
}
