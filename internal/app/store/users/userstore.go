package userstore

import (
	"context"
	"time"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/app/system/normalize"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// Collection is the backing collection name.
const Collection = "user"

type Store struct {
	docs *docs.Store
}

func New(d *docs.Store) *Store {
	return &Store{docs: d}
}

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments when no user has that email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	filter := docs.NewFilter().Eq("email", normalize.Email(email))
	if err := s.docs.FindOne(ctx, Collection, filter, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the generated id. Email is
// normalized; role and active flag get their defaults when unset.
//
// Uniqueness is enforced only by the caller's pre-insert lookup, not by a
// store-level constraint: two concurrent signups for the same email can both
// succeed. That race is accepted; see DESIGN.md.
func (s *Store) Create(ctx context.Context, u models.User) (string, error) {
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.DefaultRole
	}
	u.IsActive = true
	u.CreatedAt = time.Now().UTC()
	return s.docs.CreateDocument(ctx, Collection, u)
}
