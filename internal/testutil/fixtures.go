package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/circuitshop/circuitshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a test user directly into the "user" collection.
// The email is stored as given; pass it lowercase to match lookup behavior.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()

	user := models.User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Email:          email,
		HashedPassword: password,
		Role:           models.DefaultRole,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	_, err := f.db.Collection("user").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateCategory inserts a test category. parentID may be empty for a root
// category.
func (f *Fixtures) CreateCategory(ctx context.Context, name, parentID string) models.Category {
	f.t.Helper()

	cat := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("category").InsertOne(ctx, cat)
	if err != nil {
		f.t.Fatalf("failed to create test category: %v", err)
	}

	return cat
}

// CreateProduct inserts a test product in the given category.
func (f *Fixtures) CreateProduct(ctx context.Context, name string, price float64, categoryID string) models.Product {
	f.t.Helper()

	prod := models.Product{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		InStock:    true,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := f.db.Collection("product").InsertOne(ctx, prod)
	if err != nil {
		f.t.Fatalf("failed to create test product: %v", err)
	}

	return prod
}
