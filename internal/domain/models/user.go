// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record created at signup.
//
// NOTE: hashed_password currently holds the raw password. Passwords are
// compared in plaintext; hashing is a known gap, not a design feature.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"` // normalized lowercase, uniqueness enforced by pre-insert lookup
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Role           string             `bson:"role" json:"role"` // customer | admin
	IsActive       bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// DefaultRole is assigned to users created through signup.
const DefaultRole = "customer"
