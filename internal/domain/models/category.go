// internal/domain/models/category.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a node in the catalog tree. ParentID holds the hex _id of the
// parent category as a plain string; an empty ParentID means root level.
// Dangling parent references are possible: nothing verifies the parent exists.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	ParentID    string             `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
