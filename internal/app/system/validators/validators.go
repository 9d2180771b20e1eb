// Package validators ensures the storefront collections exist and, where the
// server supports collMod, attaches JSON-Schema validators mirroring the
// entity field constraints (required fields, numeric lower bounds). Request
// payloads are validated separately before any store access; these schemas
// constrain writes that bypass the API.
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the four collections (if missing) and tries to attach
// validators. On servers that don't support collMod (e.g. some DocumentDB
// versions), validators are skipped gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("user", userSchema())
	ensure("category", categorySchema())
	ensure("product", productSchema())
	ensure("order", orderSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers ---------------------- */

// ensureCollection idempotently makes sure <name> exists.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 48 {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

// isUnsupported matches "no such command" / "not implemented" class errors
// from servers without collMod validator support.
func isUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func userSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "hashed_password", "role", "is_active"},
			"properties": bson.M{
				"name":            bson.M{"bsonType": "string", "minLength": 1},
				"email":           bson.M{"bsonType": "string", "pattern": "@"},
				"hashed_password": bson.M{"bsonType": "string"},
				"role":            bson.M{"enum": bson.A{"customer", "admin"}},
				"is_active":       bson.M{"bsonType": "bool"},
			},
		},
	}
}

func categorySchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name"},
			"properties": bson.M{
				"name":        bson.M{"bsonType": "string", "minLength": 1},
				"parent_id":   bson.M{"bsonType": "string"},
				"description": bson.M{"bsonType": "string"},
			},
		},
	}
}

func productSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "price", "category_id", "in_stock"},
			"properties": bson.M{
				"name":           bson.M{"bsonType": "string", "minLength": 1},
				"description":    bson.M{"bsonType": "string"},
				"price":          bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"sku":            bson.M{"bsonType": "string"},
				"image_url":      bson.M{"bsonType": "string"},
				"category_id":    bson.M{"bsonType": "string"},
				"subcategory_id": bson.M{"bsonType": "string"},
				"in_stock":       bson.M{"bsonType": "bool"},
				"stock_qty":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
			},
		},
	}
}

func orderSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "email", "items", "subtotal", "tax", "total", "status"},
			"properties": bson.M{
				"user_id":  bson.M{"bsonType": "string"},
				"email":    bson.M{"bsonType": "string", "pattern": "@"},
				"subtotal": bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"tax":      bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"total":    bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"status":   bson.M{"bsonType": "string"},
				"items": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"product_id", "name", "quantity", "unit_price"},
						"properties": bson.M{
							"product_id": bson.M{"bsonType": "string"},
							"name":       bson.M{"bsonType": "string"},
							"quantity":   bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
							"unit_price": bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
						},
					},
				},
			},
		},
	}
}
