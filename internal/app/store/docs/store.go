// Package docs is the generic document-store adapter. It wraps the single
// shared *mongo.Database handle created at process start and exposes the two
// primitive operations every entity store is built on: insert one document
// returning its generated id, and find many documents under an optional
// filter and limit.
//
// The handle may legitimately be nil: when the Mongo URI was never configured
// (or the connection could not be established at startup) the process still
// serves requests, and every store operation fails uniformly with
// ErrUnavailable. Nothing retries; a failed store call fails the request.
package docs

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultLimit caps GetDocuments result sets when the caller passes limit <= 0.
const DefaultLimit = 100

// ErrUnavailable is returned from every operation when the store connection
// was never established. Handlers surface it as a uniform server error.
var ErrUnavailable = errors.New("document store not configured")

// Store owns the shared database handle. It is safe for concurrent use by all
// handlers; no in-process state is mutated after construction.
type Store struct {
	db *mongo.Database
}

// New wraps the database handle. db may be nil (unconfigured store); every
// operation then fails with ErrUnavailable.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether a database handle exists. It does not probe the
// connection; use Ping for that.
func (s *Store) Available() bool { return s.db != nil }

// DatabaseName returns the name of the underlying database, or "" when the
// store is unconfigured.
func (s *Store) DatabaseName() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Ping verifies connectivity to the store.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// CreateDocument inserts entity into the named collection and returns the
// generated id as a hex string. It performs no referential-integrity checks.
func (s *Store) CreateDocument(ctx context.Context, collection string, entity any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, entity)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}
	return oid.Hex(), nil
}

// GetDocuments finds documents in the named collection matching filter (nil
// means all) and decodes them into out, which must be a pointer to a slice.
// Results are capped at limit (DefaultLimit when limit <= 0) and returned in
// store-native order; no explicit sort is applied.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter *Filter, limit int64, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter.Build(), options.Find().SetLimit(limit))
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// FindOne decodes the first document matching filter into out. Returns
// mongo.ErrNoDocuments when nothing matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter *Filter, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.Collection(collection).FindOne(ctx, filter.Build()).Decode(out)
}

// ListCollectionNames enumerates collection names in the database, capped at
// max (unbounded when max <= 0). Used by the diagnostics endpoint.
func (s *Store) ListCollectionNames(ctx context.Context, max int) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Filter composes optional predicate clauses into a Mongo query document.
// Each clause is added explicitly; absent fields impose no constraint.
type Filter struct {
	clauses bson.M
}

// NewFilter returns an empty filter (matches everything).
func NewFilter() *Filter {
	return &Filter{clauses: bson.M{}}
}

// Eq adds an exact-match clause on field. Empty values are skipped so callers
// can pass optional query parameters straight through.
func (f *Filter) Eq(field, value string) *Filter {
	if value != "" {
		f.clauses[field] = value
	}
	return f
}

// NameContains adds a case-insensitive substring match on the "name" field.
// The query string is quoted so regex metacharacters match literally.
func (f *Filter) NameContains(q string) *Filter {
	if q != "" {
		f.clauses["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	}
	return f
}

// Build returns the composed query document. A nil or empty Filter yields an
// empty document, which matches every document in the collection.
func (f *Filter) Build() bson.M {
	if f == nil || f.clauses == nil {
		return bson.M{}
	}
	return f.clauses
}
