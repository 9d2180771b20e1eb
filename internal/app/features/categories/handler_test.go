package categories_test

import (
	"net/http"
	"testing"

	"github.com/circuitshop/circuitshop/internal/app/features/categories"
	categorystore "github.com/circuitshop/circuitshop/internal/app/store/categories"
	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/circuitshop/circuitshop/internal/domain/models"
	"github.com/circuitshop/circuitshop/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*categories.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := categories.NewHandler(categorystore.New(docs.New(db)), zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleCreate_Success(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/categories", map[string]any{
		"name":        "Components",
		"description": "Passive and active components",
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		ID string `json:"id"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.ID == "" {
		t.Error("expected non-empty id")
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/categories", map[string]any{
		"description": "nameless",
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleCreate_SanitizesDescription(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/categories", map[string]any{
		"name":        "Cables",
		"description": `<script>alert("x")</script>USB cables`,
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var stored models.Category
	err := fixtures.DB().Collection("category").FindOne(ctx, map[string]any{"name": "Cables"}).Decode(&stored)
	if err != nil {
		t.Fatalf("failed to read back category: %v", err)
	}
	if stored.Description != "USB cables" {
		t.Errorf("description: got %q, want script tag stripped", stored.Description)
	}
}

func TestHandleList_GroupsByParent(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	root := fixtures.CreateCategory(ctx, "Components", "")
	fixtures.CreateCategory(ctx, "Resistors", root.ID.Hex())
	fixtures.CreateCategory(ctx, "Capacitors", root.ID.Hex())
	fixtures.CreateCategory(ctx, "Tools", "")

	req := testutil.NewJSONRequest(t, "GET", "/categories", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var groups map[string][]models.Category
	rec.DecodeJSON(t, &groups)

	if len(groups[""]) != 2 {
		t.Errorf("root group: got %d categories, want 2", len(groups[""]))
	}
	if len(groups[root.ID.Hex()]) != 2 {
		t.Errorf("group %q: got %d categories, want 2", root.ID.Hex(), len(groups[root.ID.Hex()]))
	}
}

func TestHandleList_Empty(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "GET", "/categories", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var groups map[string][]models.Category
	rec.DecodeJSON(t, &groups)
	if len(groups) != 0 {
		t.Errorf("expected empty grouping, got %v", groups)
	}
}

func TestHandleList_StoreUnavailable(t *testing.T) {
	handler := categories.NewHandler(categorystore.New(docs.New(nil)), zap.NewNop())

	req := testutil.NewJSONRequest(t, "GET", "/categories", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
	if msg := rec.ErrorMessage(); msg != "Database not configured" {
		t.Errorf("error message: got %q, want %q", msg, "Database not configured")
	}
}
