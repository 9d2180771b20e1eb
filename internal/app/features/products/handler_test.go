package products_test

import (
	"net/http"
	"testing"

	"github.com/circuitshop/circuitshop/internal/app/features/products"
	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	productstore "github.com/circuitshop/circuitshop/internal/app/store/products"
	"github.com/circuitshop/circuitshop/internal/domain/models"
	"github.com/circuitshop/circuitshop/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*products.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := products.NewHandler(productstore.New(docs.New(db)), zap.NewNop())
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleCreate_Success(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/products", map[string]any{
		"name":        "USB-C Cable 1m",
		"price":       4.99,
		"category_id": primitive.NewObjectID().Hex(),
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

func TestHandleCreate_InvalidCategoryID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/products", map[string]any{
		"name":        "USB-C Cable 1m",
		"price":       4.99,
		"category_id": "not-a-valid-id",
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	if msg := rec.ErrorMessage(); msg != "Invalid category_id" {
		t.Errorf("error message: got %q, want %q", msg, "Invalid category_id")
	}
}

func TestHandleCreate_MissingPrice(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/products", map[string]any{
		"name":        "Priceless",
		"category_id": primitive.NewObjectID().Hex(),
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleCreate_ZeroPriceAllowed(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/products", map[string]any{
		"name":        "Free Sample",
		"price":       0,
		"category_id": primitive.NewObjectID().Hex(),
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusOK)
}

func TestHandleCreate_DefaultsInStock(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/products", map[string]any{
		"name":        "Soldering Iron",
		"price":       24.50,
		"category_id": primitive.NewObjectID().Hex(),
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var stored models.Product
	err := fixtures.DB().Collection("product").FindOne(ctx, map[string]any{"name": "Soldering Iron"}).Decode(&stored)
	if err != nil {
		t.Fatalf("failed to read back product: %v", err)
	}
	if !stored.InStock {
		t.Error("in_stock should default to true when omitted")
	}
}

func TestHandleList_All(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catID := primitive.NewObjectID().Hex()
	fixtures.CreateProduct(ctx, "USB Cable", 4.99, catID)
	fixtures.CreateProduct(ctx, "HDMI Cable", 7.99, catID)

	req := testutil.NewJSONRequest(t, "GET", "/products", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var prods []models.Product
	rec.DecodeJSON(t, &prods)
	if len(prods) != 2 {
		t.Errorf("expected 2 products, got %d", len(prods))
	}
}

func TestHandleList_FiltersByCategory(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cablesID := primitive.NewObjectID().Hex()
	toolsID := primitive.NewObjectID().Hex()
	fixtures.CreateProduct(ctx, "USB Cable", 4.99, cablesID)
	fixtures.CreateProduct(ctx, "Soldering Iron", 24.50, toolsID)

	req := testutil.NewJSONRequest(t, "GET", "/products?category_id="+cablesID, nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var prods []models.Product
	rec.DecodeJSON(t, &prods)
	if len(prods) != 1 || prods[0].Name != "USB Cable" {
		t.Errorf("expected [USB Cable], got %v", prods)
	}
}

func TestHandleList_NameSearchCaseInsensitive(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catID := primitive.NewObjectID().Hex()
	fixtures.CreateProduct(ctx, "USB Cable", 4.99, catID)
	fixtures.CreateProduct(ctx, "HDMI CABLE", 7.99, catID)
	fixtures.CreateProduct(ctx, "Soldering Iron", 24.50, catID)

	req := testutil.NewJSONRequest(t, "GET", "/products?q=cable", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var prods []models.Product
	rec.DecodeJSON(t, &prods)
	if len(prods) != 2 {
		t.Errorf("q=cable: expected 2 matches, got %d: %v", len(prods), prods)
	}
}

func TestHandleList_RegexMetacharactersLiteral(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catID := primitive.NewObjectID().Hex()
	fixtures.CreateProduct(ctx, "Cable (2m)", 6.99, catID)
	fixtures.CreateProduct(ctx, "Cable 2m", 5.99, catID)

	req := testutil.NewJSONRequest(t, "GET", "/products?q=%282m%29", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var prods []models.Product
	rec.DecodeJSON(t, &prods)
	if len(prods) != 1 || prods[0].Name != "Cable (2m)" {
		t.Errorf("q=(2m): expected exactly [Cable (2m)], got %v", prods)
	}
}

func TestHandleList_Limit(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catID := primitive.NewObjectID().Hex()
	fixtures.CreateProduct(ctx, "A", 1, catID)
	fixtures.CreateProduct(ctx, "B", 2, catID)
	fixtures.CreateProduct(ctx, "C", 3, catID)

	req := testutil.NewJSONRequest(t, "GET", "/products?limit=2", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var prods []models.Product
	rec.DecodeJSON(t, &prods)
	if len(prods) != 2 {
		t.Errorf("limit=2: expected 2 products, got %d", len(prods))
	}
}

func TestHandleList_StoreUnavailable(t *testing.T) {
	handler := products.NewHandler(productstore.New(docs.New(nil)), zap.NewNop())

	req := testutil.NewJSONRequest(t, "GET", "/products", nil)
	rec := testutil.NewRecorder()

	handler.HandleList(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
	if msg := rec.ErrorMessage(); msg != "Database not configured" {
		t.Errorf("error message: got %q, want %q", msg, "Database not configured")
	}
}
