package orders_test

import (
	"net/http"
	"testing"

	"github.com/circuitshop/circuitshop/internal/app/features/orders"
	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	orderstore "github.com/circuitshop/circuitshop/internal/app/store/orders"
	"github.com/circuitshop/circuitshop/internal/app/system/notify"
	"github.com/circuitshop/circuitshop/internal/domain/models"
	"github.com/circuitshop/circuitshop/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*orders.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := orders.NewHandler(orderstore.New(docs.New(db)), notify.New(logger, "off"), logger)
	return handler, testutil.NewFixtures(t, db)
}

func placeBody(items ...map[string]any) map[string]any {
	return map[string]any{
		"user_id": primitive.NewObjectID().Hex(),
		"email":   "buyer@example.com",
		"items":   items,
	}
}

func TestHandlePlace_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/orders", placeBody(
		map[string]any{"product_id": "p1", "name": "USB Cable", "quantity": 2, "unit_price": 10.0},
		map[string]any{"product_id": "p2", "name": "Adapter", "quantity": 1, "unit_price": 5.5},
	))
	rec := testutil.NewRecorder()

	handler.HandlePlace(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		OrderID string  `json:"order_id"`
		Total   float64 `json:"total"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.OrderID == "" {
		t.Error("expected non-empty order_id")
	}
	if resp.Total != 25.5 {
		t.Errorf("total: got %v, want 25.5", resp.Total)
	}

	// The stored order carries server-computed amounts and placed status.
	oid, err := primitive.ObjectIDFromHex(resp.OrderID)
	if err != nil {
		t.Fatalf("order_id is not a valid ObjectID hex: %v", err)
	}
	var stored models.Order
	if err := fixtures.DB().Collection("order").FindOne(ctx, map[string]any{"_id": oid}).Decode(&stored); err != nil {
		t.Fatalf("failed to read back order: %v", err)
	}
	if stored.Subtotal != 25.5 || stored.Tax != 0 || stored.Total != 25.5 {
		t.Errorf("stored amounts: subtotal=%v tax=%v total=%v, want 25.5/0/25.5", stored.Subtotal, stored.Tax, stored.Total)
	}
	if stored.Status != "placed" {
		t.Errorf("status: got %q, want %q", stored.Status, "placed")
	}
	if len(stored.Items) != 2 {
		t.Errorf("items: got %d, want 2", len(stored.Items))
	}
}

func TestHandlePlace_EmptyItems(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/orders", map[string]any{
		"user_id": primitive.NewObjectID().Hex(),
		"email":   "buyer@example.com",
		"items":   []any{},
	})
	rec := testutil.NewRecorder()

	handler.HandlePlace(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandlePlace_ZeroQuantity(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/orders", placeBody(
		map[string]any{"product_id": "p1", "name": "USB Cable", "quantity": 0, "unit_price": 10.0},
	))
	rec := testutil.NewRecorder()

	handler.HandlePlace(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandlePlace_MissingUnitPrice(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/orders", placeBody(
		map[string]any{"product_id": "p1", "name": "USB Cable", "quantity": 1},
	))
	rec := testutil.NewRecorder()

	handler.HandlePlace(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandlePlace_StoreUnavailable(t *testing.T) {
	logger := zap.NewNop()
	handler := orders.NewHandler(orderstore.New(docs.New(nil)), notify.New(logger, "off"), logger)

	req := testutil.NewJSONRequest(t, "POST", "/orders", placeBody(
		map[string]any{"product_id": "p1", "name": "USB Cable", "quantity": 1, "unit_price": 10.0},
	))
	rec := testutil.NewRecorder()

	handler.HandlePlace(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
	if msg := rec.ErrorMessage(); msg != "Database not configured" {
		t.Errorf("error message: got %q, want %q", msg, "Database not configured")
	}
}
