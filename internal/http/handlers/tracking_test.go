package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arheb/internal/auth"
	intconfig "arheb/internal/config"
	"arheb/internal/http/middleware"
	"arheb/internal/tracking"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

type nopConn struct{ id string }

func (c nopConn) ID() string   { return c.id }
func (c nopConn) Send(msg any) {}
func (c nopConn) Close()       {}

func trackingRouter(t *testing.T, tokens auth.Tokens) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/:orderId/tracking", middleware.Authorize(tokens), GetOrderTracking)
	return r
}

func trackingOrderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "phone_number", "name", "address_name",
		"address_long", "address_lat", "discount", "delivery_fee", "total_amount",
		"status", "payment_type", "promo_code", "order_rating", "store_id",
		"nearby", "notes", "created_at",
	})
}

func addTrackingOrder(rows *sqlmock.Rows, id int64, owner string) *sqlmock.Rows {
	return rows.AddRow(
		id, owner, owner, "", "",
		nil, nil, 0.0, 10.0, 50.0,
		"Waiting confirmation", "cash", "", 0, "",
		"", "", "2025-01-01 10:00:00",
	)
}

func doTracking(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrackingSnapshotRequiresAuth(t *testing.T) {
	tokens := auth.NewTokens("test-secret")
	r := trackingRouter(t, tokens)

	if w := doTracking(r, "/api/orders/9/tracking", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if w := doTracking(r, "/api/orders/9/tracking", "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestTrackingSnapshotRejectsBadOrderID(t *testing.T) {
	tokens := auth.NewTokens("test-secret")
	r := trackingRouter(t, tokens)

	token, err := tokens.Sign("+100")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if w := doTracking(r, "/api/orders/abc/tracking", "Bearer "+token); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTrackingSnapshotForbidsNonOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery("FROM orders WHERE id").WithArgs(int64(9)).
		WillReturnRows(addTrackingOrder(trackingOrderRows(), 9, "+owner"))

	tokens := auth.NewTokens("test-secret")
	SetRegistry(tracking.NewRegistry())
	r := trackingRouter(t, tokens)

	token, err := tokens.Sign("+intruder")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if w := doTracking(r, "/api/orders/9/tracking", "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestTrackingSnapshotStates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM orders WHERE id").WithArgs(int64(9)).
		WillReturnRows(addTrackingOrder(trackingOrderRows(), 9, "+owner"))
	mock.ExpectQuery("FROM orders WHERE id").WithArgs(int64(9)).
		WillReturnRows(addTrackingOrder(trackingOrderRows(), 9, "+owner"))

	tokens := auth.NewTokens("test-secret")
	registry := tracking.NewRegistry()
	SetRegistry(registry)
	r := trackingRouter(t, tokens)

	token, err := tokens.Sign("+owner")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	// no session yet
	w := doTracking(r, "/api/orders/9/tracking", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID         int64           `json:"orderId"`
			IsTracking      bool            `json:"isTracking"`
			Location        json.RawMessage `json:"location"`
			DriverConnected bool            `json:"driverConnected"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Data.IsTracking {
		t.Fatalf("expected isTracking=false, got %s", w.Body.String())
	}

	// a driver connects and reports a position
	registry.Attach(9, tracking.RoleDriver, nopConn{id: "d1"})
	if _, _, _, ok := registry.UpdateLocation(9, 31.2, 30.1); !ok {
		t.Fatalf("location update did not land")
	}

	w = doTracking(r, "/api/orders/9/tracking", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Data.IsTracking || !resp.Data.DriverConnected {
		t.Fatalf("expected live tracking state, got %s", w.Body.String())
	}
	var loc struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
	}
	if err := json.Unmarshal(resp.Data.Location, &loc); err != nil {
		t.Fatalf("bad location payload: %v", err)
	}
	if loc.Longitude != 31.2 || loc.Latitude != 30.1 {
		t.Fatalf("unexpected location %+v", loc)
	}
}
