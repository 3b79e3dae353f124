package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AtharvMirajkar/delivery-management-system/config"
	"github.com/AtharvMirajkar/delivery-management-system/models"
	"github.com/AtharvMirajkar/delivery-management-system/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires a fresh in-memory database and the full route table
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Role        string `json:"role"`
		IsAvailable *bool  `json:"isAvailable"`
	} `json:"user"`
}

type orderResponse struct {
	Order models.Order `json:"order"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

type partnersResponse struct {
	Partners []models.User `json:"partners"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// register creates an account and returns its token and id
func register(t *testing.T, r *gin.Engine, name, email, password string, role models.UserRole) (string, uint) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registering %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}
	var resp authResponse
	decodeBody(t, w, &resp)
	return resp.Token, resp.User.ID
}

var testPickup = gin.H{"lat": 40.7128, "lng": -74.0060}
var testDelivery = gin.H{"lat": 40.7580, "lng": -73.9855}

// createOrder creates an order as the given admin and returns it
func createOrder(t *testing.T, r *gin.Engine, adminToken string) models.Order {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/orders", adminToken, gin.H{
		"customerName":     "Jane Doe",
		"customerPhone":    "+1-555-0100",
		"pickupAddress":    "1 Liberty St, New York, NY",
		"pickupLocation":   testPickup,
		"deliveryAddress":  "45 Broadway, New York, NY",
		"deliveryLocation": testDelivery,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("creating order: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp orderResponse
	decodeBody(t, w, &resp)
	return resp.Order
}
