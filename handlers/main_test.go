package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"service-marketplace-api/config"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"
	"service-marketplace-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter wires the full route tree against a fresh in-memory
// database. The pool is pinned to one connection because every in-memory
// SQLite connection is its own database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its token and id
func registerUser(t *testing.T, r http.Handler, username string, role models.UserRole) (string, uint) {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":          username,
		"email":             username + "@example.com",
		"password":          "secret123",
		"repeated_password": "secret123",
		"type":              role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	return body["token"].(string), uint(body["user_id"].(float64))
}

// seedAdmin inserts a privileged user directly, the way the startup seed does
func seedAdmin(t *testing.T) string {
	t.Helper()
	admin := models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, config.DB.Create(&admin).Error)
	token, err := middleware.GenerateToken(&admin)
	require.NoError(t, err)
	return token
}

func tierPayload(tag string, price float64, delivery int) gin.H {
	return gin.H{
		"offer_type":            tag,
		"title":                 tag + " package",
		"revisions":             2,
		"delivery_time_in_days": delivery,
		"price":                 price,
		"features":              []string{"Logo", "Source file"},
	}
}

func offerPayload(title string) gin.H {
	return gin.H{
		"title":       title,
		"description": "Professional " + title,
		"image":       "",
		"details": []gin.H{
			tierPayload("basic", 50, 7),
			tierPayload("standard", 100, 5),
			tierPayload("premium", 200, 3),
		},
	}
}

// createOffer posts a valid offer and returns its id
func createOffer(t *testing.T, r http.Handler, token, title string) uint {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/offers", token, offerPayload(title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	offer := body["offer"].(map[string]interface{})
	return uint(offer["id"].(float64))
}

// offerDetailID looks up the tier id for a given offer and tag
func offerDetailID(t *testing.T, offerID uint, tag models.TierType) uint {
	t.Helper()
	var detail models.OfferDetail
	require.NoError(t, config.DB.Where("offer_id = ? AND offer_type = ?", offerID, tag).First(&detail).Error)
	return detail.ID
}

func orderPath(id uint) string {
	return fmt.Sprintf("/api/orders/%d", id)
}
