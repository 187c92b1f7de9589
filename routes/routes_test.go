package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) (*entity.User, string) {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	token, err := utils.GenerateToken(u.ID, u.Role, testSecret, time.Hour)
	require.NoError(t, err)
	return u, token
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
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

func TestCategoryRoleGate(t *testing.T) {
	r, db := newTestServer(t)
	_, customerTok := seedUser(t, db, "alice@example.com", entity.RoleCustomer)
	_, managerTok := seedUser(t, db, "mgr@example.com", entity.RoleManager)

	body := gin.H{"title": "Soups"}

	w := do(r, http.MethodPost, "/categories", "", body)
	assert.Equal(t, http.StatusForbidden, w.Code, "unauthenticated")

	w = do(r, http.MethodPost, "/categories", customerTok, body)
	assert.Equal(t, http.StatusForbidden, w.Code, "plain customer")

	w = do(r, http.MethodPost, "/categories", managerTok, body)
	assert.Equal(t, http.StatusCreated, w.Code, "manager")

	// reads stay open
	w = do(r, http.MethodGet, "/categories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cats []entity.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 1)
	assert.Equal(t, "Soups", cats[0].Title)
}

func TestMenuItemCountsEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	_, managerTok := seedUser(t, db, "mgr@example.com", entity.RoleManager)

	w := do(r, http.MethodPost, "/categories", managerTok, gin.H{"title": "Soups"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat entity.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	for i := 0; i < 13; i++ {
		w = do(r, http.MethodPost, "/menu-items", managerTok, gin.H{
			"title": "Soup " + string(rune('A'+i)), "price": "5.00", "categoryId": cat.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/menu-items/counts?category=Soups", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Counts     int64 `json:"counts"`
		TotalPages int64 `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 13, out.Counts)
	assert.EqualValues(t, 2, out.TotalPages)
}

func TestCartCheckoutFlow(t *testing.T) {
	r, db := newTestServer(t)
	_, customerTok := seedUser(t, db, "alice@example.com", entity.RoleCustomer)
	_, managerTok := seedUser(t, db, "mgr@example.com", entity.RoleManager)

	w := do(r, http.MethodPost, "/categories", managerTok, gin.H{"title": "Soups"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat entity.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = do(r, http.MethodPost, "/menu-items", managerTok, gin.H{
		"title": "Tomato Soup", "price": "5.00", "categoryId": cat.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	// empty-cart checkout is rejected with a message
	w = do(r, http.MethodPost, "/orders", customerTok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")

	w = do(r, http.MethodPost, "/cart/menu-items", customerTok, gin.H{
		"menuItemId": item.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/orders", customerTok, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.StatusPlaced, order.Status)
	assert.Equal(t, "15.00", order.Total.String())
	require.Len(t, order.Items, 1)

	// cart drained
	w = do(r, http.MethodGet, "/cart/menu-items", customerTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lines []entity.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Empty(t, lines)
}

func TestGroupEndpointsGate(t *testing.T) {
	r, db := newTestServer(t)
	target, _ := seedUser(t, db, "carol@example.com", entity.RoleCustomer)
	_, managerTok := seedUser(t, db, "mgr@example.com", entity.RoleManager)
	_, adminTok := seedUser(t, db, "root@example.com", entity.RoleAdmin)

	// manager group is admin-only, even for managers
	w := do(r, http.MethodPost, "/groups/manager/users", managerTok, gin.H{"userId": target.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/groups/manager/users", adminTok, gin.H{"userId": target.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// delivery crew may be managed by managers
	crewTarget, _ := seedUser(t, db, "dave@example.com", entity.RoleCustomer)
	w = do(r, http.MethodPost, "/groups/delivery-crew/users", managerTok, gin.H{"userId": crewTarget.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/groups/delivery-crew/users", managerTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var crew []entity.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crew))
	require.Len(t, crew, 1)
	assert.Equal(t, crewTarget.ID, crew[0].ID)

	// unknown member
	w = do(r, http.MethodPost, "/groups/delivery-crew/users", adminTok, gin.H{"userId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
