package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/AbuBakkarSiddique007/bhojonbox-server/controllers"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/entity"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/cartbus"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/pkg/metrics"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/repository"
	"github.com/AbuBakkarSiddique007/bhojonbox-server/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubAuth stands in for the JWT middleware: identity comes from test
// headers instead of a token.
func stubAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.GetHeader("X-Test-User"); v != "" {
			id, _ := strconv.ParseUint(v, 10, 32)
			c.Set("userId", uint(id))
		}
		c.Set("role", c.GetHeader("X-Test-Role"))
		c.Next()
	}
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	bus      *cartbus.Bus
	cartSvc  *services.CartService
	customer entity.User
	owner    entity.User
	provider entity.Provider
	meal     entity.Meal
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Provider{}, &entity.Category{}, &entity.Meal{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Review{}, &entity.CartRecord{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{db: db, bus: cartbus.New()}

	cartStore := repository.NewGormCartStore(db, log)
	orderRepo := repository.NewOrderRepository(db)
	mealRepo := repository.NewMealRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	env.cartSvc = services.NewCartService(cartStore, env.bus, log, metrics.NewForTesting())
	orderSvc := services.NewOrderService(db, orderRepo, mealRepo, providerRepo, env.cartSvc, log, metrics.NewForTesting())

	cartCtrl := controllers.NewCartController(env.cartSvc, mealRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)

	r := gin.New()
	r.Use(gin.Recovery(), stubAuth())

	api := r.Group("/api")
	cart := api.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:mealId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:mealId", cartCtrl.Remove)
		cart.DELETE("/provider/:providerId", cartCtrl.ClearProvider)
	}
	orders := api.Group("/orders")
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/my-orders", orderCtrl.MyOrders)
		orders.GET("/provider/orders", orderCtrl.ProviderOrders)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}
	env.router = r

	env.customer = entity.User{Email: "customer@test.local", Name: "Customer", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(&env.customer).Error)
	env.owner = entity.User{Email: "owner@test.local", Name: "Owner", Role: entity.RoleProvider}
	require.NoError(t, db.Create(&env.owner).Error)
	env.provider = entity.Provider{StoreName: "Dhaka Kitchen", UserID: env.owner.ID}
	require.NoError(t, db.Create(&env.provider).Error)
	env.meal = entity.Meal{Name: "Beef Khichuri", Price: 180, ProviderID: env.provider.ID, Available: true}
	require.NoError(t, db.Create(&env.meal).Error)

	return env
}

func (env *testEnv) do(t *testing.T, as *entity.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf []byte
	if body != nil {
		var err error
		buf, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("X-Test-User", strconv.FormatUint(uint64(as.ID), 10))
		req.Header.Set("X-Test-Role", as.Role)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected a data envelope, got %s", w.Body.String())
	return data
}

func messageField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	msg, _ := body["message"].(string)
	require.NotEmpty(t, msg, "expected a message envelope, got %s", w.Body.String())
	return msg
}
