package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, e *testEnv, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, IsActive: true}
	require.NoError(t, e.db.Create(&p).Error)
	return p
}

func TestCreateOrderWithItems(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()
	p := seedProduct(t, e, "Latte", 100)

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 210,
		"tax_amount":   10,
		"status":       "pending",
		"items": []map[string]interface{}{
			{"product_id": p.ID, "quantity": 2, "price": 100},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Order created successfully", body["message"])
	orderID := uint(body["orderId"].(float64))
	require.NotZero(t, orderID)

	var items []models.OrderItem
	require.NoError(t, e.db.Where("order_id = ?", orderID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 100.0, items[0].Price)
}

func TestCreateOrderWithZeroItemsIsLegal(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 50,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	e.db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()
	p := seedProduct(t, e, "Latte", 100)

	// the second item violates the quantity check, so the whole
	// transaction, order row included, must roll back
	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 150,
		"items": []map[string]interface{}{
			{"product_id": p.ID, "quantity": 1, "price": 100},
			{"product_id": p.ID, "quantity": -1, "price": 50},
		},
	}, token)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var orderCount, itemCount int64
	e.db.Model(&models.Order{}).Count(&orderCount)
	e.db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount, "no partial order may survive")
	assert.Zero(t, itemCount, "no orphan items may survive")
}

func TestGetOrderResolvesProductNames(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()
	p := seedProduct(t, e, "Cappuccino", 120)

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 120,
		"items": []map[string]interface{}{
			{"product_id": p.ID, "quantity": 1, "price": 120},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decode(t, w)["orderId"].(float64)

	w = e.request(http.MethodGet, "/orders/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, orderID, body["id"])
	assert.Equal(t, "pending", body["status"])

	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Cappuccino", item["product_name"])
}

func TestGetOrderNotFound(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodGet, "/orders/999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersAnnotatesCustomerName(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	customer := models.Customer{Name: "Asha"}
	require.NoError(t, e.db.Create(&customer).Error)

	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"customer_id":  customer.ID,
		"total_amount": 80,
	}, token)
	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 40, // walk-in, no customer
	}, token)

	w := e.request(http.MethodGet, "/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeList(t, w)
	require.Len(t, orders, 2)

	names := map[float64]interface{}{}
	for _, o := range orders {
		names[o["total_amount"].(float64)] = o["customer_name"]
	}
	assert.Equal(t, "Asha", names[80])
	assert.Nil(t, names[40], "unresolved customer yields a null name, not an error")
}

func TestUpdateOrderStatusSequence(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 60,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// pending → preparing → completed, none rejected
	for _, status := range []string{"preparing", "completed"} {
		w = e.request(http.MethodPatch, "/orders/1/status", map[string]interface{}{
			"status": status,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
		order := decode(t, w)["order"].(map[string]interface{})
		assert.Equal(t, status, order["status"])
	}

	// the reverse direction is not guarded either
	w = e.request(http.MethodPatch, "/orders/1/status", map[string]interface{}{
		"status": "pending",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	e.request(http.MethodPost, "/orders", map[string]interface{}{"total_amount": 60}, token)

	w := e.request(http.MethodPatch, "/orders/1/status", map[string]interface{}{
		"status": "cancelled",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrdersRequireToken(t *testing.T) {
	e := newTestEnv(t)

	w := e.request(http.MethodGet, "/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.request(http.MethodPost, "/orders", map[string]interface{}{"total_amount": 10}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
