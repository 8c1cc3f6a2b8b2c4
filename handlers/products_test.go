package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/categories", map[string]interface{}{"name": "Coffee"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := decode(t, w)["id"].(float64)

	w = e.request(http.MethodPost, "/products", map[string]interface{}{
		"name":        "Latte",
		"category_id": categoryID,
		"price":       100,
		"tax_percent": 5,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.request(http.MethodGet, "/products", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeList(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, "Latte", rows[0]["name"])
	assert.Equal(t, "Coffee", rows[0]["category_name"])

	w = e.request(http.MethodPut, "/products/1", map[string]interface{}{
		"name":        "Latte Grande",
		"category_id": categoryID,
		"price":       120,
		"tax_percent": 5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.request(http.MethodPut, "/products/999", map[string]interface{}{
		"name": "Ghost", "price": 1,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductSoftDeletePreservesOrderItems(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()
	p := seedProduct(t, e, "Latte", 100)

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 200,
		"items": []map[string]interface{}{
			{"product_id": p.ID, "quantity": 2, "price": 100},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.request(http.MethodDelete, "/products/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// the row survives with is_active=false
	var product models.Product
	require.NoError(t, e.db.First(&product, p.ID).Error)
	assert.False(t, product.IsActive)

	// historical order items are untouched and still resolve the name
	var items []models.OrderItem
	require.NoError(t, e.db.Where("product_id = ?", p.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 100.0, items[0].Price)

	w = e.request(http.MethodGet, "/orders/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Latte", detail["product_name"])

	// the active-product listing hides it
	w = e.request(http.MethodGet, "/products", nil, token)
	assert.Len(t, decodeList(t, w), 0)
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/categories", map[string]interface{}{"name": "Coffee"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.request(http.MethodPost, "/products", map[string]interface{}{
		"name": "Latte", "category_id": 1, "price": 100,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.request(http.MethodDelete, "/categories/1", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// soft-deleting the product releases the category
	w = e.request(http.MethodDelete, "/products/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = e.request(http.MethodDelete, "/categories/1", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var category models.Category
	require.NoError(t, e.db.First(&category, 1).Error)
	assert.False(t, category.IsActive)
}

func TestCustomerCRUDAndTotalSales(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/customers", map[string]interface{}{
		"name":  "Asha",
		"email": "asha@example.com",
		"city":  "Pune",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := decode(t, w)["id"].(float64)

	// one completed and one pending order; only completed counts
	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"customer_id": customerID, "total_amount": 300, "status": "completed",
	}, token)
	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"customer_id": customerID, "total_amount": 500, "status": "pending",
	}, token)

	w = e.request(http.MethodGet, "/customers", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeList(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, 300.0, rows[0]["total_sales"])

	w = e.request(http.MethodGet, "/customers/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha", decode(t, w)["name"])

	w = e.request(http.MethodGet, "/customers/99", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.request(http.MethodPut, "/customers/1", map[string]interface{}{
		"name": "Asha K", "city": "Mumbai",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
}
