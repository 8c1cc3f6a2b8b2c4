package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDineInPaymentFlow walks one table through the full lifecycle:
// order entry, occupancy, payment confirmation, cascade completion.
func TestDineInPaymentFlow(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()
	p := seedProduct(t, e, "Latte", 100)
	table := seedTable(t, e, 1, "1")

	// create the order against table 1
	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 210,
		"tax_amount":   10,
		"status":       "pending",
		"table_id":     table.ID,
		"items": []map[string]interface{}{
			{"product_id": p.ID, "quantity": 2, "price": 100},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decode(t, w)["orderId"].(float64))

	// the table reads occupied
	assert.True(t, occupancy(t, e, token)["1"])

	// pending payment intent (unauthenticated, as the UPI flow is)
	w = e.request(http.MethodPost, "/payment", map[string]interface{}{
		"amount":   210,
		"method":   "Cash",
		"order_id": orderID,
		"status":   "pending",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// confirm the payment
	w = e.request(http.MethodPatch, "/payment/status/"+itoa(orderID), map[string]interface{}{
		"status": "success",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// the order completed via the cascade
	w = e.request(http.MethodGet, "/orders/"+itoa(orderID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode(t, w)["status"])

	// and the table is free again
	assert.False(t, occupancy(t, e, token)["1"])
}

// TestKitchenStatusProgression drives an order through the kitchen
// display sequence; no transition is rejected.
func TestKitchenStatusProgression(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	w := e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 150,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decode(t, w)["orderId"].(float64))

	for _, status := range []string{"pending", "preparing", "completed"} {
		w = e.request(http.MethodPatch, "/orders/"+itoa(orderID)+"/status", map[string]interface{}{
			"status": status,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
		order := decode(t, w)["order"].(map[string]interface{})
		assert.Equal(t, status, order["status"])
	}
}

func TestDashboardStats(t *testing.T) {
	e := newTestEnv(t)
	token := e.cashierToken()

	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 300, "status": "completed",
	}, token)
	e.request(http.MethodPost, "/orders", map[string]interface{}{
		"total_amount": 100, "status": "pending",
	}, token)

	w := e.request(http.MethodGet, "/dashboard/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 300.0, body["dailySales"])
	assert.NotEmpty(t, body["lastOpened"])
}
