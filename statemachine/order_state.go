package statemachine

import "restaurant-pos-api/models"

// Transition describes one step of the kitchen workflow
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// canonicalTransitions documents the intended kitchen flow. Status
// updates are NOT guarded by it: any known status may overwrite any
// other (a cashier can re-open a completed order), matching the POS
// behavior the kitchen display relies on. Only the status vocabulary
// itself is validated.
var canonicalTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusCompleted},
	// payment success completes an order directly from pending
	{From: models.StatusPending, To: models.StatusCompleted},
}

var orderStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusPreparing: true,
	models.StatusCompleted: true,
}

var paymentStatuses = map[models.PaymentStatus]bool{
	models.PaymentPending: true,
	models.PaymentSuccess: true,
	models.PaymentFailed:  true,
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s models.OrderStatus) bool {
	return orderStatuses[s]
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s models.PaymentStatus) bool {
	return paymentStatuses[s]
}

// NextStatuses returns the documented follow-up states for a status
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range canonicalTransitions {
		if t.From == from && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// OrderStatusValues lists the accepted status vocabulary, for error messages
func OrderStatusValues() string {
	return string(models.StatusPending) + ", " + string(models.StatusPreparing) + ", " + string(models.StatusCompleted)
}

// PaymentStatusValues lists the accepted payment vocabulary, for error messages
func PaymentStatusValues() string {
	return string(models.PaymentPending) + ", " + string(models.PaymentSuccess) + ", " + string(models.PaymentFailed)
}

// AllTransitions returns the documented kitchen flow
func AllTransitions() []Transition {
	return canonicalTransitions
}
