package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/events"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderHandler struct {
	db     *gorm.DB
	events events.Publisher
	log    *zap.Logger
}

func NewOrderHandler(db *gorm.DB, pub events.Publisher, log *zap.Logger) *OrderHandler {
	return &OrderHandler{db: db, events: pub, log: log}
}

type CreateOrderRequest struct {
	CustomerID    *uint   `json:"customer_id"`
	TableID       *uint   `json:"table_id"`
	TotalAmount   float64 `json:"total_amount" binding:"required"`
	TaxAmount     float64 `json:"tax_amount"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method"`
	Items         []struct {
		ProductID uint    `json:"product_id" binding:"required"`
		Quantity  int     `json:"quantity" binding:"required"`
		Price     float64 `json:"price"`
	} `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// OrderSummary is an order row annotated with the owning customer's
// name (left-join: unresolved customer_id yields a null name).
type OrderSummary struct {
	models.Order
	CustomerName *string `json:"customer_name"`
}

type OrderItemDetail struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName *string `json:"product_name"`
}

// List returns all orders annotated with customer names, newest first
func (h *OrderHandler) List(c *gin.Context) {
	var orders []OrderSummary
	if err := h.db.Table("orders").
		Select("orders.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Order("orders.created_at DESC").
		Scan(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create inserts the order and all of its items in one transaction.
// Any item failure rolls back the order row too; a partial order is
// never observable.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RecordOrderOperation("create", false)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.OrderStatus(req.Status)
	if status == "" {
		status = models.StatusPending
	}
	if !statemachine.ValidOrderStatus(status) {
		middleware.RecordOrderOperation("create", false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: " + statemachine.OrderStatusValues()})
		return
	}

	order := models.Order{
		CustomerID:    req.CustomerID,
		TableID:       req.TableID,
		TotalAmount:   req.TotalAmount,
		TaxAmount:     req.TaxAmount,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.log.Error("order creation failed", zap.Error(err))
		middleware.RecordOrderOperation("create", false)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order"})
		return
	}

	middleware.RecordOrderOperation("create", true)
	h.publish(order, "created")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"orderId": order.ID,
	})
}

// Get returns a single order with its items, product names resolved
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var items []OrderItemDetail
	if err := h.db.Table("order_items").
		Select("order_items.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", order.ID).
		Scan(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching order details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             order.ID,
		"customer_id":    order.CustomerID,
		"table_id":       order.TableID,
		"total_amount":   order.TotalAmount,
		"tax_amount":     order.TaxAmount,
		"status":         order.Status,
		"payment_method": order.PaymentMethod,
		"created_at":     order.CreatedAt,
		"items":          items,
	})
}

// UpdateStatus overwrites the order status. Transitions are not
// guarded; only the status vocabulary is checked.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: " + statemachine.OrderStatusValues()})
		return
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	if err := h.db.Model(&order).Update("status", req.Status).Error; err != nil {
		middleware.RecordOrderOperation("update_status", false)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating status"})
		return
	}
	order.Status = req.Status

	middleware.RecordOrderOperation("update_status", true)
	h.publish(order, "status_updated")

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

func (h *OrderHandler) publish(order models.Order, eventType string) {
	evt := events.OrderEvent{
		OrderID:  order.ID,
		Type:     eventType,
		Status:   string(order.Status),
		Total:    order.TotalAmount,
		Occurred: time.Now(),
	}
	if err := h.events.PublishOrderEvent(evt); err != nil {
		h.log.Warn("failed to publish order event",
			zap.Uint("order_id", order.ID),
			zap.String("type", eventType),
			zap.Error(err))
	}
}
