package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/mailer"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/receipt"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	db   *gorm.DB
	mail mailer.Sender
	log  *zap.Logger
}

func NewPaymentHandler(db *gorm.DB, mail mailer.Sender, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{db: db, mail: mail, log: log}
}

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required"`
	TransactionID *string `json:"transaction_id"`
	OrderID       *uint   `json:"order_id"`
	Status        string  `json:"status"`
}

type UpdatePaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required"`
}

type SendReceiptRequest struct {
	Email  string         `json:"email" binding:"required,email"`
	Amount float64        `json:"amount" binding:"required"`
	Items  []receipt.Item `json:"items"`
}

type PaymentRow struct {
	ID            uint      `json:"id"`
	OrderID       *uint     `json:"order_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	MethodName    *string   `json:"method_name"`
}

// List returns all payments with their method name, newest first
func (h *PaymentHandler) List(c *gin.Context) {
	var payments []PaymentRow
	if err := h.db.Table("payments").
		Select(`payments.id, payments.order_id, payments.amount, payments.status,
			payments.transaction_id, payments.created_at, payment_methods.name AS method_name`).
		Joins("LEFT JOIN payment_methods ON payment_methods.id = payments.payment_method_id").
		Order("payments.created_at DESC, payments.id DESC").
		Scan(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Create records a payment intent. The method name must resolve to an
// active payment method. Multiple payments per order are legal; the
// current one is simply the newest.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RecordPaymentOperation("create", false)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.PaymentStatus(req.Status)
	if status == "" {
		status = models.PaymentSuccess
	}
	if !statemachine.ValidPaymentStatus(status) {
		middleware.RecordPaymentOperation("create", false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: " + statemachine.PaymentStatusValues()})
		return
	}

	var method models.PaymentMethod
	if err := h.db.Where("name = ? AND is_active = ?", req.Method, true).First(&method).Error; err != nil {
		middleware.RecordPaymentOperation("create", false)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment method"})
		return
	}

	txnID := req.TransactionID
	if txnID == nil {
		generated := "TXN-" + uuid.NewString()
		txnID = &generated
	}

	payment := models.Payment{
		OrderID:         req.OrderID,
		Amount:          req.Amount,
		PaymentMethodID: method.ID,
		Status:          status,
		TransactionID:   txnID,
	}
	if err := h.db.Create(&payment).Error; err != nil {
		middleware.RecordPaymentOperation("create", false)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error recording payment"})
		return
	}

	middleware.RecordPaymentOperation("create", true)
	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}

// GetStatus returns the status of the newest payment for an order.
// This is the read the cashier UI polls every few seconds; it has no
// side effects and two reads with no intervening writes agree.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var payment models.Payment
	if err := h.db.Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": payment.Status})
}

// UpdateStatus sets the status on every payment row for the order
// (the historical rows are rewritten too — deliberate, see DESIGN.md)
// and on "success" cascades the linked order to completed.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.ValidPaymentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: " + statemachine.PaymentStatusValues()})
		return
	}

	if err := h.db.Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		Update("status", req.Status).Error; err != nil {
		middleware.RecordPaymentOperation("update_status", false)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating"})
		return
	}

	if req.Status == models.PaymentSuccess {
		if err := h.db.Model(&models.Order{}).
			Where("id = ?", orderID).
			Update("status", models.StatusCompleted).Error; err != nil {
			middleware.RecordPaymentOperation("update_status", false)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating"})
			return
		}
	}

	middleware.RecordPaymentOperation("update_status", true)
	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// SendReceipt generates the PDF and mails it. Generation failure
// aborts the send; a mail failure is reported but never unwinds the
// already-committed payment state.
func (h *PaymentHandler) SendReceipt(c *gin.Context) {
	var req SendReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := receipt.Generate(req.Amount, req.Items)
	if err != nil {
		h.log.Error("receipt generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.mail.SendReceipt(req.Email, req.Amount, pdf); err != nil {
		h.log.Error("receipt mail failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
