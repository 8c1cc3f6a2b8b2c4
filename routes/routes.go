package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route table needs
type Deps struct {
	Auth       *middleware.Auth
	AuthH      *handlers.AuthHandler
	Orders     *handlers.OrderHandler
	Tables     *handlers.TableHandler
	Payments   *handlers.PaymentHandler
	Products   *handlers.ProductHandler
	Categories *handlers.CategoryHandler
	Customers  *handlers.CustomerHandler
	Dashboard  *handlers.DashboardHandler
}

func SetupRoutes(r *gin.Engine, d Deps) {
	// ── Auth (public) ──────────────────────────────────────────────
	r.POST("/auth/signup", d.AuthH.Signup)
	r.POST("/auth/login", d.AuthH.Login)
	r.POST("/auth/verify-otp", d.AuthH.VerifyOTP)

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders")
	orders.Use(d.Auth.Required())
	{
		orders.GET("", d.Orders.List)
		orders.POST("", d.Orders.Create)
		orders.GET("/:id", d.Orders.Get)
		orders.PATCH("/:id/status", d.Orders.UpdateStatus)
	}

	// ── Tables ─────────────────────────────────────────────────────
	tables := r.Group("/tables")
	tables.Use(d.Auth.Required())
	{
		tables.GET("", d.Tables.List)
		tables.GET("/:id", d.Tables.Get)
	}

	// ── Payments ───────────────────────────────────────────────────
	// POST /payment, the receipt send and the status poll are left
	// unauthenticated: the UPI confirmation flow hits them before the
	// cashier session is re-established on the payment terminal.
	payment := r.Group("/payment")
	{
		payment.GET("", d.Auth.Required(), d.Payments.List)
		payment.POST("", d.Payments.Create)
		payment.POST("/receipt", d.Payments.SendReceipt)
		payment.GET("/status/:orderId", d.Payments.GetStatus)
		payment.PATCH("/status/:orderId", d.Auth.Required(), d.Payments.UpdateStatus)
	}

	// ── Catalog & customers ────────────────────────────────────────
	// Reads need a token; writes additionally need a non-kitchen role.
	edit := d.Auth.RoleRequired(models.RoleAdmin, models.RoleCashier)

	products := r.Group("/products")
	products.Use(d.Auth.Required())
	{
		products.GET("", d.Products.List)
		products.POST("", edit, d.Products.Create)
		products.PUT("/:id", edit, d.Products.Update)
		products.DELETE("/:id", edit, d.Products.Delete)
	}

	categories := r.Group("/categories")
	categories.Use(d.Auth.Required())
	{
		categories.GET("", d.Categories.List)
		categories.POST("", edit, d.Categories.Create)
		categories.PUT("/:id", edit, d.Categories.Update)
		categories.DELETE("/:id", edit, d.Categories.Delete)
	}

	customers := r.Group("/customers")
	customers.Use(d.Auth.Required())
	{
		customers.GET("", d.Customers.List)
		customers.GET("/:id", d.Customers.Get)
		customers.POST("", edit, d.Customers.Create)
		customers.PUT("/:id", edit, d.Customers.Update)
	}

	// ── Dashboard ──────────────────────────────────────────────────
	r.GET("/dashboard/stats", d.Auth.Required(), d.Dashboard.GetStats)
}
