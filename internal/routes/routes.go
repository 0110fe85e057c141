package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/config"
	"github.com/example/electromart/internal/handlers"
	"github.com/example/electromart/internal/middleware"
	"github.com/example/electromart/internal/services"
	"github.com/example/electromart/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, store storage.Storage, cfg *config.Config, logger *zap.Logger) {
	pricing := services.NewPricingService()
	otp := services.NewOTPService(cfg.OTPTTL, logger)
	google := services.NewGoogleAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	authHandler := handlers.NewAuthHandler(store, cfg, otp, google, logger)
	productHandler := handlers.NewProductHandler(store, pricing)
	cartHandler := handlers.NewCartHandler(store)
	orderHandler := handlers.NewOrderHandler(store, logger)
	complaintHandler := handlers.NewComplaintHandler(store, cfg, logger)
	adminHandler := handlers.NewAdminHandler(store)

	api := app.Group("/api", middleware.Session())

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/guest", authHandler.Guest)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/user", middleware.Auth(cfg.JWTSecret), authHandler.CurrentUser)
	auth.Post("/phone/send-otp", authHandler.SendOTP)
	auth.Post("/phone/verify-otp", authHandler.VerifyOTP)
	auth.Get("/google", authHandler.GoogleLogin)
	auth.Get("/google/callback", authHandler.GoogleCallback)

	// Catalog routes
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/featured/all", productHandler.FeaturedProducts)
	api.Get("/products/new/all", productHandler.NewArrivals)
	api.Get("/products/sale/all", productHandler.SaleProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/categories/:category", productHandler.ProductsByCategory)
	api.Get("/search", productHandler.SearchProducts)
	api.Get("/price-comparison/:id", productHandler.PriceComparison)

	// Cart routes
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/", cartHandler.AddItem)
	cart.Patch("/:id", cartHandler.UpdateItem)
	cart.Delete("/:id", cartHandler.RemoveItem)
	cart.Delete("/", cartHandler.ClearCart)

	// Checkout and order history
	api.Post("/checkout", orderHandler.Checkout)
	api.Get("/orders", orderHandler.ListOrders)

	// Complaint routes
	api.Post("/complaints", complaintHandler.CreateComplaint)
	api.Get("/complaints", complaintHandler.ListComplaints)

	// Admin dashboard
	admin := api.Group("/admin")
	admin.Get("/products", adminHandler.ListProducts)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Get("/stats", adminHandler.OrderStats)
	admin.Get("/complaints", adminHandler.ListComplaints)
	admin.Get("/complaints/:id", adminHandler.GetComplaint)
	admin.Patch("/complaints/:id", adminHandler.UpdateComplaint)
}
