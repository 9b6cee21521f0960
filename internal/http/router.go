package api

import (
	"log"
	stdhttp "net/http"

	"arheb/internal/auth"
	intconfig "arheb/internal/config"
	h "arheb/internal/http/handlers"
	"arheb/internal/http/middleware"
	"arheb/internal/tracking"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, tokens auth.Tokens, trackingWS *tracking.Server) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"message": "Route not found"})
	})

	// Live tracking websocket. Admission runs before the upgrade.
	r.GET("/ws/orders/tracking", gin.WrapF(trackingWS.HandleWS))

	authorized := middleware.Authorize(tokens)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/verify-otp", h.VerifyOTP)

		// Catalog
		api.GET("/categories", h.GetCategories)
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/home", h.GetHome)

		stores := api.Group("/stores")
		stores.GET("", h.GetStores)
		stores.GET("/top-rated", h.GetTopRatedStores)
		stores.GET("/:id", h.GetStore)
		stores.GET("/:id/products", h.GetStoreProducts)

		// Checkout
		checkout := api.Group("/checkout", authorized)
		checkout.POST("", h.CreateOrder)
		checkout.GET("", h.ListOrders)
		checkout.GET("/:orderId", h.GetOrder)
		checkout.PUT("/:orderId/rate", h.RateOrder)
		checkout.GET("/:orderId/invoice", h.GetOrderInvoicePDF)

		api.GET("/promo-codes/:code", h.GetPromoCode)

		// Tracking snapshot
		api.GET("/orders/:orderId/tracking", authorized, h.GetOrderTracking)

		// Profile & contact
		api.GET("/profile", authorized, h.GetProfile)
		api.PUT("/profile", authorized, h.UpdateProfile)
		api.GET("/contact", h.GetContact)
		api.PUT("/contact", authorized, h.UpdateContact)
	}

	return r
}
