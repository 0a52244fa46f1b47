package routes

import (
	"service-marketplace-api/handlers"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Offers are browsable without auth
		public.GET("/offers", handlers.ListOffers)
		public.GET("/offers/:id", handlers.GetOffer)

		// Platform statistics
		public.GET("/base-info", handlers.GetBaseInfo)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profiles/business", handlers.ListBusinessProfiles)
		auth.GET("/profiles/customer", handlers.ListCustomerProfiles)
		auth.GET("/profiles/:userId", handlers.GetProfile)
		auth.PATCH("/profiles/:userId", handlers.UpdateProfile)

		auth.GET("/offerdetails/:id", handlers.GetOfferDetail)

		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.GET("/order-count/:businessUserId", handlers.CountInProgressOrders)
		auth.GET("/completed-order-count/:businessUserId", handlers.CountCompletedOrders)

		auth.GET("/reviews", handlers.ListReviews)
	}

	// ── Business routes ────────────────────────────────────────────
	business := r.Group("/api")
	business.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleBusiness))
	{
		business.POST("/offers", handlers.CreateOffer)
		business.PATCH("/offers/:id", handlers.UpdateOffer)
		business.DELETE("/offers/:id", handlers.DeleteOffer)

		business.PATCH("/orders/:id", handlers.UpdateOrderStatus)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.CreateOrder)

		customer.POST("/reviews", handlers.CreateReview)
		customer.PATCH("/reviews/:id", handlers.UpdateReview)
		customer.DELETE("/reviews/:id", handlers.DeleteReview)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.DELETE("/orders/:id", handlers.AdminDeleteOrder)
	}
}
