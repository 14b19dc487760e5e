package routes

import (
	"time"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Deps is everything route registration needs, wired in main.
type Deps struct {
	Auth     *controllers.AuthController
	Cart     *controllers.CartController
	Products *controllers.ProductController
	Admin    *controllers.AdminController
	Tokens   *services.TokenService
}

// Register mounts all storefront and admin routes.
func Register(r *gin.Engine, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/auth/login", deps.Auth.Login)

	authed := r.Group("/")
	authed.Use(middleware.Auth(deps.Tokens))
	{
		authed.POST("/auth/logout", deps.Auth.Logout)
		authed.GET("/products", deps.Products.ListProducts)

		cart := authed.Group("/cart")
		{
			cart.GET("", deps.Cart.GetCart)
			cart.POST("/add", deps.Cart.AddItem)
			cart.POST("/update", deps.Cart.UpdateItem)
			cart.DELETE("/remove/:product_id", deps.Cart.RemoveItem)
			cart.DELETE("/clear", deps.Cart.ClearCart)
			cart.POST("/checkout", deps.Cart.Checkout)
		}

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/products", deps.Products.ListProducts)
			admin.POST("/products", deps.Products.CreateProduct)
			admin.PUT("/products/:id", deps.Products.UpdateProduct)
			admin.DELETE("/products/:id", deps.Products.DeleteProduct)
			admin.GET("/financials", deps.Admin.Financials)
			admin.GET("/users", deps.Admin.ListUsers)
			admin.GET("/sales", deps.Admin.ListSales)

			// AI endpoints share one per-IP quota.
			ai := admin.Group("/")
			ai.Use(middleware.RateLimit(rate.Every(time.Minute/10), 5))
			{
				ai.POST("/products/:id/describe", deps.Products.DescribeProduct)
				ai.POST("/financials/insight", deps.Admin.Insight)
			}
		}
	}
}
