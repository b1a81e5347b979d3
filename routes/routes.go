package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/COMS4153EcommerceProject/Composite-microservice/controllers"
)

// RegisterRoutes wires the composite and proxy endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, composite *controllers.CompositeController, proxy *controllers.ProxyController) {
	r.GET("/health", composite.Health)
	r.GET("/", composite.Root)

	api := r.Group("/composite")
	{
		// Orchestrated endpoints
		api.POST("/users/:user_id/checkout", composite.Checkout)
		api.GET("/users/:user_id/order-summary", composite.OrderSummary)
		api.POST("/reports/user-orders", composite.GenerateReport)
		api.GET("/reports/user-orders/:operation_id", composite.GetReport)

		// User Service proxies
		api.POST("/users", proxy.CreateUser())
		api.GET("/users", proxy.ListUsers())
		api.GET("/users/:user_id", proxy.GetUser())
		api.PATCH("/users/:user_id", proxy.UpdateUser())
		api.DELETE("/users/:user_id", proxy.DeleteUser())

		api.POST("/addresses", proxy.CreateAddress())
		api.GET("/addresses", proxy.ListAddresses())
		api.GET("/addresses/:address_id", proxy.GetAddress())
		api.PATCH("/addresses/:address_id", proxy.UpdateAddress())
		api.DELETE("/addresses/:address_id", proxy.DeleteAddress())

		api.POST("/preferences", proxy.CreatePreference())
		api.GET("/preferences", proxy.ListPreferences())
		api.GET("/preferences/:user_id", proxy.GetPreference())
		api.PATCH("/preferences/:user_id", proxy.UpdatePreference())
		api.DELETE("/preferences/:user_id", proxy.DeletePreference())

		api.GET("/user_addresses/:user_id/:addr_id", proxy.GetUserAddress())
		api.DELETE("/user_addresses/:user_id/:addr_id", proxy.DeleteUserAddress())

		// Product Service proxies
		api.POST("/products", proxy.CreateProduct())
		api.GET("/products", proxy.ListProducts())
		api.GET("/products/:product_id", proxy.GetProduct())
		api.GET("/products/:product_id/inventory", proxy.GetProductInventory())

		// Order Service proxies
		api.GET("/orders/:order_id", proxy.GetOrder())
	}
}
