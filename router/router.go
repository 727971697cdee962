package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-reservation-api/controllers"
	"restaurant-reservation-api/middlewares"
	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
)

// SetupRouter wires repositories, controllers and middleware into a
// ready-to-run engine. Everything under /api except the auth endpoints
// requires a valid token; DELETE endpoints additionally require the
// Admin role.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())

	customerRepo := repositories.NewCustomerRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	tableRepo := repositories.NewTableRepository(db)
	menuItemRepo := repositories.NewMenuItemRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)

	authController := controllers.NewAuthController(userRepo, roleRepo)
	customerController := controllers.NewCustomerController(customerRepo)
	restaurantController := controllers.NewRestaurantController(restaurantRepo)
	employeeController := controllers.NewEmployeeController(employeeRepo, restaurantRepo, orderRepo)
	tableController := controllers.NewTableController(tableRepo, restaurantRepo)
	menuItemController := controllers.NewMenuItemController(menuItemRepo, restaurantRepo)
	reservationController := controllers.NewReservationController(
		reservationRepo, customerRepo, restaurantRepo, tableRepo, orderRepo, menuItemRepo)
	orderController := controllers.NewOrderController(orderRepo, reservationRepo, employeeRepo)
	orderItemController := controllers.NewOrderItemController(orderItemRepo, orderRepo, menuItemRepo)

	adminOnly := middlewares.RequireRole(models.RoleAdmin)

	public := r.Group("/api")
	{
		public.POST("/login", authController.Login)
		public.POST("/register-user", authController.RegisterUser)
		public.POST("/register-admin", authController.RegisterAdmin)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetAllCustomers)
			customers.GET("/:id", customerController.GetCustomerByID)
			customers.GET("/party-size/:minPartySize", customerController.FindCustomersWithLargeParties)
			customers.POST("", customerController.CreateCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.PATCH("/:id", customerController.PatchCustomer)
			customers.DELETE("/:id", adminOnly, customerController.DeleteCustomer)
		}

		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantController.GetAllRestaurants)
			restaurants.GET("/:id", restaurantController.GetRestaurantByID)
			restaurants.GET("/:id/revenue", restaurantController.GetRestaurantRevenue)
			restaurants.POST("", restaurantController.CreateRestaurant)
			restaurants.PUT("/:id", restaurantController.UpdateRestaurant)
			restaurants.PATCH("/:id", restaurantController.PatchRestaurant)
			restaurants.DELETE("/:id", adminOnly, restaurantController.DeleteRestaurant)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", employeeController.GetAllEmployees)
			employees.GET("/managers", employeeController.ListManagers)
			employees.GET("/details", employeeController.GetEmployeesWithDetails)
			employees.GET("/:id", employeeController.GetEmployeeByID)
			employees.GET("/:id/average-order-amount", employeeController.GetAverageOrderAmount)
			employees.POST("", employeeController.CreateEmployee)
			employees.PUT("/:id", employeeController.UpdateEmployee)
			employees.PATCH("/:id", employeeController.PatchEmployee)
			employees.DELETE("/:id", adminOnly, employeeController.DeleteEmployee)
		}

		tables := api.Group("/tables")
		{
			tables.GET("", tableController.GetAllTables)
			tables.GET("/:id", tableController.GetTableByID)
			tables.GET("/restaurant/:restaurantId", tableController.GetTablesByRestaurant)
			tables.POST("", tableController.CreateTable)
			tables.PUT("/:id", tableController.UpdateTable)
			tables.PATCH("/:id", tableController.PatchTable)
			tables.DELETE("/:id", adminOnly, tableController.DeleteTable)
		}

		menuItems := api.Group("/menu-items")
		{
			menuItems.GET("", menuItemController.GetAllMenuItems)
			menuItems.GET("/:id", menuItemController.GetMenuItemByID)
			menuItems.GET("/restaurant/:restaurantId", menuItemController.GetMenuItemsByRestaurant)
			menuItems.POST("", menuItemController.CreateMenuItem)
			menuItems.PUT("/:id", menuItemController.UpdateMenuItem)
			menuItems.PATCH("/:id", menuItemController.PatchMenuItem)
			menuItems.DELETE("/:id", adminOnly, menuItemController.DeleteMenuItem)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationController.GetAllReservations)
			reservations.GET("/details", reservationController.GetReservationsWithDetails)
			reservations.GET("/customer/:customerId", reservationController.GetReservationsByCustomer)
			reservations.GET("/:id", reservationController.GetReservationByID)
			reservations.GET("/:id/orders", reservationController.GetReservationOrders)
			reservations.GET("/:id/menu-items", reservationController.GetReservationMenuItems)
			reservations.POST("", reservationController.CreateReservation)
			reservations.PUT("/:id", reservationController.UpdateReservation)
			reservations.PATCH("/:id", reservationController.PatchReservation)
			reservations.DELETE("/:id", adminOnly, reservationController.DeleteReservation)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderController.GetAllOrders)
			orders.GET("/:id", orderController.GetOrderByID)
			orders.GET("/reservation/:reservationId", orderController.GetOrdersByReservation)
			orders.POST("", orderController.CreateOrder)
			orders.PUT("/:id", orderController.UpdateOrder)
			orders.PATCH("/:id", orderController.PatchOrder)
			orders.DELETE("/:id", adminOnly, orderController.DeleteOrder)

			orders.GET("/:id/order-items", orderItemController.GetOrderItems)
			orders.GET("/:id/order-items/:itemId", orderItemController.GetOrderItemByID)
			orders.POST("/:id/order-items", orderItemController.CreateOrderItem)
			orders.PUT("/:id/order-items/:itemId", orderItemController.UpdateOrderItem)
			orders.PATCH("/:id/order-items/:itemId", orderItemController.PatchOrderItem)
			orders.DELETE("/:id/order-items/:itemId", adminOnly, orderItemController.DeleteOrderItem)
		}
	}

	return r
}
