package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/services"
)

func SetupRouter(db *gorm.DB, posCart *cart.Cart, backupSvc *services.BackupService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(posCart, db)
	orderCtrl := controllers.NewOrderController(db, posCart)
	backupCtrl := controllers.NewBackupController(backupSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      MENU
	// ----------------------------------------------------------------
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// ----------------------------------------------------------------
	//                      CART
	// ----------------------------------------------------------------
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.POST("/cart/items/:menu_id/decrease", cartCtrl.DecreaseItem)
	r.DELETE("/cart/items/:menu_id", cartCtrl.RemoveItem)
	r.DELETE("/cart", cartCtrl.ClearCart)

	// ----------------------------------------------------------------
	//                      CHECKOUT & ORDER HISTORY
	// ----------------------------------------------------------------
	r.POST("/checkout", orderCtrl.CheckoutCart)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)

	// ----------------------------------------------------------------
	//                      ADMIN / MAINTENANCE
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.NewStrictRateLimiter())
	{
		admin.POST("/backup", backupCtrl.RunBackupAndReset)
		admin.POST("/menu/reset", menuCtrl.ResetMenu)
		admin.POST("/menu/cleanup-duplicates", menuCtrl.CleanupDuplicates)
	}

	return r
}
