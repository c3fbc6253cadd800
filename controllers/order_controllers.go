package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/cart"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/store"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type OrderController struct {
	Orders   *store.OrderStore
	Checkout *services.CheckoutService
	Cart     *cart.Cart
}

func NewOrderController(db *gorm.DB, posCart *cart.Cart) *OrderController {
	orders := store.NewOrderStore(db)
	return &OrderController{
		Orders:   orders,
		Checkout: services.NewCheckoutService(orders),
		Cart:     posCart,
	}
}

// CheckoutCart finalizes the current cart into a durable order. The cart is
// cleared only after the order is persisted, so a storage failure leaves it
// intact for a retry.
func (oc *OrderController) CheckoutCart(c *gin.Context) {
	order, err := oc.Checkout.Finalize(oc.Cart.Lines())
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}

	oc.Cart.Clear()
	utils.RespondJSON(c, http.StatusCreated, "Order saved successfully", order)
}

// GetAllOrders -> order history, newest first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders()
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderItems -> the lines of one order joined with current menu names
func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines, err := oc.Orders.ListOrderLines(uint(id))
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order items", lines)
}
